package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []logger.Attr{
					logger.Any("error", err),
					logger.String("path", c.Request.URL.Path),
					logger.String("stack", string(debug.Stack())),
				}
				if id, ok := c.Get(requestIDKey); ok {
					if s, sok := id.(string); sok {
						attrs = append(attrs, logger.String("request_id", s))
					}
				}
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered", attrs...)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ginext.H{"error": "internal server error"},
				)
			}
		}()

		c.Next()
	}
}
