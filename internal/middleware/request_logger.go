package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger emits one structured line per request after it completes.
// Handler-reported errors (set via c.Set("error", ...)) are included so the
// server log carries the detail the client response omits.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		attrs := []logger.Attr{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		}
		if id, ok := c.Get(requestIDKey); ok {
			if s, sok := id.(string); sok {
				attrs = append(attrs, logger.String("request_id", s))
			}
		}
		if errMsg, ok := c.Get("error"); ok {
			if s, sok := errMsg.(string); sok {
				attrs = append(attrs, logger.String("error", s))
			}
		}

		if c.Writer.Status() >= 500 {
			log.Log(logger.ErrorLevel, "request failed", attrs...)
			return
		}
		log.Log(logger.InfoLevel, "request", attrs...)
	}
}
