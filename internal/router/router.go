package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreatePresentation(c *ginext.Context)
	ListAvailable(c *ginext.Context)
	ListFaculty(c *ginext.Context)
	UpdatePresentation(c *ginext.Context)
	DeletePresentation(c *ginext.Context)
	ListSlots(c *ginext.Context)
	BookSlot(c *ginext.Context)
	CheckTeamBookings(c *ginext.Context)
	MyBookings(c *ginext.Context)
	StartSlot(c *ginext.Context)
	CompleteSlot(c *ginext.Context)
}

// InitRouter wires the HTTP surface. The identity middleware applies to the
// /api group only; /health stays open for probes.
func InitRouter(mode string, h Handler, identity ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(identity)
	{
		// Presentations
		api.POST("/presentations", h.CreatePresentation)
		api.GET("/presentations/available", h.ListAvailable)
		api.GET("/presentations/faculty", h.ListFaculty)
		api.GET("/presentations/my-bookings", h.MyBookings)
		api.POST("/presentations/check-team-bookings", h.CheckTeamBookings)
		api.PUT("/presentations/:id", h.UpdatePresentation)
		api.DELETE("/presentations/:id", h.DeletePresentation)

		// Slots
		api.POST("/presentations/:id/book", h.BookSlot)
		api.GET("/presentations/:id/slots", h.ListSlots)
		api.POST("/slots/:slotId/start", h.StartSlot)
		api.POST("/slots/:slotId/complete", h.CompleteSlot)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
