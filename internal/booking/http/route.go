package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, userMiddleware gin.HandlerFunc) {
	g.GET("/teachers/:id/slots", h.SlotsForDate)
	g.POST("/bookings/validate", h.Validate)

	// === Authenticated Routes ===
	g.POST("/bookings", userMiddleware, h.Create)
	g.GET("/bookings", userMiddleware, h.List)
	g.GET("/bookings/:id", userMiddleware, h.GetByID)
	g.PATCH("/bookings/:id", userMiddleware, h.Update)
	g.DELETE("/bookings/:id", userMiddleware, h.Delete)
}
