package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	g.GET("/teachers/:id/availability", h.ListForTeacher)

	// === Admin Routes ===
	g.POST("/teachers/:id/availability", adminMiddleware, h.Create)
	g.DELETE("/availability/:id", adminMiddleware, h.Delete)
}
