package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, userMiddleware, adminMiddleware gin.HandlerFunc) {
	g.GET("/recurring", userMiddleware, h.List)
	g.GET("/recurring/:groupId", userMiddleware, h.GetByID)

	// === Admin Routes ===
	g.POST("/recurring/preview", adminMiddleware, h.Preview)
	g.POST("/recurring", adminMiddleware, h.Create)
	g.POST("/recurring/:groupId/renew", adminMiddleware, h.Renew)
}
