package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/personas", h.ListPersonas)

	discussions := rg.Group("/discussions")
	{
		discussions.POST("", h.Run)
		discussions.GET("/:id", h.Detail)
	}
}
