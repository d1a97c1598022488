package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/reviews", h.Analyze)

	meta := rg.Group("/review")
	{
		meta.GET("/sections", h.Sections)
		meta.GET("/formats", h.Formats)
		meta.GET("/examples/:section", h.Example)
	}
}
