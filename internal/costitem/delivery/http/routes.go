package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// /cost_items/filter must be registered alongside /cost_items/:id; gin
// resolves the static segment before the parameter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/cost_items")
	{
		items.GET("", h.List)
		items.GET("/filter", h.Filter)
		items.GET("/:id", h.Detail)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
