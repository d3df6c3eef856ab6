package http

import (
	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/contacts")
	api.Use(mw.Auth())
	{
		api.GET("", h.List)
		api.DELETE("/:id", h.Delete)
		api.POST("/export", h.Export)
	}
}
