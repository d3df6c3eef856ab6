package http

import (
	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/users", h.List)
		api.POST("/users", h.Create)
		api.DELETE("/users/:id", h.Delete)
		api.POST("/users/:id/reset-password", h.SendPasswordReset)

		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
	}
}
