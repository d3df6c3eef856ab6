package http

import (
	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	auth := r.Group("/api/v1/authentication")
	{
		auth.POST("/login", mw.AuthRateLimit(), h.SignIn)
		auth.POST("/forgot-password", mw.AuthRateLimit(), h.ForgotPassword)
		auth.POST("/reset-password", mw.AuthRateLimit(), h.ResetPassword)
		auth.POST("/logout", mw.Auth(), h.SignOut)
		auth.POST("/change-password", mw.Auth(), h.ChangePassword)
	}
}
