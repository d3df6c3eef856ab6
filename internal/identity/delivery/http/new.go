package http

import (
	"admin-srv/internal/identity"
	"admin-srv/internal/middleware"
	"admin-srv/pkg/discord"
	"admin-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// Config controls the session cookie written on sign in.
type Config struct {
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

type handler struct {
	l       log.Logger
	uc      identity.UseCase
	discord discord.IDiscord
	cfg     Config
}

func New(l log.Logger, uc identity.UseCase, discord discord.IDiscord, cfg Config) Handler {
	return &handler{l: l, uc: uc, discord: discord, cfg: cfg}
}
