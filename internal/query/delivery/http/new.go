package http

import (
	"admin-srv/internal/middleware"
	"admin-srv/internal/query"
	"admin-srv/pkg/discord"
	"admin-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler exposes the query composer over HTTP.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l           log.Logger
	uc          query.UseCase
	discord     discord.IDiscord
	collections []string
}

// New creates the handler. Only the listed collections can be queried.
func New(l log.Logger, uc query.UseCase, discord discord.IDiscord, collections []string) Handler {
	return &handler{l: l, uc: uc, discord: discord, collections: collections}
}
