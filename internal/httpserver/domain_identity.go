package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	identityHTTP "admin-srv/internal/identity/delivery/http"
	"admin-srv/internal/middleware"
)

func (srv *HTTPServer) setupIdentityDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := identityHTTP.New(srv.l, srv.identityUC, srv.discord, identityHTTP.Config{
		CookieName:   srv.config.Cookie.Name,
		CookieDomain: srv.config.Cookie.Domain,
		CookieSecure: srv.config.Cookie.Secure,
	})
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Identity domain registered")
}
