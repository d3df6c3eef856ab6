package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"admin-srv/internal/middleware"
	userHTTP "admin-srv/internal/user/delivery/http"
	userUsecase "admin-srv/internal/user/usecase"
)

// setupUserDomain initializes the Users screen (usecase -> delivery)
func (srv *HTTPServer) setupUserDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := userUsecase.New(srv.l, srv.store, srv.queryUC, srv.identityUC, srv.auditUC)

	handler := userHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "User domain registered")
}
