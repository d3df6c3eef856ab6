package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	contactHTTP "admin-srv/internal/contact/delivery/http"
	contactUsecase "admin-srv/internal/contact/usecase"
	"admin-srv/internal/middleware"
)

// setupContactDomain initializes the Contacts screen (usecase -> delivery)
func (srv *HTTPServer) setupContactDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := contactUsecase.New(srv.l, srv.store, srv.queryUC, srv.minioClient, srv.auditUC)

	handler := contactHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Contact domain registered")
}
