package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"admin-srv/internal/middleware"
	"admin-srv/internal/model"
	queryHTTP "admin-srv/internal/query/delivery/http"
)

// queryableCollections are the collections open to POST /query/:collection.
var queryableCollections = []string{model.CollectionUsers, model.CollectionContacts}

func (srv *HTTPServer) setupQueryDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := queryHTTP.New(srv.l, srv.queryUC, srv.discord, queryableCollections)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Query domain registered")
}
