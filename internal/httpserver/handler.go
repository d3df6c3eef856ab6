package httpserver

import (
	"context"

	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return err
	}

	mw := middleware.New(srv.l, srv.identityUC, middleware.Config{
		CookieName:            srv.config.Cookie.Name,
		AllowedOrigins:        srv.config.CORS.AllowedOrigins,
		AuthRequestsPerMinute: srv.config.Auth.RequestsPerMinute,
		AuthBurst:             srv.config.Auth.Burst,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")
	srv.setupIdentityDomain(ctx, r, mw)
	srv.setupUserDomain(ctx, r, mw)
	srv.setupContactDomain(ctx, r, mw)
	srv.setupQueryDomain(ctx, r, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Trace())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.Metrics())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS allowed origins: %v", srv.config.CORS.AllowedOrigins)

	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
