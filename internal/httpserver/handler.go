package httpserver

import (
	"context"

	"lead-qualification-assistant/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.metrics.GinMiddleware())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupConversationDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
