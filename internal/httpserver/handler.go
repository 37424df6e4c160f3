package httpserver

import (
	"context"

	"task-intelligence/internal/middleware"
	"task-intelligence/internal/model"

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

	ctx := context.Background()
	if model.ParseEnvironment(srv.environment) == model.EnvironmentProduction {
		srv.l.Infof(ctx, "Request logging disabled in production")
		return
	}
	srv.gin.Use(gin.Logger())
	srv.l.Infof(ctx, "Request logging enabled: %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

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
	mw := middleware.New(srv.l, srv.middleware)

	if err := srv.setupAssistantDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
