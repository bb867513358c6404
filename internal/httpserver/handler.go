package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	aitaskDelivery "cortex-workspace/internal/aitask/delivery/http"
	assistDelivery "cortex-workspace/internal/assist/delivery/http"
	chatDelivery "cortex-workspace/internal/chat/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
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

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if srv.aitaskHandler != nil {
		aitaskDelivery.RegisterRoutes(api, srv.aitaskHandler, srv.middleware)
		srv.l.Infof(ctx, "AI task routes registered under /api/ai")
	}
	if srv.assistHandler != nil {
		assistDelivery.RegisterRoutes(api, srv.assistHandler, srv.middleware)
		srv.l.Infof(ctx, "Writing assistant routes registered under /api/ai")
	}
	if srv.chatHandler != nil {
		chatDelivery.RegisterRoutes(api, srv.chatHandler, srv.middleware)
		srv.l.Infof(ctx, "Chat routes registered under /api/chat")
	}
}
