package httpserver

import (
	"context"

	assistantHTTP "task-intelligence/internal/assistant/delivery/http"
	"task-intelligence/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupAssistantDomain registers the assistant routes under /api/v1/ai.
// The use case is built by the caller so the CLI and the server share one wiring.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api.Group("/ai"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
