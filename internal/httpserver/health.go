package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/response"
)

const (
	HealthMessage = "Task intelligence is up"
	HealthVersion = "1.0.0"
	ServiceName   = "task-intelligence"

	readyTimeout  = 2 * time.Second
	notReadyCode  = 100503
	statusReady   = "ready"
	statusBlocked = "not_ready"
)

// Pinger is the storage handle readiness depends on.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports whether storage answers and which provider would serve requests.
// Provider availability is informational: requests still succeed with no suggestion.
// @Summary Readiness Check
// @Description Pings the settings database and reports the active provider.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Storage unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	providers := srv.assistantUC.Providers(ctx)
	available := false
	for _, p := range providers.Providers {
		if p.ID == providers.Active {
			available = p.Available
			break
		}
	}

	data := gin.H{
		"status":             statusReady,
		"version":            HealthVersion,
		"service":            ServiceName,
		"storage":            "ok",
		"active_provider":    providers.Active,
		"provider_available": available,
	}

	if srv.storage != nil {
		if err := srv.storage.PingContext(ctx); err != nil {
			srv.l.Warn(ctx, "Readiness: storage ping failed", "error", err.Error())
			data["status"] = statusBlocked
			data["storage"] = "unreachable"
			response.Error(c, response.NewHTTPError(http.StatusServiceUnavailable, notReadyCode, "storage unreachable"), data)
			return
		}
	}

	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
