package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/estimate", h.Estimate)
	rg.POST("/priority", h.Priority)
	rg.POST("/order", h.Order)
	rg.POST("/analyze", h.Analyze)
	rg.POST("/complete", h.Complete)

	providers := rg.Group("/providers")
	{
		providers.GET("", h.ListProviders)
		providers.POST("/test", h.TestConnection)
		providers.PUT("/:id", h.ConfigureProvider)
		providers.DELETE("/:id", h.RemoveProvider)
		providers.POST("/:id/activate", h.Activate)
		providers.GET("/:id/models", h.Models)
	}

	rg.POST("/corrections", h.RecordCorrection)
	rg.POST("/duration-accuracy", h.RecordDurationAccuracy)
	rg.POST("/impressions", h.RecordImpression)
	rg.POST("/completions", h.RecordCompletion)
	rg.GET("/correction-rate", h.CorrectionRate)
	rg.GET("/stats", h.Stats)
	rg.DELETE("/learning", h.ResetLearning)
}
