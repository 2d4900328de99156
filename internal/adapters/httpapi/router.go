package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-phishing-detector/internal/metrics"
	"go.uber.org/zap"
)

// Setup creates and configures the Gin router
func Setup(h *Handler, m *metrics.Metrics, logger *zap.Logger, maxRequestBytes int64) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(RequestID())
	router.Use(Logger(logger))
	router.Use(Recovery(logger))
	router.Use(Metrics(m))

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api")
	{
		api.GET("/hello", h.Hello)
		api.GET("/goodbye", h.Goodbye)
	}

	router.GET("/", h.Sample)
	router.POST("/analyze", MaxBytes(maxRequestBytes), h.Analyze)

	return router
}
