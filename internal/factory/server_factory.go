package factory

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-phishing-detector/internal/adapters/httpapi"
	"github.com/mikey/llm-phishing-detector/internal/config"
	"github.com/mikey/llm-phishing-detector/internal/metrics"
	"github.com/mikey/llm-phishing-detector/internal/ports"
	"go.uber.org/zap"
)

// ServerFactory creates the HTTP front end
type ServerFactory struct {
	cfg      *config.Config
	logger   *zap.Logger
	analyzer ports.EmailAnalyzer
	metrics  *metrics.Metrics
}

// NewServerFactory creates a new server factory
func NewServerFactory(cfg *config.Config, logger *zap.Logger, analyzer ports.EmailAnalyzer, m *metrics.Metrics) *ServerFactory {
	return &ServerFactory{
		cfg:      cfg,
		logger:   logger,
		analyzer: analyzer,
		metrics:  m,
	}
}

// CreateServer wires the router and returns an unstarted server
func (f *ServerFactory) CreateServer() (ports.Server, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(serverCfg.Mode)
	default:
		return nil, &config.ConfigurationError{Key: "server.mode", Reason: fmt.Sprintf("unsupported mode %q", serverCfg.Mode)}
	}

	handler := httpapi.NewHandler(f.analyzer, f.metrics, f.logger)
	router := httpapi.Setup(handler, f.metrics, f.logger, serverCfg.MaxRequestBytes)

	return httpapi.NewHTTPServer(router, serverCfg.ListenAddress, serverCfg.ShutdownTimeout, f.logger), nil
}
