package di

import (
	"context"

	"go.uber.org/dig"

	"github.com/mikey/llm-phishing-detector/internal/config"
	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/factory"
	"github.com/mikey/llm-phishing-detector/internal/logging"
	"github.com/mikey/llm-phishing-detector/internal/metrics"
	"github.com/mikey/llm-phishing-detector/internal/ports"
	"github.com/mikey/llm-phishing-detector/internal/utils"
)

// BuildContainer creates and configures a dependency injection container for
// the HTTP service. Configuration is loaded and validated when the first
// dependency is resolved, so an invalid configuration fails before any route
// is registered.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register metrics
	if err := container.Provide(metrics.New); err != nil {
		return nil, err
	}

	if err := provideDetection(container); err != nil {
		return nil, err
	}

	// Register HTTP server
	if err := container.Provide(factory.NewServerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ServerFactory) (ports.Server, error) {
		return f.CreateServer()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// provideDetection registers everything from the text processor up to the
// detection service. It expects *config.Config and *zap.Logger to be provided.
func provideDetection(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register model client
	if err := container.Provide(func(f *factory.LLMFactory) (core.ModelClient, error) {
		return f.CreateModelClient(context.Background())
	}); err != nil {
		return err
	}

	// Register response parser
	if err := container.Provide(func(cfg *config.Config) *core.ResponseParser {
		return core.NewResponseParser(cfg.GetAnalysis().StrictSchema)
	}); err != nil {
		return err
	}

	// Register detection service
	if err := container.Provide(core.NewDetectionService); err != nil {
		return err
	}
	return container.Provide(func(s *core.DetectionService) ports.EmailAnalyzer {
		return s
	})
}
