package factory

import (
	"context"
	"fmt"

	"github.com/mikey/llm-phishing-detector/internal/adapters/bedrock"
	"github.com/mikey/llm-phishing-detector/internal/adapters/gemini"
	"github.com/mikey/llm-phishing-detector/internal/adapters/openai"
	"github.com/mikey/llm-phishing-detector/internal/config"
	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/utils"
	"go.uber.org/zap"
)

// LLMFactory creates model clients
type LLMFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *LLMFactory {
	return &LLMFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateModelClient creates the model client for the configured provider
func (f *LLMFactory) CreateModelClient(ctx context.Context) (core.ModelClient, error) {
	provider := f.cfg.GetLLM().Provider
	f.logger.Info("Creating model client", zap.String("provider", provider))

	var (
		client core.ModelClient
		err    error
	)
	switch provider {
	case "gemini":
		client, err = gemini.NewFactory(f.cfg.GetGemini(), f.textProcessor, f.logger).CreateClient(ctx)
	case "openai":
		client = openai.NewFactory(f.cfg.GetOpenAI(), f.textProcessor, f.logger).CreateClient()
	case "bedrock":
		client, err = bedrock.NewFactory(f.cfg.GetBedrock(), f.textProcessor, f.logger).CreateClient(ctx)
	default:
		return nil, &config.ConfigurationError{Key: "llm.provider", Reason: fmt.Sprintf("unsupported provider %q", provider)}
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}
