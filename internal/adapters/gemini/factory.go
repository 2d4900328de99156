package gemini

import (
	"context"

	"github.com/mikey/llm-phishing-detector/internal/config"
	"github.com/mikey/llm-phishing-detector/internal/utils"
	"go.uber.org/zap"
)

// Factory creates new instances of GeminiClient
type Factory struct {
	cfg           config.GeminiConfig
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewFactory creates a new factory for GeminiClient instances
func NewFactory(cfg config.GeminiConfig, textProcessor *utils.TextProcessor, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:           cfg,
		textProcessor: textProcessor,
		logger:        logger,
	}
}

// CreateClient creates a new GeminiClient
func (f *Factory) CreateClient(ctx context.Context) (*GeminiClient, error) {
	return NewGeminiClient(
		ctx,
		f.cfg.APIKey,
		f.cfg.ModelName,
		GenerationSettings{
			MaxTokens:   f.cfg.MaxTokens,
			Temperature: f.cfg.Temperature,
			TopP:        f.cfg.TopP,
		},
		f.textProcessor,
		f.logger,
	)
}
