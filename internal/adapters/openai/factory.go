package openai

import (
	"github.com/mikey/llm-phishing-detector/internal/config"
	"github.com/mikey/llm-phishing-detector/internal/utils"
	"go.uber.org/zap"
)

// Factory creates new instances of OpenAIClient
type Factory struct {
	cfg           config.OpenAIConfig
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewFactory creates a new factory for OpenAIClient instances
func NewFactory(cfg config.OpenAIConfig, textProcessor *utils.TextProcessor, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:           cfg,
		textProcessor: textProcessor,
		logger:        logger,
	}
}

// CreateClient creates a new OpenAIClient
func (f *Factory) CreateClient() *OpenAIClient {
	return NewOpenAIClient(
		f.cfg.APIKey,
		f.cfg.ModelName,
		f.cfg.BaseURL,
		f.textProcessor,
		f.logger,
	)
}
