package openai

import (
	"context"
	"errors"

	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const providerName = "openai"

var errNoChoices = errors.New("response contained no choices")

// OpenAIClient is an implementation of the ModelClient interface using OpenAI
type OpenAIClient struct {
	client        *openai.Client
	modelName     string
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewOpenAIClient creates a new OpenAI client. An empty baseURL uses the public API.
func NewOpenAIClient(
	apiKey string,
	modelName string,
	baseURL string,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
) *OpenAIClient {
	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}

	return &OpenAIClient{
		client:        openai.NewClientWithConfig(clientCfg),
		modelName:     modelName,
		textProcessor: textProcessor,
		logger:        logger,
	}
}

// GenerateContent sends the prompt for emailContent as a single user message
// and returns the text of the first choice
func (c *OpenAIClient) GenerateContent(ctx context.Context, emailContent string) (string, error) {
	prompt := core.BuildPrompt(c.textProcessor.ProcessText(emailContent))

	c.logger.Debug("Sending prompt to OpenAI",
		zap.String("model", c.modelName),
		zap.Int("prompt_length", len(prompt)))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", &core.ExternalServiceError{Provider: providerName, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &core.ExternalServiceError{Provider: providerName, Err: errNoChoices}
	}
	return resp.Choices[0].Message.Content, nil
}
