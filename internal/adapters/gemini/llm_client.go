package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const providerName = "gemini"

var errNoCandidates = errors.New("response contained no candidates")

// contentGenerator is the part of *genai.GenerativeModel the client depends on
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient is an implementation of the ModelClient interface using Google Gemini
type GeminiClient struct {
	client        *genai.Client
	model         contentGenerator
	modelName     string
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(
	ctx context.Context,
	apiKey string,
	modelName string,
	settings GenerationSettings,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	settings.apply(model)

	return &GeminiClient{
		client:        client,
		model:         model,
		modelName:     modelName,
		textProcessor: textProcessor,
		logger:        logger,
	}, nil
}

// GenerationSettings holds the optional sampling parameters. Nil fields leave
// the model defaults in place.
type GenerationSettings struct {
	MaxTokens   *int32
	Temperature *float32
	TopP        *float32
}

func (s GenerationSettings) apply(model *genai.GenerativeModel) {
	if s.MaxTokens != nil {
		model.SetMaxOutputTokens(*s.MaxTokens)
	}
	if s.Temperature != nil {
		model.SetTemperature(*s.Temperature)
	}
	if s.TopP != nil {
		model.SetTopP(*s.TopP)
	}
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// GenerateContent sends the prompt for emailContent to Gemini and returns the reply text
func (c *GeminiClient) GenerateContent(ctx context.Context, emailContent string) (string, error) {
	prompt := core.BuildPrompt(c.textProcessor.ProcessText(emailContent))

	c.logger.Debug("Sending prompt to Gemini",
		zap.String("model", c.modelName),
		zap.Int("prompt_length", len(prompt)))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &core.ExternalServiceError{Provider: providerName, Err: err}
	}

	text, err := responseText(resp)
	if err != nil {
		return "", &core.ExternalServiceError{Provider: providerName, Err: err}
	}
	return text, nil
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
