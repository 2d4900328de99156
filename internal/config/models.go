package config

import "time"

// LLMConfig represents the configuration for the LLM provider
type LLMConfig struct {
	Provider string
}

// GeminiConfig represents the configuration for Google Gemini.
// Generation settings are nil unless explicitly configured, in which case the
// model's own defaults apply.
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   *int32
	Temperature *float32
	TopP        *float32
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey    string
	ModelName string
	BaseURL   string
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region    string
	ModelID   string
	MaxTokens int
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	ListenAddress   string
	Mode            string
	ShutdownTimeout time.Duration
	MaxRequestBytes int64
}

// AnalysisConfig controls how email content and model replies are handled
type AnalysisConfig struct {
	StrictSchema bool
	MaxBodySize  int
}

// LoggingConfig represents the logger configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider: c.GetString("llm.provider"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	cfg := GeminiConfig{
		APIKey:    c.GetString("gemini.api_key"),
		ModelName: c.GetString("gemini.model_name"),
	}
	if c.IsSet("gemini.max_tokens") {
		maxTokens := int32(c.GetInt("gemini.max_tokens"))
		cfg.MaxTokens = &maxTokens
	}
	if c.IsSet("gemini.temperature") {
		temperature := float32(c.GetFloat64("gemini.temperature"))
		cfg.Temperature = &temperature
	}
	if c.IsSet("gemini.top_p") {
		topP := float32(c.GetFloat64("gemini.top_p"))
		cfg.TopP = &topP
	}
	return cfg
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:    c.GetString("openai.api_key"),
		ModelName: c.GetString("openai.model_name"),
		BaseURL:   c.GetString("openai.base_url"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:    c.GetString("bedrock.region"),
		ModelID:   c.GetString("bedrock.model_id"),
		MaxTokens: c.GetInt("bedrock.max_tokens"),
	}
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() ServerConfig {
	// Validate rejects unparsable timeouts, so the error is not expected here
	timeout, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		timeout = 30 * time.Second
	}
	return ServerConfig{
		ListenAddress:   c.GetString("server.listen_address"),
		Mode:            c.GetString("server.mode"),
		ShutdownTimeout: timeout,
		MaxRequestBytes: c.GetInt64("server.max_request_bytes"),
	}
}

// GetAnalysis returns the analysis configuration
func (c *Config) GetAnalysis() AnalysisConfig {
	return AnalysisConfig{
		StrictSchema: c.GetBool("analysis.strict_schema"),
		MaxBodySize:  c.GetInt("analysis.max_body_size"),
	}
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:  c.GetString("logging.level"),
		Format: c.GetString("logging.format"),
	}
}
