package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultGeminiModel is used when GEMINI_MODEL is not set
const DefaultGeminiModel = "gemini-2.0-flash"

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New loads the configuration from .env, an optional config file and the
// environment, and validates it
func New() (*Config, error) {
	return Load("", nil)
}

// Load is New with an explicit config file and overrides applied on top of
// every other source. An empty configFile searches the default locations.
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	// Values already present in the environment take precedence over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := NewEmptyViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/phishing-detector/")
		v.AddConfigPath("$HOME/.phishing-detector")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// Config file not found, using defaults
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	cfg := &Config{v: v}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults and environment bindings
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// LLM provider defaults
	v.SetDefault("llm.provider", "gemini")

	// Server defaults
	v.SetDefault("server.listen_address", "0.0.0.0:5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.max_request_bytes", 10<<20)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model_name", DefaultGeminiModel)

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model_name", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "")

	// Bedrock defaults
	v.SetDefault("bedrock.region", "us-east-1")
	v.SetDefault("bedrock.model_id", "anthropic.claude-v2")
	v.SetDefault("bedrock.max_tokens", 1000)

	// Analysis defaults
	v.SetDefault("analysis.strict_schema", true)
	v.SetDefault("analysis.max_body_size", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// bindEnv maps the well-known provider variables onto their keys; everything
// else is reachable as PHISHING_DETECTOR_<SECTION>_<KEY>
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("PHISHING_DETECTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY", "PHISHING_DETECTOR_GEMINI_API_KEY")
	_ = v.BindEnv("gemini.model_name", "GEMINI_MODEL", "PHISHING_DETECTOR_GEMINI_MODEL_NAME")
	_ = v.BindEnv("openai.api_key", "OPENAI_API_KEY", "PHISHING_DETECTOR_OPENAI_API_KEY")
}

// Validate checks that the active provider has everything it needs to start
func (c *Config) Validate() error {
	switch provider := c.GetLLM().Provider; provider {
	case "gemini":
		gemini := c.GetGemini()
		if strings.TrimSpace(gemini.APIKey) == "" {
			return &ConfigurationError{Key: "GEMINI_API_KEY", Reason: "must be set"}
		}
		if strings.TrimSpace(gemini.ModelName) == "" {
			return &ConfigurationError{Key: "GEMINI_MODEL", Reason: "must be set"}
		}
	case "openai":
		openai := c.GetOpenAI()
		if strings.TrimSpace(openai.APIKey) == "" {
			return &ConfigurationError{Key: "OPENAI_API_KEY", Reason: "must be set"}
		}
		if strings.TrimSpace(openai.ModelName) == "" {
			return &ConfigurationError{Key: "openai.model_name", Reason: "must be set"}
		}
	case "bedrock":
		bedrock := c.GetBedrock()
		if bedrock.Region == "" {
			return &ConfigurationError{Key: "bedrock.region", Reason: "must be set"}
		}
		if bedrock.ModelID == "" {
			return &ConfigurationError{Key: "bedrock.model_id", Reason: "must be set"}
		}
	default:
		return &ConfigurationError{Key: "llm.provider", Reason: fmt.Sprintf("unsupported provider %q", provider)}
	}

	if _, err := c.GetDuration("server.shutdown_timeout"); err != nil {
		return &ConfigurationError{Key: "server.shutdown_timeout", Reason: err.Error()}
	}
	return nil
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetInt64 gets an int64 value from the configuration
func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// IsSet reports whether the key was given a value anywhere, defaults included
func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
