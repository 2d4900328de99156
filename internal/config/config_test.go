package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader looks at; viper treats empty
// values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"OPENAI_API_KEY",
		"PHISHING_DETECTOR_GEMINI_API_KEY",
		"PHISHING_DETECTOR_GEMINI_MODEL_NAME",
		"PHISHING_DETECTOR_OPENAI_API_KEY",
		"PHISHING_DETECTOR_LLM_PROVIDER",
		"PHISHING_DETECTOR_SERVER_LISTEN_ADDRESS",
		"PHISHING_DETECTOR_ANALYSIS_STRICT_SCHEMA",
		"PHISHING_DETECTOR_GEMINI_TEMPERATURE",
	} {
		t.Setenv(key, "")
	}
}

func TestNew(t *testing.T) {
	t.Run("fails without GEMINI_API_KEY", func(t *testing.T) {
		clearEnv(t)

		cfg, err := New()

		assert.Nil(t, cfg)
		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "GEMINI_API_KEY", cfgErr.Key)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("loads defaults with api key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "test-key")

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, "gemini", cfg.GetLLM().Provider)
		gemini := cfg.GetGemini()
		assert.Equal(t, "test-key", gemini.APIKey)
		assert.Equal(t, DefaultGeminiModel, gemini.ModelName)
		assert.Nil(t, gemini.Temperature)
		assert.Nil(t, gemini.TopP)
		assert.Nil(t, gemini.MaxTokens)

		server := cfg.GetServer()
		assert.Equal(t, "0.0.0.0:5000", server.ListenAddress)
		assert.Equal(t, 30*time.Second, server.ShutdownTimeout)
		assert.Equal(t, int64(10<<20), server.MaxRequestBytes)

		assert.True(t, cfg.GetAnalysis().StrictSchema)
		assert.Equal(t, "info", cfg.GetLogging().Level)
		assert.Equal(t, "json", cfg.GetLogging().Format)
	})

	t.Run("reads model and overrides from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
		t.Setenv("PHISHING_DETECTOR_SERVER_LISTEN_ADDRESS", "127.0.0.1:9090")
		t.Setenv("PHISHING_DETECTOR_ANALYSIS_STRICT_SCHEMA", "false")
		t.Setenv("PHISHING_DETECTOR_GEMINI_TEMPERATURE", "0.2")

		cfg, err := New()
		require.NoError(t, err)

		gemini := cfg.GetGemini()
		assert.Equal(t, "gemini-1.5-pro", gemini.ModelName)
		require.NotNil(t, gemini.Temperature)
		assert.InDelta(t, 0.2, float64(*gemini.Temperature), 1e-6)
		assert.Equal(t, "127.0.0.1:9090", cfg.GetServer().ListenAddress)
		assert.False(t, cfg.GetAnalysis().StrictSchema)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		settings    map[string]any
		expectedKey string
	}{
		{
			name:        "gemini without model",
			settings:    map[string]any{"gemini.api_key": "k", "gemini.model_name": ""},
			expectedKey: "GEMINI_MODEL",
		},
		{
			name:        "openai without key",
			settings:    map[string]any{"llm.provider": "openai"},
			expectedKey: "OPENAI_API_KEY",
		},
		{
			name:        "bedrock without model",
			settings:    map[string]any{"llm.provider": "bedrock", "bedrock.model_id": ""},
			expectedKey: "bedrock.model_id",
		},
		{
			name:        "unknown provider",
			settings:    map[string]any{"llm.provider": "mystery"},
			expectedKey: "llm.provider",
		},
		{
			name:        "bad shutdown timeout",
			settings:    map[string]any{"gemini.api_key": "k", "server.shutdown_timeout": "soon"},
			expectedKey: "server.shutdown_timeout",
		},
		{
			name:     "openai with key",
			settings: map[string]any{"llm.provider": "openai", "openai.api_key": "k"},
		},
		{
			name:     "bedrock with defaults",
			settings: map[string]any{"llm.provider": "bedrock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			v := NewEmptyViper()
			for key, value := range tt.settings {
				v.Set(key, value)
			}

			err := NewFromViper(v).Validate()

			if tt.expectedKey == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.expectedKey, cfgErr.Key)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("overrides satisfy validation", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load("", map[string]interface{}{"gemini.api_key": "from-flag"})
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.GetGemini().APIKey)
	})

	t.Run("explicit config file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "detector.yaml")
		require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: openai\nopenai:\n  api_key: file-key\n  model_name: gpt-4o\n"), 0o600))

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.GetLLM().Provider)
		assert.Equal(t, "file-key", cfg.GetOpenAI().APIKey)
		assert.Equal(t, "gpt-4o", cfg.GetOpenAI().ModelName)
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		clearEnv(t)

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
		assert.Error(t, err)
	})
}
