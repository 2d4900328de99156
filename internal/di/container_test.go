package di

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/mikey/llm-phishing-detector/internal/adapters/cli"
	"github.com/mikey/llm-phishing-detector/internal/config"
	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/ports"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"OPENAI_API_KEY",
		"PHISHING_DETECTOR_GEMINI_API_KEY",
		"PHISHING_DETECTOR_LLM_PROVIDER",
		"PHISHING_DETECTOR_SERVER_MODE",
	} {
		t.Setenv(key, "")
	}
}

func TestBuildContainer_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	container, err := BuildContainer()
	require.NoError(t, err)

	serverBuilt := false
	err = container.Invoke(func(ports.Server) {
		serverBuilt = true
	})

	require.Error(t, err)
	assert.False(t, serverBuilt)

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(dig.RootCause(err), &cfgErr))
	assert.Equal(t, "GEMINI_API_KEY", cfgErr.Key)
}

func TestBuildContainer_OpenAI(t *testing.T) {
	clearEnv(t)
	t.Setenv("PHISHING_DETECTOR_LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("PHISHING_DETECTOR_SERVER_MODE", "test")

	container, err := BuildContainer()
	require.NoError(t, err)

	err = container.Invoke(func(server ports.Server, analyzer ports.EmailAnalyzer, client core.ModelClient) {
		assert.NotNil(t, server)
		assert.IsType(t, &core.DetectionService{}, analyzer)
		assert.NotNil(t, client)
	})
	require.NoError(t, err)
}

func TestBuildCLIContainer(t *testing.T) {
	clearEnv(t)

	flags, err := ParseFlags("phishing-check", []string{"-provider", "openai", "-openai-api-key", "k", "-raw", "-permissive"})
	require.NoError(t, err)
	assert.True(t, flags.Raw)

	container, err := BuildCLIContainer(flags, &bytes.Buffer{})
	require.NoError(t, err)

	err = container.Invoke(func(analyzer *cli.Analyzer, cfg *config.Config) {
		assert.NotNil(t, analyzer)
		assert.Equal(t, "openai", cfg.GetLLM().Provider)
		assert.False(t, cfg.GetAnalysis().StrictSchema)
	})
	require.NoError(t, err)
}

func TestParseFlags_Overrides(t *testing.T) {
	flags, err := ParseFlags("phishing-check", []string{"-gemini-model", "gemini-1.5-pro", "-max-body-size", "4096"})
	require.NoError(t, err)

	overrides := flags.overrides()
	assert.Equal(t, "gemini-1.5-pro", overrides["gemini.model_name"])
	assert.Equal(t, 4096, overrides["analysis.max_body_size"])
	assert.NotContains(t, overrides, "llm.provider")
	assert.NotContains(t, overrides, "analysis.strict_schema")
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags("phishing-check", []string{"-threshold", "0.7"})
	assert.Error(t, err)
}
