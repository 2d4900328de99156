package di

import (
	"flag"
	"io"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/llm-phishing-detector/internal/adapters/cli"
	"github.com/mikey/llm-phishing-detector/internal/config"
	"github.com/mikey/llm-phishing-detector/internal/logging"
	"github.com/mikey/llm-phishing-detector/internal/ports"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// LLM provider flags
	Provider    string
	MaxBodySize int
	Permissive  bool

	// Bedrock flags
	BedrockRegion  string
	BedrockModelID string

	// Gemini flags
	GeminiAPIKey    string
	GeminiModelName string

	// OpenAI flags
	OpenAIAPIKey    string
	OpenAIModelName string

	// Input flags
	InputFile  string
	Raw        bool
	Sample     bool
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses the given arguments into a CLIFlags struct
func ParseFlags(name string, args []string) (*CLIFlags, error) {
	flags := &CLIFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// LLM provider flags
	fs.StringVar(&flags.Provider, "provider", "", "LLM provider (gemini, openai, bedrock)")
	fs.IntVar(&flags.MaxBodySize, "max-body-size", 0, "Maximum email size in bytes sent to the model (0 = unlimited)")
	fs.BoolVar(&flags.Permissive, "permissive", false, "Accept model replies with missing fields")

	// Bedrock flags
	fs.StringVar(&flags.BedrockRegion, "bedrock-region", "", "AWS region for Bedrock")
	fs.StringVar(&flags.BedrockModelID, "bedrock-model", "", "Bedrock model ID")

	// Gemini flags
	fs.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini (default $GEMINI_API_KEY)")
	fs.StringVar(&flags.GeminiModelName, "gemini-model", "", "Gemini model name (default $GEMINI_MODEL or "+config.DefaultGeminiModel+")")

	// OpenAI flags
	fs.StringVar(&flags.OpenAIAPIKey, "openai-api-key", "", "API key for OpenAI (default $OPENAI_API_KEY)")
	fs.StringVar(&flags.OpenAIModelName, "openai-model", "", "OpenAI model name")

	// Input flags
	fs.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	fs.BoolVar(&flags.Raw, "raw", false, "Analyze the input verbatim instead of parsing it as an email message")
	fs.BoolVar(&flags.Sample, "sample", false, "Analyze the built-in sample phishing email")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// overrides returns the configuration keys set explicitly on the command line
func (f *CLIFlags) overrides() map[string]interface{} {
	values := map[string]interface{}{}
	set := func(key, value string) {
		if value != "" {
			values[key] = value
		}
	}

	set("llm.provider", f.Provider)
	set("bedrock.region", f.BedrockRegion)
	set("bedrock.model_id", f.BedrockModelID)
	set("gemini.api_key", f.GeminiAPIKey)
	set("gemini.model_name", f.GeminiModelName)
	set("openai.api_key", f.OpenAIAPIKey)
	set("openai.model_name", f.OpenAIModelName)

	if f.MaxBodySize > 0 {
		values["analysis.max_body_size"] = f.MaxBodySize
	}
	if f.Permissive {
		values["analysis.strict_schema"] = false
	}
	return values
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		cfg, err := config.Load(flags.ConfigFile, flags.overrides())
		if err != nil {
			return nil, err
		}
		if used := cfg.GetViper().ConfigFileUsed(); used != "" {
			logger.Info("Loaded configuration from file", zap.String("file", used))
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	if err := provideDetection(container); err != nil {
		return nil, err
	}

	// Register CLI analyzer
	if err := container.Provide(func(analyzer ports.EmailAnalyzer, logger *zap.Logger, flags *CLIFlags) *cli.Analyzer {
		return cli.NewAnalyzer(analyzer, logger, out, flags.Raw)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
