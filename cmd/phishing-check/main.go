package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/llm-phishing-detector/internal/adapters/cli"
	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/di"
	"go.uber.org/zap"
)

func main() {
	flags, err := di.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	container, err := di.BuildCLIContainer(flags, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	err = container.Invoke(func(logger *zap.Logger, analyzer *cli.Analyzer, client core.ModelClient) error {
		defer logger.Sync()
		defer closeClient(logger, client)
		return analyze(flags, analyzer, logger)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func analyze(flags *di.CLIFlags, analyzer *cli.Analyzer, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if flags.Sample {
		logger.Info("Analyzing built-in sample email")
		_, err := analyzer.AnalyzeSample(ctx)
		return err
	}

	var input io.Reader = os.Stdin
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		input = file
		logger.Info("Reading email from file", zap.String("file", flags.InputFile))
	} else {
		logger.Info("Reading email from stdin")
	}

	_, err := analyzer.AnalyzeReader(ctx, input)
	return err
}

func closeClient(logger *zap.Logger, client core.ModelClient) {
	if closer, ok := client.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close model client", zap.Error(err))
		}
	}
}
