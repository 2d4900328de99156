package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/mikey/llm-phishing-detector/internal/ports"
	"go.uber.org/zap"
)

// Analyzer runs a single analysis from the command line and prints the result as JSON
type Analyzer struct {
	analyzer ports.EmailAnalyzer
	logger   *zap.Logger
	out      io.Writer
	rawInput bool
}

// NewAnalyzer creates a new CLI analyzer. With rawInput set the input is
// analyzed verbatim instead of being parsed as a message.
func NewAnalyzer(analyzer ports.EmailAnalyzer, logger *zap.Logger, out io.Writer, rawInput bool) *Analyzer {
	return &Analyzer{
		analyzer: analyzer,
		logger:   logger,
		out:      out,
		rawInput: rawInput,
	}
}

// AnalyzeReader reads an email from r, analyzes it and prints the result
func (a *Analyzer) AnalyzeReader(ctx context.Context, r io.Reader) (*core.ClassificationResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	content := a.Content(raw)
	if err := core.ValidateContent(content); err != nil {
		return nil, err
	}

	a.logger.Debug("Analyzing email", zap.Int("content_length", len(content)))
	return a.print(a.timed(ctx, func(ctx context.Context) (*core.ClassificationResult, error) {
		return a.analyzer.Analyze(ctx, content)
	}))
}

// AnalyzeSample analyzes the built-in sample email and prints the result
func (a *Analyzer) AnalyzeSample(ctx context.Context) (*core.ClassificationResult, error) {
	return a.print(a.timed(ctx, a.analyzer.SampleAnalysis))
}

// Content returns the text to analyze for the given input
func (a *Analyzer) Content(raw []byte) string {
	if a.rawInput {
		return string(raw)
	}

	email, err := ParseEmail(raw)
	if err != nil {
		a.logger.Debug("Input is not a parseable message, using raw text", zap.Error(err))
		return string(raw)
	}

	a.logger.Debug("Parsed email",
		zap.String("from", email.From),
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.Int("body_length", len(email.Body)))
	return email.Content()
}

func (a *Analyzer) timed(ctx context.Context, analyze func(context.Context) (*core.ClassificationResult, error)) (*core.ClassificationResult, error) {
	start := time.Now()
	result, err := analyze(ctx)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Analysis complete",
		zap.Bool("is_spam", result.IsSpam),
		zap.Duration("duration", time.Since(start)))
	return result, nil
}

func (a *Analyzer) print(result *core.ClassificationResult, err error) (*core.ClassificationResult, error) {
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := fmt.Fprintln(a.out, string(out)); err != nil {
		return nil, fmt.Errorf("failed to write result: %w", err)
	}
	return result, nil
}
