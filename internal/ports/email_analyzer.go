package ports

import (
	"context"

	"github.com/mikey/llm-phishing-detector/internal/core"
)

// EmailAnalyzer classifies email content
type EmailAnalyzer interface {
	// Analyze classifies caller-supplied email content
	Analyze(ctx context.Context, emailContent string) (*core.ClassificationResult, error)

	// SampleAnalysis classifies the built-in sample email
	SampleAnalysis(ctx context.Context) (*core.ClassificationResult, error)
}
