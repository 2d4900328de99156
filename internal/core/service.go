package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DetectionService runs email content through the model and parses the verdict
type DetectionService struct {
	client ModelClient
	parser *ResponseParser
	logger *zap.Logger
}

// NewDetectionService creates a new detection service
func NewDetectionService(client ModelClient, parser *ResponseParser, logger *zap.Logger) *DetectionService {
	return &DetectionService{
		client: client,
		parser: parser,
		logger: logger,
	}
}

// Analyze classifies the given email content. Any failure is returned as an
// *AnalysisError wrapping the cause.
func (s *DetectionService) Analyze(ctx context.Context, emailContent string) (*ClassificationResult, error) {
	start := time.Now()

	reply, err := s.client.GenerateContent(ctx, emailContent)
	if err != nil {
		s.logger.Error("Model call failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, &AnalysisError{Err: err}
	}

	result, err := s.parser.Parse(reply)
	if err != nil {
		s.logger.Error("Failed to parse model reply",
			zap.Error(err),
			zap.Int("reply_length", len(reply)))
		return nil, &AnalysisError{Err: err}
	}

	s.logger.Info("Email analyzed",
		zap.Bool("is_spam", result.IsSpam),
		zap.Float64("confidence", result.Confidence),
		zap.Duration("duration", time.Since(start)))

	return result, nil
}

// SampleAnalysis classifies the built-in sample phishing email
func (s *DetectionService) SampleAnalysis(ctx context.Context) (*ClassificationResult, error) {
	return s.Analyze(ctx, SampleEmail)
}
