package utils

import (
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const truncationMarker = "\n[... Content truncated due to size limits ...]"

// TextProcessor prepares email content before it is placed in a prompt
type TextProcessor struct {
	logger  *zap.Logger
	maxSize int
}

// NewTextProcessor creates a new TextProcessor. A maxSize of zero or less
// disables truncation.
func NewTextProcessor(logger *zap.Logger, maxSize int) *TextProcessor {
	return &TextProcessor{
		logger:  logger,
		maxSize: maxSize,
	}
}

// MaxSize returns the configured byte limit
func (tp *TextProcessor) MaxSize() int {
	return tp.maxSize
}

// TruncateText cuts text to at most maxSize bytes without splitting a rune
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]
	for len(truncated) > 0 && !utf8.ValidString(truncated) {
		truncated = truncated[:len(truncated)-1]
	}

	tp.logger.Debug("Text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated + truncationMarker
}

// SanitizeUTF8 replaces ill-formed UTF-8 sequences with U+FFFD
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized, _, err := transform.String(runes.ReplaceIllFormed(), text)
	if err != nil {
		tp.logger.Warn("Failed to sanitize text", zap.Error(err))
		return text
	}

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// ProcessText sanitizes and then truncates text to the configured limit.
// Valid text within the limit is returned unchanged.
func (tp *TextProcessor) ProcessText(text string) string {
	return tp.TruncateText(tp.SanitizeUTF8(text), tp.maxSize)
}
