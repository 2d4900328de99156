package core

import (
	"fmt"
	"strings"
)

// Messages returned to callers for rejected input
const (
	MsgContentRequired = "email_content is required"
	MsgContentEmpty    = "Email content cannot be empty"
)

// ValidationError is returned when the caller supplied unusable email content
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseError is returned when a model reply cannot be decoded into a
// ClassificationResult
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a decoded reply that does not match the expected shape
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// ExternalServiceError wraps a failed call to the generative-content API
type ExternalServiceError struct {
	Provider string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// AnalysisError is the single error kind returned by the detection pipeline
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("phishing analysis failed: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ValidateContent rejects empty or whitespace-only email content
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Message: MsgContentEmpty}
	}
	return nil
}
