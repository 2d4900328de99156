package core

import (
	"encoding/json"
	"strings"
)

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// ResponseParser turns raw model replies into ClassificationResults
type ResponseParser struct {
	strict bool
}

// NewResponseParser creates a parser. In strict mode every field of
// ClassificationResult must be present and confidence must lie in [0,1];
// otherwise any JSON object is accepted and missing fields stay zero.
func NewResponseParser(strict bool) *ResponseParser {
	return &ResponseParser{strict: strict}
}

// replyFields mirrors ClassificationResult with pointers so absent keys can be detected
type replyFields struct {
	Subject      *string  `json:"subject"`
	IsSpam       *bool    `json:"is_spam"`
	EmailContent *string  `json:"email_content"`
	Confidence   *float64 `json:"confidence"`
	TimeDetected *string  `json:"time_detected"`
}

// CleanResponse trims the reply and removes one leading "```json" and one
// trailing "```" fence if present
func CleanResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, fenceOpen)
	cleaned = strings.TrimSuffix(cleaned, fenceClose)
	return strings.TrimSpace(cleaned)
}

// Parse decodes a model reply
func (p *ResponseParser) Parse(raw string) (*ClassificationResult, error) {
	var fields replyFields
	if err := json.Unmarshal([]byte(CleanResponse(raw)), &fields); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}

	if p.strict {
		if err := fields.validate(); err != nil {
			return nil, &ParseError{Raw: raw, Err: err}
		}
	}

	result := &ClassificationResult{}
	if fields.Subject != nil {
		result.Subject = *fields.Subject
	}
	if fields.IsSpam != nil {
		result.IsSpam = *fields.IsSpam
	}
	if fields.EmailContent != nil {
		result.EmailContent = *fields.EmailContent
	}
	if fields.Confidence != nil {
		result.Confidence = *fields.Confidence
	}
	if fields.TimeDetected != nil {
		result.TimeDetected = *fields.TimeDetected
	}
	return result, nil
}

func (f *replyFields) validate() error {
	switch {
	case f.Subject == nil:
		return &SchemaError{Field: "subject", Reason: "is missing"}
	case f.IsSpam == nil:
		return &SchemaError{Field: "is_spam", Reason: "is missing"}
	case f.EmailContent == nil:
		return &SchemaError{Field: "email_content", Reason: "is missing"}
	case f.Confidence == nil:
		return &SchemaError{Field: "confidence", Reason: "is missing"}
	case f.TimeDetected == nil:
		return &SchemaError{Field: "time_detected", Reason: "is missing"}
	case *f.Confidence < 0 || *f.Confidence > 1:
		return &SchemaError{Field: "confidence", Reason: "must be between 0 and 1"}
	}
	return nil
}
