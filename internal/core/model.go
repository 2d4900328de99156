package core

import (
	"strings"
)

// ClassificationResult is the structured verdict returned for one email
type ClassificationResult struct {
	Subject      string  `json:"subject"`
	IsSpam       bool    `json:"is_spam"`
	EmailContent string  `json:"email_content"`
	Confidence   float64 `json:"confidence"`
	TimeDetected string  `json:"time_detected"`
}

// AnalysisRequest is the JSON body accepted by the analyze endpoint.
// EmailContent is a pointer so that an absent field can be told apart from an
// empty one.
type AnalysisRequest struct {
	EmailContent *string `json:"email_content"`
}

// Email represents an email message
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Content renders the message as the plain text that is sent for analysis
func (e *Email) Content() string {
	var b strings.Builder
	if e.Subject != "" {
		b.WriteString("Subject: " + e.Subject + "\n")
	}
	if e.From != "" {
		b.WriteString("From: " + e.From + "\n")
	}
	if len(e.To) > 0 {
		b.WriteString("To: " + strings.Join(e.To, ", ") + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(e.Body)
	return b.String()
}
