package core

import (
	"context"
)

// ModelClient defines the interface for interacting with generative-content services
type ModelClient interface {
	// GenerateContent prepends the system prompt to the email content, sends it
	// to the model and returns the reply text verbatim
	GenerateContent(ctx context.Context, emailContent string) (string, error)
}
