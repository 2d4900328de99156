package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mikey/llm-phishing-detector/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        &core.ValidationError{Message: core.MsgContentEmpty},
			wantStatus: http.StatusBadRequest,
			wantMsg:    core.MsgContentEmpty,
		},
		{
			name:       "wrapped validation",
			err:        fmt.Errorf("reading body: %w", &core.ValidationError{Message: core.MsgContentRequired}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    core.MsgContentRequired,
		},
		{
			name:       "body too large",
			err:        &http.MaxBytesError{Limit: 10},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    msgBodyTooLarge,
		},
		{
			name:       "analysis failure",
			err:        &core.AnalysisError{Err: &core.ExternalServiceError{Provider: "gemini", Err: errors.New("timeout")}},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "phishing analysis failed: gemini request failed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
