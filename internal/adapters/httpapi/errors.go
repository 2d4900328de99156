package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-phishing-detector/internal/core"
)

const msgBodyTooLarge = "request body too large"

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MapError maps pipeline errors to an HTTP status and message
func MapError(err error) (int, string) {
	var validationErr *core.ValidationError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, msgBodyTooLarge
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// HandleError writes the mapped error response
func HandleError(c *gin.Context, err error) {
	status, message := MapError(err)
	c.JSON(status, ErrorResponse{Error: message})
}
