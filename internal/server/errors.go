package server

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-facing messages. Upstream details are logged, never returned.
const (
	msgResumeTextRequired = "resumeText is required"
	msgUpstreamFailed     = "completion request failed"
	msgMethodNotAllowed   = "Method not allowed"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validation *ErrValidation
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// publicMessage returns the text written to the client for err.
func publicMessage(err error) string {
	var validation *ErrValidation
	if errors.As(err, &validation) {
		return validation.Message
	}
	return msgUpstreamFailed
}
