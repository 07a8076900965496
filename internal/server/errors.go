package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Upstream model failures are the server's problem, not the client's, so
// everything beyond validation maps to 500.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the client-facing message for an error. Validation errors
// carry their own message; everything else gets a generic one, with detail
// available in development mode only.
func publicMessage(err error) string {
	if v, ok := err.(*ErrValidation); ok {
		return v.Message
	}
	return "analysis failed"
}
