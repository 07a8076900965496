package llm

import (
	"errors"
	"fmt"
)

// ConfigurationError indicates the client cannot be constructed, typically
// because the API credential is absent.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("llm configuration error: %s", e.Message)
}

// AuthError indicates the completion endpoint rejected the credential (401).
// It is never retried.
type AuthError struct {
	Body string
}

func (e *AuthError) Error() string {
	return "invalid credential: completion endpoint returned 401"
}

// BadRequestError indicates the completion endpoint rejected the request
// shape (400). It is never retried.
type BadRequestError struct {
	Body string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("invalid request: completion endpoint returned 400: %s", e.Body)
}

// TransientError wraps a retryable upstream status (429, 500, 502, 503).
type TransientError struct {
	StatusCode int
	Body       string
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient upstream error: completion endpoint returned %d", e.StatusCode)
}

// EmptyResponseError indicates the transport call succeeded but the first
// choice carried no content. It surfaces immediately without retry.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "empty response: completion succeeded but returned no content"
}

// RetriesExhaustedError aggregates a failed retry sequence.
type RetriesExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("completion failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.LastErr
}

// IsRetryable reports whether an attempt error is worth retrying. Only the
// transient upstream statuses qualify; transport errors and every other
// status propagate immediately.
func IsRetryable(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
