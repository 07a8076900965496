package llm

import (
	"context"
	"log"
	"time"
)

// retryDo runs fn up to maxAttempts times, sleeping baseDelay<<attempt between
// retryable failures. Non-retryable errors return immediately; once attempts
// are exhausted the last error is wrapped in a RetriesExhaustedError. The
// backoff sleep respects context cancellation.
func retryDo[T any](ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() (T, error), retryable func(error) bool) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err) {
			return zero, err
		}

		if attempt < maxAttempts-1 {
			wait := baseDelay << attempt
			log.Printf("[llm] attempt %d/%d failed: %v; retrying in %s", attempt+1, maxAttempts, err, wait)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
	}

	log.Printf("[llm] all %d attempts failed: %v", maxAttempts, lastErr)
	return zero, &RetriesExhaustedError{Attempts: maxAttempts, LastErr: lastErr}
}
