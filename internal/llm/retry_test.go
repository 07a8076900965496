package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := retryDo(context.Background(), 3, time.Millisecond, func() (string, error) {
		calls++
		return "done", nil
	}, IsRetryable)

	if err != nil || got != "done" {
		t.Fatalf("retryDo = (%q, %v)", got, err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryDoRecovers(t *testing.T) {
	calls := 0
	got, err := retryDo(context.Background(), 3, time.Millisecond, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, &TransientError{StatusCode: 503}
		}
		return 42, nil
	}, IsRetryable)

	if err != nil || got != 42 {
		t.Fatalf("retryDo = (%d, %v)", got, err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryDoStopsOnNonRetryable(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent")
	_, err := retryDo(context.Background(), 3, time.Millisecond, func() (int, error) {
		calls++
		return 0, permanent
	}, IsRetryable)

	if !errors.Is(err, permanent) {
		t.Fatalf("expected the permanent error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("non-retryable errors must not retry, got %d calls", calls)
	}
}

func TestRetryDoExhaustion(t *testing.T) {
	calls := 0
	_, err := retryDo(context.Background(), 3, time.Millisecond, func() (int, error) {
		calls++
		return 0, &TransientError{StatusCode: 429}
	}, IsRetryable)

	var exhausted *RetriesExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *RetriesExhaustedError, got %T: %v", err, err)
	}
	if exhausted.Attempts != 3 || calls != 3 {
		t.Errorf("Attempts = %d, calls = %d, want 3/3", exhausted.Attempts, calls)
	}
}

func TestRetryDoBackoffDoubles(t *testing.T) {
	base := 10 * time.Millisecond
	start := time.Now()
	_, _ = retryDo(context.Background(), 3, base, func() (int, error) {
		return 0, &TransientError{StatusCode: 500}
	}, IsRetryable)

	// Waits are base then 2*base.
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("elapsed %v, want at least 30ms of backoff", elapsed)
	}
}

func TestRetryDoHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := retryDo(ctx, 3, time.Millisecond, func() (int, error) {
		calls++
		return 0, nil
	}, IsRetryable)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("cancelled context should prevent calls, got %d", calls)
	}
}
