package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	var delays []time.Duration
	r := &RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Logger:      NewLogger(),
		Sleep:       func(d time.Duration) { delays = append(delays, d) },
	}

	calls := 0
	err := r.Do(context.Background(), "navigate", func() error {
		calls++
		if calls < 3 {
			return errors.New("timeout")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
	if len(delays) != 2 || delays[0] != time.Second || delays[1] != 2*time.Second {
		t.Errorf("back-off delays: got %v, want [1s 2s]", delays)
	}
}

func TestRetryWrapsLastError(t *testing.T) {
	sentinel := errors.New("page crashed")
	r := &RetryConfig{MaxAttempts: 2, Logger: NewLogger(), Sleep: func(time.Duration) {}}

	err := r.Do(context.Background(), "navigate", func() error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &RetryConfig{MaxAttempts: 5, Logger: NewLogger(), Sleep: func(time.Duration) {}}
	calls := 0
	err := r.Do(ctx, "navigate", func() error {
		calls++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("fn should not run on a cancelled context, ran %d times", calls)
	}
}
