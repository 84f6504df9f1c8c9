package orchestration

import (
	"context"
	"time"
)

// RetryPolicy controls how the coordinator reattempts driver assignment
// calls against the upstream services.
type RetryPolicy interface {
	// Do runs op, reattempting according to the policy, and returns the
	// last error when every attempt failed.
	Do(ctx context.Context, op func(ctx context.Context) error) error
}

// NoRetry runs the operation exactly once.
type NoRetry struct{}

// Do runs op a single time.
func (NoRetry) Do(ctx context.Context, op func(ctx context.Context) error) error {
	return op(ctx)
}

// FixedDelayRetry reattempts a fixed number of times with a constant pause
// between attempts.
type FixedDelayRetry struct {
	Attempts int
	Delay    time.Duration
}

// Do runs op up to Attempts times, waiting Delay between attempts.
// Stops early when the context is done.
func (r FixedDelayRetry) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.Delay):
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
	}

	return lastErr
}
