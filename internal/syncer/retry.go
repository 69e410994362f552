package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/hearthkeep/hearthkeep/internal/logger"
)

// RetryExhaustedError reports that an operation kept failing through its
// whole attempt budget. It wraps the final failure.
type RetryExhaustedError struct {
	Label    string
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("%s: gave up after %d attempts: %v", e.Label, e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error { return e.Err }

// RetryPolicy wraps fallible operations with bounded exponential backoff.
// Attempt k (0-indexed) is preceded by a delay of 2^k * BaseDelay; no delay
// follows the final failure. No jitter: delays stay deterministic.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	logger *logger.Logger
}

// NewRetryPolicy returns a policy with the given attempt budget and base
// delay.
func NewRetryPolicy(maxAttempts int, baseDelay time.Duration, log *logger.Logger) RetryPolicy {
	return RetryPolicy{MaxAttempts: maxAttempts, BaseDelay: baseDelay, logger: log}
}

// Do runs op until it succeeds or the attempt budget is spent. Every failure
// is logged with the attempt index and label; after the final failure the
// error comes back wrapped in [RetryExhaustedError] so the caller decides
// what to do with the state it left alone.
func (p RetryPolicy) Do(ctx context.Context, label string, op func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0

	attempt := 0
	operation := func() (struct{}, error) {
		err := op(ctx)
		if err != nil {
			p.logger.Warn().
				Str("op", label).
				Int("attempt", attempt).
				Err(err).
				Msg("sync operation failed")
			attempt++
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(p.MaxAttempts)),
	)
	if err != nil {
		return &RetryExhaustedError{Label: label, Attempts: p.MaxAttempts, Err: err}
	}

	return nil
}
