package inference

import (
	"context"
	"fmt"
	"time"
)

// RetryConfig configures exponential backoff retry behavior.
type RetryConfig struct {
	MaxAttempts int   // total attempts including the first (default 3)
	BaseDelay   int   // seconds before the first retry; doubles each retry (default 2)
	Clock       Clock // defaults to SystemClock
	OnRetry     func(attempt int, delaySecs int, err error)
}

// RetryWithBackoff calls fn up to cfg.MaxAttempts times.
// Delays between attempts: BaseDelay, BaseDelay*2, BaseDelay*4, ...
// (2s then 4s with the defaults). Every error class takes the same backoff
// path; there is no retryable/non-retryable distinction and no jitter.
//
// The sleep is context-aware: cancellation during backoff returns the
// context's error immediately. After the attempt budget is spent the last
// error is returned wrapped with the attempt count.
func RetryWithBackoff(ctx context.Context, cfg RetryConfig, fn func() error) error {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = 2
	}
	clk := cfg.Clock
	if clk == nil {
		clk = SystemClock{}
	}

	delay := cfg.BaseDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		if attempt >= cfg.MaxAttempts {
			return fmt.Errorf("after %d attempts: %w", attempt, err)
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, delay, err)
		}

		if sleepErr := clk.Sleep(ctx, time.Duration(delay)*time.Second); sleepErr != nil {
			return sleepErr
		}

		// Double the delay for the next attempt.
		delay *= 2
	}
}
