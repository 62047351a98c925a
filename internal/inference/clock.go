package inference

import (
	"context"
	"time"
)

// Clock abstracts wall-clock reads and sleeps so backoff delays and result
// timestamps are observable in tests without real waiting.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the default Clock backed by the time package.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d or until ctx is canceled, whichever comes first.
// Returns the context's error if canceled.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
