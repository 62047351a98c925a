package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/hibernatus-hacker/deepwalker/internal/logging"
)

// Client sends analysis prompts to a provider and retries failures with
// exponential backoff. The zero value is not usable; Provider must be set.
type Client struct {
	Provider Streamer
	Retry    RetryConfig
}

// Analyze streams a model response for req and returns the concatenated
// chunk text, trimmed of surrounding whitespace.
//
// Any failure during request setup or streaming triggers the retry path;
// a partial buffer from a broken stream is discarded before the next
// attempt. After the attempt budget is spent the last error is returned
// wrapped with the attempt count.
func (c *Client) Analyze(ctx context.Context, req Request) (string, error) {
	cfg := c.Retry
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.OnRetry == nil {
		maxAttempts := cfg.MaxAttempts
		cfg.OnRetry = func(attempt int, delaySecs int, err error) {
			logging.Warn(fmt.Sprintf(
				"Error getting AI analysis: %v. Retrying in %d seconds (attempt %d/%d)...",
				err, delaySecs, attempt, maxAttempts))
		}
	}

	var buf strings.Builder
	err := RetryWithBackoff(ctx, cfg, func() error {
		buf.Reset()
		logging.Debug("Connecting to AI model...")
		return c.Provider.Stream(ctx, req, func(chunk string) {
			buf.WriteString(chunk)
		})
	})
	if err != nil {
		return "", fmt.Errorf("getting AI analysis: %w", err)
	}

	logging.Debug("Received response from AI model")
	return strings.TrimSpace(buf.String()), nil
}
