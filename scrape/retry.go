package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/webscrape"
)

// RenderFunc is the signature for a render function.
type RenderFunc func(ctx context.Context, url string) (*webscrape.RenderedPage, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for render retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RenderWithRetry attempts to render a URL with exponential backoff.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
// The logger function, if provided, is called for each retry attempt.
func RenderWithRetry(ctx context.Context, url string, render RenderFunc, logger LogFunc) (*webscrape.RenderedPage, error) {
	return RenderWithRetryDelays(ctx, url, render, logger, DefaultRetryDelays())
}

// RenderWithRetryDelays is like RenderWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
func RenderWithRetryDelays(ctx context.Context, url string, render RenderFunc, logger LogFunc, delays []time.Duration) (*webscrape.RenderedPage, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := render(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
