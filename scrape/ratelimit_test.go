package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/webscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("different domains do not share a bucket", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.com"))
		require.NoError(t, limiter.Wait(context.Background(), "b.com"))
		require.NoError(t, limiter.Wait(context.Background(), "c.com"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("spaces out requests within one domain", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(20) // 50ms between requests

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.001)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := limiter.Wait(ctx, "example.com")
		require.Error(t, err)
	})
}
