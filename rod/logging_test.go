package rod_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/mock"
	"github.com/fwojciec/webscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ webscrape.Renderer = (*rod.LoggingRenderer)(nil)

func TestLoggingRenderer(t *testing.T) {
	t.Parallel()

	t.Run("logs successful renders", func(t *testing.T) {
		t.Parallel()

		next := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (*webscrape.RenderedPage, error) {
				return &webscrape.RenderedPage{
					URL:    url,
					HTML:   "<html></html>",
					Images: []string{"https://example.com/a.png"},
				}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		page, err := rod.NewLoggingRenderer(next, logger).Render(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.NotNil(t, page)
		assert.Contains(t, buf.String(), "msg=render")
		assert.Contains(t, buf.String(), "url=https://example.com")
		assert.Contains(t, buf.String(), "images=1")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (*webscrape.RenderedPage, error) {
				return nil, fmt.Errorf("net::ERR_CONNECTION_REFUSED")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		_, err := rod.NewLoggingRenderer(next, logger).Render(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "ERR_CONNECTION_REFUSED")
	})

	t.Run("close delegates to the wrapped renderer", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Renderer{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		require.NoError(t, rod.NewLoggingRenderer(next, logger).Close())
		assert.True(t, closed)
	})
}
