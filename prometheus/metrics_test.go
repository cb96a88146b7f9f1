package prometheus_test

import (
	"testing"
	"time"

	wsprom "github.com/fwojciec/webscrape/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	t.Run("records HTTP requests", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		m := wsprom.New(reg)

		m.ObserveRequest("POST", "/scrape", 200, 50*time.Millisecond)
		m.ObserveRequest("POST", "/scrape", 200, 70*time.Millisecond)
		m.ObserveRequest("POST", "/scrape", 500, 10*time.Millisecond)

		assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/scrape", "200")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/scrape", "500")))
	})

	t.Run("records scrape outcomes", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		m := wsprom.New(reg)

		m.ObserveScrape(wsprom.ScrapeOK, time.Second)
		m.ObserveScrape(wsprom.ScrapeDegraded, time.Second)
		m.ObserveScrape(wsprom.ScrapeOK, time.Second)

		assert.Equal(t, float64(2), testutil.ToFloat64(m.ScrapesTotal.WithLabelValues(wsprom.ScrapeOK)))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.ScrapesTotal.WithLabelValues(wsprom.ScrapeDegraded)))
	})

	t.Run("registers with a shared registry without collisions", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		m := wsprom.New(reg)
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)

		families, err := reg.Gather()
		require.NoError(t, err)
		assert.NotEmpty(t, families)
	})
}
