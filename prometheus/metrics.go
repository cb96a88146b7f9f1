// Package prometheus provides Prometheus metrics for the scraping service.
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ScrapesTotal    *prometheus.CounterVec
	ScrapeDuration  prometheus.Histogram
}

// Scrape outcome label values.
const (
	ScrapeOK       = "ok"
	ScrapeDegraded = "degraded"
	ScrapeError    = "error"
)

// New creates Metrics registered with the given registerer.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webscrape",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "webscrape",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ScrapesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webscrape",
			Name:      "scrapes_total",
			Help:      "Total number of scrape operations by outcome.",
		}, []string{"outcome"}),
		ScrapeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "webscrape",
			Name:      "scrape_duration_seconds",
			Help:      "End-to-end scrape latency including rendering.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}),
	}
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveScrape records one scrape operation with its outcome.
func (m *Metrics) ObserveScrape(outcome string, duration time.Duration) {
	m.ScrapesTotal.WithLabelValues(outcome).Inc()
	m.ScrapeDuration.Observe(duration.Seconds())
}
