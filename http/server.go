// Package http provides the HTTP service shell: a JSON scraping
// endpoint plus health and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/webscrape"
	wsprom "github.com/fwojciec/webscrape/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/semaphore"
)

// Defaults for server configuration.
const (
	DefaultAddr                 = ":8000"
	DefaultRenderTimeout        = 60 * time.Second
	DefaultMaxConcurrentRenders = 4
	DefaultShutdownTimeout      = 10 * time.Second
)

// Server serves the scraping API over HTTP.
//
// Configure the exported fields before calling Open or Handler.
type Server struct {
	ln     net.Listener
	server *http.Server
	sem    *semaphore.Weighted

	Addr string

	Renderer webscrape.Renderer
	Scraper  webscrape.Scraper

	Logger  *slog.Logger
	Metrics *wsprom.Metrics

	// Gatherer backs the /metrics endpoint.
	Gatherer prometheus.Gatherer

	// RenderTimeout bounds a single render, including retries at the
	// browser level.
	RenderTimeout time.Duration

	// MaxConcurrentRenders caps how many renders run at once. Excess
	// requests queue until a slot frees up or their context ends.
	MaxConcurrentRenders int64
}

// NewServer creates a Server with default configuration and metrics
// registered on a fresh registry.
func NewServer() *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		Addr:                 DefaultAddr,
		Logger:               slog.Default(),
		Metrics:              wsprom.New(registry),
		Gatherer:             registry,
		RenderTimeout:        DefaultRenderTimeout,
		MaxConcurrentRenders: DefaultMaxConcurrentRenders,
	}
}

// Handler builds the routed handler with request ID, logging, and
// metrics middleware applied. Useful for tests; Open calls it.
func (s *Server) Handler() http.Handler {
	if s.sem == nil {
		n := s.MaxConcurrentRenders
		if n <= 0 {
			n = DefaultMaxConcurrentRenders
		}
		s.sem = semaphore.NewWeighted(n)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /scrape", s.handleScrape)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	var h http.Handler = mux
	h = s.metricsMiddleware(h)
	h = s.loggingMiddleware(h)
	h = requestIDMiddleware(h)
	return h
}

// Open starts listening on Addr. It returns once the listener is
// bound; the server runs in a background goroutine until Close.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server", "err", err)
		}
	}()

	s.Logger.Info("listening", "addr", ln.Addr().String())
	return nil
}

// Close gracefully shuts down the server, waiting for in-flight
// requests up to DefaultShutdownTimeout.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server. Only valid after Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorStatusCode maps an application error code to an HTTP status.
func ErrorStatusCode(code string) int {
	switch code {
	case webscrape.EINVALID:
		return http.StatusBadRequest
	case webscrape.EMALFORMED:
		return http.StatusUnprocessableEntity
	case webscrape.ENOTFOUND:
		return http.StatusNotFound
	case webscrape.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON writes payload as a JSON response.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes an error message as a JSON response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
