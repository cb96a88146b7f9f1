package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/webscrape"
	wsprom "github.com/fwojciec/webscrape/prometheus"
)

// scrapeRequest is the request body for POST /scrape.
type scrapeRequest struct {
	URL string `json:"url"`
}

// handleScrape renders the requested URL, runs the extraction
// pipeline, and returns the scraped content as JSON.
//
// A render failure is not an error: the response carries a degraded
// result with the error field set. Only unparseable HTML and internal
// failures map to error statuses.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateScrapeURL(req.URL); err != nil {
		respondError(w, ErrorStatusCode(webscrape.ErrorCode(err)), webscrape.ErrorMessage(err))
		return
	}

	if err := s.sem.Acquire(r.Context(), 1); err != nil {
		respondError(w, http.StatusServiceUnavailable, "server busy")
		return
	}
	defer s.sem.Release(1)

	begin := time.Now()

	ctx := r.Context()
	if s.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RenderTimeout)
		defer cancel()
	}

	page, err := s.Renderer.Render(ctx, req.URL)
	if err != nil {
		page = &webscrape.RenderedPage{
			URL:     req.URL,
			Failure: webscrape.ClassifyRenderError(err),
		}
	}

	content, scrapeErr := s.Scraper.Scrape(page)
	if scrapeErr != nil {
		s.Metrics.ObserveScrape(wsprom.ScrapeError, time.Since(begin))
		respondError(w, ErrorStatusCode(webscrape.ErrorCode(scrapeErr)), webscrape.ErrorMessage(scrapeErr))
		return
	}

	outcome := wsprom.ScrapeOK
	if content.Error != "" {
		outcome = wsprom.ScrapeDegraded
	}
	s.Metrics.ObserveScrape(outcome, time.Since(begin))

	respondJSON(w, http.StatusOK, content)
}

// validateScrapeURL checks that the URL is an absolute http(s) URL.
func validateScrapeURL(rawURL string) error {
	if rawURL == "" {
		return webscrape.Errorf(webscrape.EINVALID, "url is required")
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return webscrape.Errorf(webscrape.EINVALID, "invalid url: %s", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return webscrape.Errorf(webscrape.EINVALID, "unsupported scheme: %s", u.Scheme)
	}
	if u.Host == "" {
		return webscrape.Errorf(webscrape.EINVALID, "invalid url: %s", rawURL)
	}
	return nil
}
