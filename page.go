package webscrape

import (
	"context"
	"errors"
	"strings"
)

// Link is a hyperlink captured from a rendered page.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// RenderFailureKind enumerates the ways rendering can fail to produce HTML.
type RenderFailureKind string

// Render failure kinds. The extraction pipeline does not distinguish
// between them; they are surfaced verbatim in degraded results.
const (
	RenderFailureBrowser     RenderFailureKind = "browser_error"
	RenderFailureNetwork     RenderFailureKind = "network_error"
	RenderFailureCertificate RenderFailureKind = "certificate_error"
	RenderFailureTimeout     RenderFailureKind = "timeout"
)

// RenderFailure describes why a renderer could not produce usable HTML.
type RenderFailure struct {
	Kind    RenderFailureKind
	Message string
}

// RenderedPage is the artifact produced by the rendering collaborator:
// the fully rendered HTML plus two JavaScript-evaluated side-channels
// (image URLs including lazy-loaded sources, and anchor text/URL pairs).
// A page with empty HTML and a non-nil Failure is valid input and yields
// an empty, degraded result rather than an error.
type RenderedPage struct {
	URL     string
	Title   string
	HTML    string
	Images  []string
	Links   []Link
	Failure *RenderFailure
}

// Renderer retrieves rendered pages from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content, lazy-loaded images, and consent overlays.
type Renderer interface {
	// Render navigates to the URL, waits for dynamic content, and returns
	// the rendered page with its image and link side-channels populated.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string) (*RenderedPage, error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// Scraper runs the content-extraction pipeline on a rendered page.
// Implementations are deterministic: identical input always yields
// identical output.
type Scraper interface {
	// Scrape extracts structured content from the page. The only error it
	// returns is EMALFORMED when the HTML cannot be parsed at all; callers
	// should treat that as "no extractable content".
	Scrape(page *RenderedPage) (*ScrapedContent, error)
}

// ClassifyRenderError maps a renderer error to a RenderFailure so the
// pipeline can produce a degraded result with a descriptive error field.
// Returns nil for a nil error.
func ClassifyRenderError(err error) *RenderFailure {
	if err == nil {
		return nil
	}

	kind := RenderFailureBrowser
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		kind = RenderFailureTimeout
	case strings.Contains(msg, "cert") || strings.Contains(msg, "ssl") || strings.Contains(msg, "tls"):
		kind = RenderFailureCertificate
	case strings.Contains(msg, "dns") || strings.Contains(msg, "connection") || strings.Contains(msg, "net::") || strings.Contains(msg, "resolve"):
		kind = RenderFailureNetwork
	}

	return &RenderFailure{Kind: kind, Message: err.Error()}
}
