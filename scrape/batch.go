package scrape

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/webscrape"
	"golang.org/x/sync/errgroup"
)

// SeenFilter remembers URLs that have already been scraped.
// Implementations may be probabilistic (Bloom filters).
type SeenFilter interface {
	Add(url string)
	Test(url string) bool
}

// Batch scrapes many URLs concurrently with retry, per-domain rate
// limiting, and URL deduplication.
type Batch struct {
	Renderer webscrape.Renderer
	Scraper  webscrape.Scraper

	// Writer, if set, receives each successful result in input order.
	Writer webscrape.ContentWriter

	// Limiter, if set, spaces out renders per domain.
	Limiter *DomainLimiter

	// Seen, if set, skips URLs that were already processed.
	Seen SeenFilter

	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch run.
type Result struct {
	Scraped int
	Failed  int
	Skipped int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// batchResult holds the outcome of processing a single URL.
type batchResult struct {
	position int
	url      string
	content  *webscrape.ScrapedContent
	err      error
}

// Run scrapes all URLs and reports progress via the optional callback.
// URLs already in the Seen filter are skipped. A render failure after
// retries still produces a degraded result; only EMALFORMED counts as
// failed.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	res := &Result{}

	pending := make([]string, 0, len(urls))
	for _, u := range urls {
		if b.Seen != nil && b.Seen.Test(u) {
			res.Skipped++
			continue
		}
		if b.Seen != nil {
			b.Seen.Add(u)
		}
		pending = append(pending, u)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan batchResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range pending {
			g.Go(func() error {
				resultCh <- b.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]batchResult, total)
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       r.url,
			}
			if r.err != nil {
				event.Type = ProgressFailed
				event.Error = r.err
			}
			progress(event)
		}
	}

	for _, r := range results {
		if r.err != nil {
			res.Failed++
			continue
		}
		if b.Writer != nil {
			if err := b.Writer.WriteContent(r.content); err != nil {
				res.Failed++
				continue
			}
		}
		res.Scraped++
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return res, nil
}

// processURL renders and scrapes a single URL.
func (b *Batch) processURL(ctx context.Context, position int, rawURL string) batchResult {
	result := batchResult{position: position, url: rawURL}

	if b.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := b.Limiter.Wait(ctx, u.Host); err != nil {
				result.err = err
				return result
			}
		}
	}

	delays := b.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	render := func(ctx context.Context, u string) (*webscrape.RenderedPage, error) {
		return b.Renderer.Render(ctx, u)
	}
	page, err := RenderWithRetryDelays(ctx, rawURL, render, nil, delays)
	if err != nil {
		// Produce a degraded result instead of aborting the URL.
		page = &webscrape.RenderedPage{
			URL:     rawURL,
			Failure: webscrape.ClassifyRenderError(err),
		}
	}

	content, err := b.Scraper.Scrape(page)
	if err != nil {
		result.err = err
		return result
	}

	result.content = content
	return result
}
