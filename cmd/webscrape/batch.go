package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/bloom"
	"github.com/fwojciec/webscrape/fs"
	"github.com/fwojciec/webscrape/scrape"
	wsslog "github.com/fwojciec/webscrape/slog"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.Sitemap != "" {
		filter, err := compileFilter(c.Filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webscrape.ErrorMessage(err))
			return err
		}
		urls = append(urls, discovered...)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs to scrape: pass URLs or --sitemap")
	}

	scraper, err := deps.NewScraper(c.Engine)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscrape.ErrorMessage(err))
		return err
	}

	writer, err := fs.NewResultWriter(c.OutDir, c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscrape.ErrorMessage(err))
		return err
	}

	batch := &scrape.Batch{
		Renderer:    deps.Renderer,
		Scraper:     wsslog.NewLoggingScraper(scraper, deps.Logger),
		Writer:      writer,
		Limiter:     scrape.NewDomainLimiter(c.RPS),
		Seen:        bloom.NewFilter(uint(len(urls))*2+1024, 0.001),
		Concurrency: c.Concurrency,
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Scraping %d URLs\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := batch.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Scraped %d pages to %s (%d failed, %d skipped)\n",
		result.Scraped, c.OutDir, result.Failed, result.Skipped)

	return nil
}

// compileFilter compiles --filter patterns into a URLFilter.
func compileFilter(patterns []string) (*webscrape.URLFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	filter := &webscrape.URLFilter{}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	return filter, nil
}
