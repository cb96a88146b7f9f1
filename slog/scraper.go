// Package slog provides logging decorators for pipeline collaborators.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webscrape"
)

// Ensure LoggingScraper implements webscrape.Scraper.
var _ webscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   webscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next webscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the extraction outcome and delegates to the wrapped scraper.
func (s *LoggingScraper) Scrape(page *webscrape.RenderedPage) (content *webscrape.ScrapedContent, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", page.URL,
			"duration", time.Since(begin),
			"err", err,
		}
		if content != nil {
			attrs = append(attrs,
				"markdown_bytes", len(content.MarkdownContent),
				"tables", len(content.StructuredData.Tables),
				"amounts", len(content.Amounts),
				"degraded", content.Error != "",
			)
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(page)
}
