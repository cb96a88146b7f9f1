package mock

import "github.com/fwojciec/webscrape"

var _ webscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of webscrape.Scraper.
type Scraper struct {
	ScrapeFn func(page *webscrape.RenderedPage) (*webscrape.ScrapedContent, error)
}

func (s *Scraper) Scrape(page *webscrape.RenderedPage) (*webscrape.ScrapedContent, error) {
	return s.ScrapeFn(page)
}

var _ webscrape.ContentWriter = (*ContentWriter)(nil)

// ContentWriter is a mock implementation of webscrape.ContentWriter.
type ContentWriter struct {
	WriteContentFn func(content *webscrape.ScrapedContent) error
}

func (w *ContentWriter) WriteContent(content *webscrape.ScrapedContent) error {
	return w.WriteContentFn(content)
}
