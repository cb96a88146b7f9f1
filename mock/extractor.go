package mock

import "github.com/fwojciec/webscrape"

var _ webscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webscrape.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ webscrape.StructuredExtractor = (*StructuredExtractor)(nil)

// StructuredExtractor is a mock implementation of webscrape.StructuredExtractor.
type StructuredExtractor struct {
	ExtractStructuredFn func(contentHTML string) (*webscrape.StructuredData, error)
}

func (e *StructuredExtractor) ExtractStructured(contentHTML string) (*webscrape.StructuredData, error) {
	return e.ExtractStructuredFn(contentHTML)
}
