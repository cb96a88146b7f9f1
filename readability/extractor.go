// Package readability provides an alternative extraction engine backed by
// go-readability's article scoring.
package readability

import (
	"strings"

	"github.com/fwojciec/webscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Content links
// are not reported, so link ranking degrades to document order.
func (e *Extractor) Extract(rawHTML string) (*webscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webscrape.Errorf(webscrape.EMALFORMED, "document is empty or unparseable")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EMALFORMED, "readability extraction failed: %v", err)
	}

	return &webscrape.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        strings.Join(strings.Fields(article.TextContent), " "),
	}, nil
}
