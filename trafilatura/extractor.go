// Package trafilatura provides an alternative extraction engine backed by
// go-trafilatura. Unlike the default goquery cleaner it uses statistical
// content detection, which can help on pages with unusual markup.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/webscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EMALFORMED, "trafilatura extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &webscrape.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Text:        strings.Join(strings.Fields(result.ContentText), " "),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
