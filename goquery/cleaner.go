// Package goquery implements boilerplate removal, content selection, and
// structured-element extraction using CSS selectors over a parsed DOM.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webscrape"
)

// Ensure Cleaner implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*Cleaner)(nil)

// removeTags are stripped from the whole tree before content selection:
// scripts, styles, navigation, page chrome, and form controls. Removal is
// destructive and happens exactly once, so a selected subtree never
// contains any of these even when they were nested inside it.
var removeTags = []string{
	"script", "style", "noscript", "iframe",
	"nav", "header", "footer", "aside",
	"form", "button", "input", "select", "textarea",
}

// contentSelectors are tried in priority order; the first match wins.
// When none match, the largest text-bearing div/section is used, then the
// full body.
var contentSelectors = []string{
	"main",
	`[role="main"]`,
	"article",
	`[role="article"]`,
}

// RemovalStats records how many elements of each tag were stripped.
// Not surfaced in responses; useful for testing and debugging.
type RemovalStats struct {
	Removed map[string]int
}

// Cleaner strips boilerplate from raw HTML and selects the main content
// subtree. Cleaner is stateless and safe for concurrent use.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Extract processes raw HTML and returns the main content.
func (c *Cleaner) Extract(rawHTML string) (*webscrape.ExtractResult, error) {
	result, _, err := c.Clean(rawHTML)
	return result, err
}

// Clean is Extract plus removal statistics.
func (c *Cleaner) Clean(rawHTML string) (*webscrape.ExtractResult, *RemovalStats, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nil, webscrape.Errorf(webscrape.EMALFORMED, "document is empty or unparseable")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, nil, webscrape.Errorf(webscrape.EMALFORMED, "failed to parse HTML: %v", err)
	}

	title := collapseSpace(doc.Find("title").First().Text())

	stats := &RemovalStats{Removed: make(map[string]int)}
	for _, tag := range removeTags {
		sel := doc.Find(tag)
		if n := sel.Length(); n > 0 {
			stats.Removed[tag] = n
			sel.Remove()
		}
	}

	root := c.selectContentRoot(doc)

	contentHTML, err := goquery.OuterHtml(root)
	if err != nil {
		return nil, nil, webscrape.Errorf(webscrape.EMALFORMED, "failed to render content subtree: %v", err)
	}

	var links []string
	root.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})

	return &webscrape.ExtractResult{
		Title:        title,
		ContentHTML:  contentHTML,
		Text:         textContent(root.Nodes),
		ContentLinks: links,
	}, stats, nil
}

// selectContentRoot picks the content subtree by fixed priority: semantic
// main/article containers, then the largest text-bearing generic
// container, then the full body.
func (c *Cleaner) selectContentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if s := doc.Find(selector).First(); s.Length() > 0 {
			return s
		}
	}

	var best *goquery.Selection
	bestLen := 0
	doc.Find("div, section").Each(func(_ int, s *goquery.Selection) {
		if l := len(collapseSpace(s.Text())); l > bestLen {
			best, bestLen = s, l
		}
	})
	if best != nil {
		return best
	}

	return doc.Find("body")
}
