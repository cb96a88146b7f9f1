// Package scrape orchestrates the content-extraction pipeline: boilerplate
// removal, structured-element extraction, entity mining, markdown
// conversion, and assembly of the final record. It also provides batch
// scraping with retry, deduplication, and per-domain rate limiting.
package scrape

import (
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webscrape"
)

// Ensure Pipeline implements webscrape.Scraper at compile time.
var _ webscrape.Scraper = (*Pipeline)(nil)

// Pipeline runs the extraction stages against a rendered page. It holds no
// mutable state and is safe for concurrent use across requests.
//
// Stages degrade independently: a broken table must not prevent markdown
// rendering or amount extraction from succeeding. The only error Scrape
// returns is EMALFORMED from the extractor.
type Pipeline struct {
	Extractor  webscrape.Extractor
	Structured webscrape.StructuredExtractor
	Converter  webscrape.Converter
}

// NewPipeline creates a Pipeline from its three stages.
func NewPipeline(e webscrape.Extractor, s webscrape.StructuredExtractor, c webscrape.Converter) *Pipeline {
	return &Pipeline{Extractor: e, Structured: s, Converter: c}
}

// Scrape extracts structured content from a rendered page.
//
// A page with no HTML (rendering failed upstream) is valid input: the
// result is an empty ScrapedContent with its Error field describing the
// failure. Identical input always yields identical output.
func (p *Pipeline) Scrape(page *webscrape.RenderedPage) (*webscrape.ScrapedContent, error) {
	content := webscrape.NewScrapedContent(page.URL, page.Title)

	if page.HTML == "" || page.Failure != nil {
		if page.Failure != nil {
			content.Error = fmt.Sprintf("%s: %s", page.Failure.Kind, page.Failure.Message)
		} else {
			content.Error = "no HTML available"
		}
		content.Metadata = webscrape.DeriveMetadata(content)
		return content, nil
	}

	extracted, err := p.Extractor.Extract(page.HTML)
	if err != nil {
		return nil, err
	}

	if content.Title == "" {
		content.Title = extracted.Title
	}

	if sd, err := p.Structured.ExtractStructured(extracted.ContentHTML); err == nil && sd != nil {
		content.StructuredData = sd
	}

	if extracted.ContentHTML != "" {
		if md, err := p.Converter.Convert(extracted.ContentHTML); err == nil {
			content.MarkdownContent = md
		}
	}

	content.Amounts = append(content.Amounts, webscrape.MatchTexts(webscrape.MatchAmounts(extracted.Text))...)
	content.Images = webscrape.DedupeURLs(page.Images)
	content.Links = webscrape.RankLinks(page.Links, contentURLSet(page.URL, extracted.ContentLinks))

	if content.MarkdownContent != "" {
		content.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(content.MarkdownContent))
	}
	content.Metadata = webscrape.DeriveMetadata(content)

	return content, nil
}

// contentURLSet resolves the content subtree's raw hrefs against the page
// URL so they can be compared with the absolute side-channel link URLs.
// Raw hrefs are kept alongside resolved ones in case the base is missing.
func contentURLSet(pageURL string, hrefs []string) map[string]bool {
	if len(hrefs) == 0 {
		return nil
	}

	set := make(map[string]bool, len(hrefs)*2)
	base, baseErr := url.Parse(pageURL)
	for _, href := range hrefs {
		if href == "" || href[0] == '#' {
			continue
		}
		set[href] = true
		if baseErr != nil {
			continue
		}
		if ref, err := url.Parse(href); err == nil {
			set[base.ResolveReference(ref).String()] = true
		}
	}
	return set
}
