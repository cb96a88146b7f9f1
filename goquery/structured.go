package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webscrape"
)

// Ensure Structured implements webscrape.StructuredExtractor at compile time.
var _ webscrape.StructuredExtractor = (*Structured)(nil)

// Structured enumerates tables, lists, headings, contact details, and
// dates from a cleaned content subtree. Structured is stateless and safe
// for concurrent use.
type Structured struct{}

// NewStructured creates a new Structured extractor.
func NewStructured() *Structured {
	return &Structured{}
}

// ExtractStructured walks the content HTML and returns its structured
// elements. Empty input yields empty sequences, not an error.
func (x *Structured) ExtractStructured(contentHTML string) (*webscrape.StructuredData, error) {
	sd := webscrape.NewStructuredData()
	if strings.TrimSpace(contentHTML) == "" {
		return sd, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EINVALID, "failed to parse content subtree: %v", err)
	}

	x.extractTables(doc, sd)
	x.extractLists(doc, sd)
	x.extractHeadings(doc, sd)
	x.extractEntities(doc, sd)

	return sd, nil
}

// extractTables emits each table as rows of cell texts in document order.
// Ragged rows are preserved as-is; the first row is not specially flagged.
func (x *Structured) extractTables(doc *goquery.Document, sd *webscrape.StructuredData) {
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		rows := [][]string{}
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, collapseSpace(cell.Text()))
			})
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		})
		sd.Tables = append(sd.Tables, rows)
	})
}

// extractLists emits one flat item sequence per top-level list; nested
// items join their enclosing list and nesting depth is discarded.
func (x *Structured) extractLists(doc *goquery.Document, sd *webscrape.StructuredData) {
	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		if list.ParentsFiltered("ul, ol").Length() > 0 {
			return
		}
		var items []string
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if t := itemText(li.Nodes); t != "" {
				items = append(items, t)
			}
		})
		if len(items) > 0 {
			sd.Lists = append(sd.Lists, items)
		}
	})
}

// extractHeadings indexes heading texts by level across the whole subtree
// in document order, duplicates preserved.
func (x *Structured) extractHeadings(doc *goquery.Document, sd *webscrape.StructuredData) {
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		level := goquery.NodeName(h)
		if t := collapseSpace(h.Text()); t != "" {
			sd.Headings[level] = append(sd.Headings[level], t)
		}
	})
}

// extractEntities mines the subtree text for contact details and dates,
// and additionally scans mailto:/tel: href values for emails and phones.
func (x *Structured) extractEntities(doc *goquery.Document, sd *webscrape.StructuredData) {
	text := textContent(doc.Find("body").Nodes)

	emails := webscrape.MatchTexts(webscrape.MatchEmails(text))
	phones := webscrape.MatchTexts(webscrape.MatchPhones(text))

	doc.Find(`a[href^="mailto:"], a[href^="tel:"]`).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		switch {
		case strings.HasPrefix(href, "mailto:"):
			addr := strings.TrimPrefix(href, "mailto:")
			if i := strings.IndexByte(addr, '?'); i >= 0 {
				addr = addr[:i]
			}
			emails = append(emails, webscrape.MatchTexts(webscrape.MatchEmails(addr))...)
		case strings.HasPrefix(href, "tel:"):
			phones = append(phones, webscrape.MatchTexts(webscrape.MatchPhones(strings.TrimPrefix(href, "tel:")))...)
		}
	})

	sd.ContactInfo.Emails = append(sd.ContactInfo.Emails, dedupe(emails)...)
	sd.ContactInfo.Phones = append(sd.ContactInfo.Phones, dedupe(phones)...)
	sd.Dates = append(sd.Dates, webscrape.MatchTexts(webscrape.MatchDates(text))...)
}

func dedupe(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	out := vals[:0]
	for _, v := range vals {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
