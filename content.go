package webscrape

import "unicode/utf8"

// ContactInfo holds contact details mined from the content subtree.
// Both sequences are deduplicated, first occurrence first.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// StructuredData holds the structured elements extracted from the content
// subtree. All sequences preserve document order.
type StructuredData struct {
	// Tables is a sequence of tables, each a sequence of rows, each row a
	// sequence of cell texts. Ragged rows (from colspan) are preserved
	// as-is, not padded.
	Tables [][][]string `json:"tables"`

	// Lists holds one flat item sequence per top-level list; nested items
	// are flattened into their enclosing list.
	Lists [][]string `json:"lists"`

	// Headings maps "h1".."h6" to heading texts in document order,
	// duplicates preserved.
	Headings map[string][]string `json:"headings"`

	ContactInfo ContactInfo `json:"contact_info"`

	// Dates are distinct matched date strings in their original surface form.
	Dates []string `json:"dates"`
}

// NewStructuredData returns a StructuredData with all sequences initialized
// so that serialized output never contains nulls.
func NewStructuredData() *StructuredData {
	return &StructuredData{
		Tables: [][][]string{},
		Lists:  [][]string{},
		Headings: map[string][]string{
			"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
		},
		ContactInfo: ContactInfo{Emails: []string{}, Phones: []string{}},
		Dates:       []string{},
	}
}

// Metadata summarizes a ScrapedContent. Every field is derived from the
// content itself via DeriveMetadata and is never independently settable.
type Metadata struct {
	ContentLength int  `json:"content_length"`
	ImagesCount   int  `json:"images_count"`
	LinksCount    int  `json:"links_count"`
	AmountsFound  int  `json:"amounts_found"`
	HasTables     bool `json:"has_tables"`
	HasLists      bool `json:"has_lists"`
	HeadingsCount int  `json:"headings_count"`
}

// ScrapedContent is the final record produced for one rendered page.
// It is constructed once per request, immutable after assembly, and
// never persisted.
type ScrapedContent struct {
	URL             string          `json:"url"`
	Title           string          `json:"title"`
	MarkdownContent string          `json:"markdown_content"`
	Metadata        Metadata        `json:"metadata"`
	Images          []string        `json:"images"`
	Links           []Link          `json:"links"`
	Amounts         []string        `json:"amounts"`
	StructuredData  *StructuredData `json:"structured_data"`
	ContentHash     string          `json:"content_hash,omitempty"`

	// Error carries the render failure description for degraded results.
	Error string `json:"error,omitempty"`
}

// NewScrapedContent returns an empty ScrapedContent for the given URL and
// title with all sequences initialized.
func NewScrapedContent(url, title string) *ScrapedContent {
	return &ScrapedContent{
		URL:            url,
		Title:          title,
		Images:         []string{},
		Links:          []Link{},
		Amounts:        []string{},
		StructuredData: NewStructuredData(),
	}
}

// ContentWriter persists scraped results, e.g. as files on disk.
type ContentWriter interface {
	WriteContent(content *ScrapedContent) error
}

// DeriveMetadata recomputes the summary metadata from the content.
// Content length counts characters, not bytes.
func DeriveMetadata(c *ScrapedContent) Metadata {
	headings := 0
	for _, hs := range c.StructuredData.Headings {
		headings += len(hs)
	}
	return Metadata{
		ContentLength: utf8.RuneCountInString(c.MarkdownContent),
		ImagesCount:   len(c.Images),
		LinksCount:    len(c.Links),
		AmountsFound:  len(c.Amounts),
		HasTables:     len(c.StructuredData.Tables) > 0,
		HasLists:      len(c.StructuredData.Lists) > 0,
		HeadingsCount: headings,
	}
}
