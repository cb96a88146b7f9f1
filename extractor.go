package webscrape

// ExtractResult holds the cleaned main content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from document metadata.
	Title string

	// ContentHTML is the selected content subtree as clean HTML.
	// Boilerplate (scripts, styles, nav, chrome, form controls) has been
	// removed before selection.
	ContentHTML string

	// Text is the subtree's text nodes in document order, single-space
	// joined. Pattern matchers operate on this.
	Text string

	// ContentLinks are the raw href values of anchors inside the content
	// subtree. Used to rank in-content links above out-of-content ones.
	// Implementations that cannot provide them may leave this nil.
	ContentLinks []string
}

// Extractor removes boilerplate from HTML and selects the main content
// subtree.
type Extractor interface {
	// Extract processes raw HTML and returns the main content. Returns an
	// EMALFORMED error only when the document cannot be parsed at all.
	Extract(html string) (*ExtractResult, error)
}

// StructuredExtractor enumerates tables, lists, headings, contact details,
// and dates from a cleaned content subtree.
type StructuredExtractor interface {
	// ExtractStructured walks the content HTML and returns its structured
	// elements. Malformed substructure degrades to empty sequences; it
	// never aborts.
	ExtractStructured(contentHTML string) (*StructuredData, error)
}
