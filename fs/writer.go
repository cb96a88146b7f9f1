// Package fs provides file-based output for scraped content.
package fs

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/webscrape"
)

// Output formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// URLToPath converts a page URL to a relative file path with the given
// extension. Example: https://example.com/blog/post → blog/post.json
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	if path == "" || path == "/" {
		return "index." + ext, nil
	}

	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.<ext> in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index." + ext, nil
	}

	return path + "." + ext, nil
}

// FormatContentMarkdown renders the content's markdown with YAML
// frontmatter carrying its provenance.
func FormatContentMarkdown(content *webscrape.ScrapedContent) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(content.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(content.Title)
	b.WriteString("\nscraped: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	if content.ContentHash != "" {
		b.WriteString("\ncontent_hash: ")
		b.WriteString(content.ContentHash)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(content.MarkdownContent)
	return b.String()
}

// Ensure ResultWriter implements webscrape.ContentWriter at compile time.
var _ webscrape.ContentWriter = (*ResultWriter)(nil)

// ResultWriter writes scraped content to a directory, one file per
// page, mirroring the URL path structure.
type ResultWriter struct {
	baseDir string
	format  string
}

// NewResultWriter creates a ResultWriter for the given base directory
// and format (FormatJSON or FormatMarkdown).
func NewResultWriter(baseDir, format string) (*ResultWriter, error) {
	if format != FormatJSON && format != FormatMarkdown {
		return nil, webscrape.Errorf(webscrape.EINVALID, "unknown output format: %s", format)
	}
	return &ResultWriter{baseDir: baseDir, format: format}, nil
}

// WriteContent writes one result to disk, creating parent directories
// as needed.
func (w *ResultWriter) WriteContent(content *webscrape.ScrapedContent) error {
	ext := "json"
	if w.format == FormatMarkdown {
		ext = "md"
	}

	relPath, err := URLToPath(content.URL, ext)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var data []byte
	if w.format == FormatJSON {
		data, err = json.MarshalIndent(content, "", "  ")
		if err != nil {
			return err
		}
	} else {
		data = []byte(FormatContentMarkdown(content))
	}

	return os.WriteFile(fullPath, data, 0644)
}
