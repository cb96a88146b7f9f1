package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/fwojciec/webscrape/cmd/webscrape"
)

const articleHTML = `<html><head><title>Doc</title></head><body><nav>Menu</nav><article><h1>Title</h1><p>Contact: a@b.com, call +1-555-123-4567. Price $1,000.00</p></article></body></html>`

func newTestMain(renderer webscrape.Renderer) *main.Main {
	m := main.NewMain()
	m.Renderer = renderer
	return m
}

func runCLI(t *testing.T, m *main.Main, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errBuf bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errBuf)
	return out.String(), errBuf.String(), err
}

func staticRenderer(html string) *mock.Renderer {
	return &mock.Renderer{
		RenderFn: func(ctx context.Context, url string) (*webscrape.RenderedPage, error) {
			return &webscrape.RenderedPage{URL: url, Title: "Doc", HTML: html}, nil
		},
	}
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, newTestMain(&mock.Renderer{}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, newTestMain(&mock.Renderer{}), "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "scrape")
	assert.Contains(t, stdout, "serve")
}

func TestScrapeCommand(t *testing.T) {
	t.Parallel()

	t.Run("prints scraped content as JSON", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(staticRenderer(articleHTML))
		stdout, _, err := runCLI(t, m, "scrape", "https://example.com/doc")

		require.NoError(t, err)

		var content webscrape.ScrapedContent
		require.NoError(t, json.Unmarshal([]byte(stdout), &content))
		assert.Equal(t, "https://example.com/doc", content.URL)
		assert.Equal(t, "Doc", content.Title)
		assert.Contains(t, content.MarkdownContent, "# Title")
		assert.NotContains(t, content.MarkdownContent, "Menu")
		assert.Equal(t, []string{"$1,000.00"}, content.Amounts)
		assert.Equal(t, []string{"a@b.com"}, content.StructuredData.ContactInfo.Emails)
	})

	t.Run("prints markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(staticRenderer(articleHTML))
		stdout, _, err := runCLI(t, m, "scrape", "https://example.com/doc", "--format", "markdown")

		require.NoError(t, err)
		assert.Contains(t, stdout, "source: https://example.com/doc")
		assert.Contains(t, stdout, "# Title")
	})

	t.Run("render failure produces a degraded result", func(t *testing.T) {
		t.Parallel()

		renderer := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (*webscrape.RenderedPage, error) {
				return nil, fmt.Errorf("net::ERR_NAME_NOT_RESOLVED")
			},
		}

		m := newTestMain(renderer)
		stdout, _, err := runCLI(t, m, "scrape", "https://down.example.com")

		require.NoError(t, err)

		var content webscrape.ScrapedContent
		require.NoError(t, json.Unmarshal([]byte(stdout), &content))
		assert.Contains(t, content.Error, "network_error")
		assert.Empty(t, content.MarkdownContent)
	})

	t.Run("rejects unknown engines", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(staticRenderer(articleHTML))
		_, _, err := runCLI(t, m, "scrape", "https://example.com", "--engine", "magic")

		require.Error(t, err)
	})
}

func TestBatchCommand(t *testing.T) {
	t.Parallel()

	t.Run("writes results for every URL", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := newTestMain(staticRenderer(articleHTML))

		stdout, _, err := runCLI(t, m, "batch",
			"https://example.com/a", "https://example.com/b",
			"--out-dir", dir, "--rps", "100",
		)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Scraping 2 URLs")
		assert.Contains(t, stdout, "Scraped 2 pages")

		for _, name := range []string{"a.json", "b.json"} {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err, "expected output file %s", name)
		}
	})

	t.Run("skips duplicate URLs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := newTestMain(staticRenderer(articleHTML))

		stdout, _, err := runCLI(t, m, "batch",
			"https://example.com/a", "https://example.com/a",
			"--out-dir", dir, "--rps", "100",
		)

		require.NoError(t, err)
		assert.Contains(t, stdout, "1 skipped")
	})

	t.Run("requires URLs or a sitemap", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(staticRenderer(articleHTML))
		_, _, err := runCLI(t, m, "batch", "--out-dir", t.TempDir())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no URLs to scrape")
	})
}

func TestDiscoverCommand(t *testing.T) {
	t.Parallel()

	sitemap := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/docs/intro</loc></url>
  <url><loc>https://example.com/blog/post</loc></url>
</urlset>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sitemap.xml" {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(sitemap))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	t.Run("lists all sitemap URLs", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runCLI(t, main.NewMain(), "discover", srv.URL)

		require.NoError(t, err)
		assert.Contains(t, stdout, "https://example.com/docs/intro")
		assert.Contains(t, stdout, "https://example.com/blog/post")
	})

	t.Run("applies filters", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runCLI(t, main.NewMain(), "discover", srv.URL, "--filter", "/docs/")

		require.NoError(t, err)
		assert.Contains(t, stdout, "https://example.com/docs/intro")
		assert.False(t, strings.Contains(stdout, "/blog/post"))
	})
}
