package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		ext  string
		want string
	}{
		{"root", "https://example.com", "json", "index.json"},
		{"root with slash", "https://example.com/", "json", "index.json"},
		{"simple path", "https://example.com/blog/post", "json", "blog/post.json"},
		{"trailing slash", "https://example.com/blog/", "md", "blog/index.md"},
		{"markdown extension", "https://example.com/about", "md", "about.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url, tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultWriter_WriteContent(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON mirroring the URL path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := fs.NewResultWriter(dir, fs.FormatJSON)
		require.NoError(t, err)

		content := webscrape.NewScrapedContent("https://example.com/blog/post", "Post")
		content.MarkdownContent = "# Post"
		content.Metadata = webscrape.DeriveMetadata(content)

		require.NoError(t, w.WriteContent(content))

		data, err := os.ReadFile(filepath.Join(dir, "blog", "post.json"))
		require.NoError(t, err)

		var decoded webscrape.ScrapedContent
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "https://example.com/blog/post", decoded.URL)
		assert.Equal(t, "# Post", decoded.MarkdownContent)
	})

	t.Run("writes markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := fs.NewResultWriter(dir, fs.FormatMarkdown)
		require.NoError(t, err)

		content := webscrape.NewScrapedContent("https://example.com/about", "About Us")
		content.MarkdownContent = "# About"
		content.ContentHash = "deadbeefdeadbeef"

		require.NoError(t, w.WriteContent(content))

		data, err := os.ReadFile(filepath.Join(dir, "about.md"))
		require.NoError(t, err)

		text := string(data)
		assert.Contains(t, text, "source: https://example.com/about")
		assert.Contains(t, text, "title: About Us")
		assert.Contains(t, text, "content_hash: deadbeefdeadbeef")
		assert.Contains(t, text, "# About")
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewResultWriter(t.TempDir(), "yaml")
		require.Error(t, err)
		assert.Equal(t, webscrape.EINVALID, webscrape.ErrorCode(err))
	})
}
