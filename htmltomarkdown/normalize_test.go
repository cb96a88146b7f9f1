package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/webscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of blank lines to one", func(t *testing.T) {
		t.Parallel()

		got := htmltomarkdown.Normalize("# Title\n\n\n\n\nBody")

		assert.Equal(t, "# Title\n\nBody", got)
	})

	t.Run("trims per-line trailing whitespace", func(t *testing.T) {
		t.Parallel()

		got := htmltomarkdown.Normalize("line one   \nline two\t")

		assert.Equal(t, "line one\nline two", got)
	})

	t.Run("trims leading and trailing document whitespace", func(t *testing.T) {
		t.Parallel()

		got := htmltomarkdown.Normalize("\n\n  # Title\n\n")

		assert.Equal(t, "# Title", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"plain",
			"# Title\n\n\n\nBody  \n\n\n- item\n",
			"a\n\nb\n\nc",
			"  \n \t \n x \n\n\n\n y ",
		}
		for _, in := range inputs {
			once := htmltomarkdown.Normalize(in)
			assert.Equal(t, once, htmltomarkdown.Normalize(once), "input %q", in)
		}
	})

	t.Run("preserves single blank-line separation", func(t *testing.T) {
		t.Parallel()

		in := "# Title\n\nParagraph one.\n\nParagraph two."

		assert.Equal(t, in, htmltomarkdown.Normalize(in))
	})
}
