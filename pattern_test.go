package webscrape_test

import (
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAmounts(t *testing.T) {
	t.Parallel()

	t.Run("matches symbol-before amounts", func(t *testing.T) {
		t.Parallel()

		matches := webscrape.MatchAmounts("The ticket costs $1,000.50 per person.")

		require.Len(t, matches, 1)
		assert.Equal(t, "$1,000.50", matches[0].Text)
		assert.Equal(t, webscrape.KindAmount, matches[0].Kind)
	})

	t.Run("matches euro and pound symbols", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchAmounts("Pay €500.00 or £250"))

		assert.Equal(t, []string{"€500.00", "£250"}, texts)
	})

	t.Run("matches code-after amounts", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchAmounts("Budget: 1,200 USD for travel"))

		assert.Equal(t, []string{"1,200 USD"}, texts)
	})

	t.Run("matches period thousands convention", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchAmounts("Total €1.500,00 due"))

		assert.Equal(t, []string{"€1.500,00"}, texts)
	})

	t.Run("rejects bare numerals", func(t *testing.T) {
		t.Parallel()

		matches := webscrape.MatchAmounts("The year is 2024")

		assert.Empty(t, matches)
	})

	t.Run("accepts symbol with bare numeral", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchAmounts("Price: $2024"))

		assert.Equal(t, []string{"$2024"}, texts)
	})

	t.Run("deduplicates by surface form preserving first occurrence", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchAmounts("$5 here, $10 there, $5 again"))

		assert.Equal(t, []string{"$5", "$10"}, texts)
	})

	t.Run("records byte offsets", func(t *testing.T) {
		t.Parallel()

		matches := webscrape.MatchAmounts("ab $12 cd")

		require.Len(t, matches, 1)
		assert.Equal(t, 3, matches[0].Start)
		assert.Equal(t, 6, matches[0].End)
	})

	t.Run("returns empty for text without amounts", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webscrape.MatchAmounts("nothing to see here"))
	})
}

func TestMatchDates(t *testing.T) {
	t.Parallel()

	t.Run("matches slash-separated numeric dates", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchDates("Due 25/12/2024 at noon"))

		assert.Equal(t, []string{"25/12/2024"}, texts)
	})

	t.Run("matches ISO dates", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchDates("Published 2024-08-28."))

		assert.Equal(t, []string{"2024-08-28"}, texts)
	})

	t.Run("matches natural-language dates", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchDates("Event on January 5, 2025 in town"))

		assert.Equal(t, []string{"January 5, 2025"}, texts)
	})

	t.Run("matches natural-language dates case-insensitively", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchDates("posted on march 15, 2023"))

		assert.Equal(t, []string{"march 15, 2023"}, texts)
	})

	t.Run("preserves surface form and deduplicates", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchDates("2024-01-01 then 01/01/2024 then 2024-01-01"))

		assert.Equal(t, []string{"2024-01-01", "01/01/2024"}, texts)
	})
}

func TestMatchEmails(t *testing.T) {
	t.Parallel()

	t.Run("matches standard addresses", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchEmails("Contact a@b.com or sales+eu@shop.example.org"))

		assert.Equal(t, []string{"a@b.com", "sales+eu@shop.example.org"}, texts)
	})

	t.Run("requires a dot in the domain", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webscrape.MatchEmails("not an email: user@localhost"))
	})

	t.Run("deduplicates", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchEmails("a@b.com, a@b.com"))

		assert.Equal(t, []string{"a@b.com"}, texts)
	})
}

func TestMatchPhones(t *testing.T) {
	t.Parallel()

	t.Run("matches international format", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchPhones("call +1-555-123-4567 today"))

		assert.Equal(t, []string{"+1-555-123-4567"}, texts)
	})

	t.Run("matches parenthesized area codes", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchPhones("office: (555) 123-4567"))

		assert.Equal(t, []string{"(555) 123-4567"}, texts)
	})

	t.Run("matches dot-separated numbers", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchPhones("fax 555.123.4567"))

		assert.Equal(t, []string{"555.123.4567"}, texts)
	})

	t.Run("rejects sequences with fewer than seven digits", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webscrape.MatchPhones("extension 123-456"))
	})

	t.Run("does not treat ISO dates as phones", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webscrape.MatchPhones("released 2024-08-28"))
	})

	t.Run("deduplicates", func(t *testing.T) {
		t.Parallel()

		texts := webscrape.MatchTexts(webscrape.MatchPhones("+15551234567 or +15551234567"))

		assert.Equal(t, []string{"+15551234567"}, texts)
	})
}
