package webscrape

import (
	"regexp"
	"sort"
	"strings"
)

// MatchKind tags the entity type produced by a pattern matcher.
type MatchKind string

// Entity kinds recognized by the pattern library.
const (
	KindAmount MatchKind = "amount"
	KindDate   MatchKind = "date"
	KindEmail  MatchKind = "email"
	KindPhone  MatchKind = "phone"
)

// Match is a single pattern hit. Text is the surface form exactly as it
// appeared in the source; Start and End are byte offsets into the input.
type Match struct {
	Kind  MatchKind
	Text  string
	Start int
	End   int
}

// The matchers are compiled once at init and never mutated, so they are
// safe to share across concurrent scrapes.
var (
	// Currency symbol before the numeral: "$1,000.50", "€500.00", "$2024".
	// Bare numerals without a currency marker are deliberately not matched.
	amountSymbolRe = regexp.MustCompile(`[$€£¥]\s?\d(?:[\d.,]*\d)?`)

	// Currency code after the numeral: "1,200 USD". Thousands separators
	// follow either the comma or the period convention.
	amountCodeRe = regexp.MustCompile(`\b\d(?:[\d.,]*\d)?\s?(?:USD|EUR|GBP|JPY|CHF|CAD|AUD|CNY|INR|MXN|BRL)\b`)

	// DD/MM/YYYY (or MM/DD/YYYY; the two are not disambiguated),
	// YYYY-MM-DD, and English "Month DD, YYYY".
	dateRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b|\b\d{4}-\d{2}-\d{2}\b|(?i:\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4})\b`)

	numericDateRe = regexp.MustCompile(`^(?:\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})$`)

	emailRe = regexp.MustCompile(`[A-Za-z0-9._+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Phone candidates: optional "+" prefix, then digits with space, hyphen,
	// parenthesis, or dot separators. Candidates are validated by digit
	// count afterwards.
	phoneRe = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{5,}\d`)
)

// MatchAmounts returns monetary amounts found in text, deduplicated by
// surface form with first-occurrence order preserved.
func MatchAmounts(text string) []Match {
	matches := append(
		matchAll(amountSymbolRe, KindAmount, text),
		matchAll(amountCodeRe, KindAmount, text)...,
	)
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
	return dedupeMatches(matches)
}

// MatchDates returns date strings found in text in their original surface
// form. DD/MM vs MM/DD is not disambiguated; both orderings match.
func MatchDates(text string) []Match {
	return dedupeMatches(matchAll(dateRe, KindDate, text))
}

// MatchEmails returns email addresses found in text.
func MatchEmails(text string) []Match {
	return dedupeMatches(matchAll(emailRe, KindEmail, text))
}

// MatchPhones returns phone numbers found in text. A candidate must carry
// 7 to 16 digits, and candidates that are purely numeric dates are skipped
// to keep ISO dates out of the phone list.
func MatchPhones(text string) []Match {
	var matches []Match
	for _, m := range matchAll(phoneRe, KindPhone, text) {
		if numericDateRe.MatchString(m.Text) {
			continue
		}
		if n := countDigits(m.Text); n < 7 || n > 16 {
			continue
		}
		matches = append(matches, m)
	}
	return dedupeMatches(matches)
}

// MatchTexts projects matches onto their surface forms.
func MatchTexts(matches []Match) []string {
	texts := make([]string, 0, len(matches))
	for _, m := range matches {
		texts = append(texts, m.Text)
	}
	return texts
}

func matchAll(re *regexp.Regexp, kind MatchKind, text string) []Match {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Kind:  kind,
			Text:  strings.TrimSpace(text[loc[0]:loc[1]]),
			Start: loc[0],
			End:   loc[1],
		})
	}
	return matches
}

func dedupeMatches(matches []Match) []Match {
	seen := make(map[string]bool, len(matches))
	out := matches[:0]
	for _, m := range matches {
		if seen[m.Text] {
			continue
		}
		seen[m.Text] = true
		out = append(out, m)
	}
	return out
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
