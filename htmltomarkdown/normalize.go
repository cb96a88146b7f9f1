package htmltomarkdown

import (
	"regexp"
	"strings"
)

var (
	trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans up converted markdown: per-line trailing whitespace is
// removed, runs of blank lines collapse to a single blank line, and the
// whole document is trimmed. Normalize is idempotent.
func Normalize(markdown string) string {
	s := trailingSpaceRe.ReplaceAllString(markdown, "")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
