package webscrape

import "strings"

// MaxLinks caps the number of links surfaced per page.
const MaxLinks = 50

// DedupeURLs removes exact-duplicate URLs, preserving first-occurrence
// order. The result is never nil.
func DedupeURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

// RankLinks filters, deduplicates, ranks, and caps the side-channel link
// list. Links with empty text and fragment-only URLs are dropped;
// duplicates are deduplicated by exact URL with the first occurrence
// winning. Links whose URL appears in the content subtree rank before the
// rest; within each group document order is preserved. At most MaxLinks
// entries are returned.
//
// inContent maps URLs found inside the selected content subtree. A nil or
// empty map degrades ranking to document order alone.
func RankLinks(links []Link, inContent map[string]bool) []Link {
	seen := make(map[string]bool, len(links))
	var content, rest []Link
	for _, l := range links {
		if strings.TrimSpace(l.Text) == "" || l.URL == "" || strings.HasPrefix(l.URL, "#") {
			continue
		}
		if seen[l.URL] {
			continue
		}
		seen[l.URL] = true
		if inContent[l.URL] {
			content = append(content, l)
		} else {
			rest = append(rest, l)
		}
	}

	ranked := make([]Link, 0, len(content)+len(rest))
	ranked = append(ranked, content...)
	ranked = append(ranked, rest...)
	if len(ranked) > MaxLinks {
		ranked = ranked[:MaxLinks]
	}
	return ranked
}
