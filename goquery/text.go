package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// collapseSpace trims and collapses internal whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// textContent returns the text nodes beneath nodes in document order,
// single-space joined.
func textContent(nodes []*html.Node) string {
	var parts []string
	for _, n := range nodes {
		collectText(n, nil, &parts)
	}
	return strings.Join(parts, " ")
}

// itemText returns a list item's text without descending into nested
// lists, so flattened items don't repeat their children.
func itemText(nodes []*html.Node) string {
	skip := func(n *html.Node) bool {
		return n.Data == "ul" || n.Data == "ol"
	}
	var parts []string
	for _, n := range nodes {
		collectText(n, skip, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, skip func(*html.Node) bool, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, strings.Fields(n.Data)...)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if skip != nil && c.Type == html.ElementNode && skip(c) {
			continue
		}
		collectText(c, skip, parts)
	}
}
