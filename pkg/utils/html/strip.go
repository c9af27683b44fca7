// ABOUTME: HTML utilities for extracting plain text from markup
// ABOUTME: Walks the parsed node tree so nested tags and entities are handled

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the text content of an HTML fragment. Script, style,
// and noscript subtrees are dropped and whitespace runs collapse to a
// single space.
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var sb strings.Builder
	collectText(doc, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
