// ABOUTME: Document-order walk of an article container into sections
// ABOUTME: Headings open sections, paragraphs and list items fill them

package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"newswire-collector/core/domain"
	textutils "newswire-collector/pkg/utils/text"
)

type sectionWalker struct {
	sections []domain.Section
	images   []string
	videos   []string
	current  *domain.Section
	pageURL  string
}

// walkContainer turns a container selection into structured content.
// Child elements are visited in document order: each heading starts a
// new section, paragraphs and list items append to the open section,
// and an implicit section opens when text precedes any heading.
func walkContainer(sel *goquery.Selection, pageURL string) domain.StructuredContent {
	w := &sectionWalker{pageURL: pageURL}
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c)
		}
	}
	w.flush()

	return domain.StructuredContent{
		Sections: w.sections,
		Images:   w.images,
		Videos:   w.videos,
	}
}

func (w *sectionWalker) walk(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}

	switch n.Data {
	case "script", "style", "noscript":
		return

	case "h1", "h2", "h3", "h4", "h5", "h6":
		w.flush()
		if heading := textutils.Normalize(nodeText(n)); heading != "" {
			w.current = &domain.Section{
				Heading: heading,
				Level:   int(n.Data[1] - '0'),
			}
		}
		return

	case "p":
		if para := textutils.Normalize(nodeText(n)); para != "" {
			w.appendContent(para)
		}
		w.collectMedia(n)
		return

	case "ul", "ol":
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.Type == html.ElementNode && li.Data == "li" {
				if item := textutils.Normalize(nodeText(li)); item != "" {
					w.appendContent(item)
				}
			}
		}
		return

	case "img":
		if src := nodeAttr(n, "src"); src != "" {
			w.images = append(w.images, resolveURL(w.pageURL, src))
		}
		return

	case "video":
		if src := nodeAttr(n, "src"); src != "" {
			w.videos = append(w.videos, resolveURL(w.pageURL, src))
		}
		w.collectMedia(n)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// appendContent adds text to the open section, opening an implicit
// heading-less section when none is open
func (w *sectionWalker) appendContent(text string) {
	if w.current == nil {
		w.current = &domain.Section{}
	}
	w.current.Content = append(w.current.Content, text)
}

// flush closes the open section if it holds anything
func (w *sectionWalker) flush() {
	if w.current != nil && (w.current.Heading != "" || len(w.current.Content) > 0) {
		w.sections = append(w.sections, *w.current)
	}
	w.current = nil
}

// collectMedia picks up img and video sources nested inside a unit
// element that the walk does not descend into
func (w *sectionWalker) collectMedia(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "img":
				if src := nodeAttr(c, "src"); src != "" {
					w.images = append(w.images, resolveURL(w.pageURL, src))
				}
			case "video", "source":
				if src := nodeAttr(c, "src"); src != "" {
					w.videos = append(w.videos, resolveURL(w.pageURL, src))
				}
			}
		}
		w.collectMedia(c)
	}
}

// nodeText gathers the text of every descendant text node
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
			return
		}
		if node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

// nodeAttr returns an attribute value from a raw node
func nodeAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

// resolveURL resolves ref against base, returning ref unchanged when it
// is already absolute or when either URL fails to parse
func resolveURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	return baseURL.ResolveReference(refURL).String()
}
