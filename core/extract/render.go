// ABOUTME: Renders structured content back into display HTML
// ABOUTME: Wraps sections in the outlet's article markup

package extract

import (
	"fmt"
	"html"
	"strings"

	"newswire-collector/core/domain"
)

// renderArticle synthesizes the display HTML for an extracted article.
// Sections render in order: heading tags at their recorded level, every
// content entry as a paragraph. The thumbnail leads the body; remaining
// images follow the text.
func renderArticle(class, title string, sc domain.StructuredContent, thumbnail string) string {
	var sb strings.Builder

	sb.WriteString(`<article class="` + class + `">`)
	sb.WriteString("<h1>" + html.EscapeString(title) + "</h1>")
	sb.WriteString(`<div class="` + class + `-content">`)

	if thumbnail != "" {
		sb.WriteString(`<img src="` + html.EscapeString(thumbnail) + `" alt=""/>`)
	}

	for _, section := range sc.Sections {
		if section.Heading != "" {
			level := section.Level
			if level < 1 || level > 6 {
				level = 2
			}
			tag := fmt.Sprintf("h%d", level)
			sb.WriteString("<" + tag + ">" + html.EscapeString(section.Heading) + "</" + tag + ">")
		}
		for _, paragraph := range section.Content {
			sb.WriteString("<p>" + html.EscapeString(paragraph) + "</p>")
		}
	}

	for _, img := range sc.Images {
		if img == thumbnail {
			continue
		}
		sb.WriteString(`<img src="` + html.EscapeString(img) + `" alt=""/>`)
	}

	sb.WriteString("</div></article>")
	return sb.String()
}
