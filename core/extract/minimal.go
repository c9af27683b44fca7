// ABOUTME: Minimal stub strategy that never fails
// ABOUTME: Produces a linkable placeholder so every entry stays renderable

package extract

import (
	"fmt"
	"html"

	"newswire-collector/core/domain"
)

// minimalStub synthesizes a placeholder article carrying the title and a
// link back to the source page. Used when every other strategy missed.
func (p *Pipeline) minimalStub(pageURL, title string) Result {
	if title == "" {
		title = pageURL
	}

	content := fmt.Sprintf(
		`<article class="%s"><h1>%s</h1><p><a href="%s">%s</a></p></article>`,
		p.profile.ArticleClass,
		html.EscapeString(title),
		html.EscapeString(pageURL),
		html.EscapeString(pageURL),
	)

	return Result{
		ContentHTML: content,
		Structured: domain.StructuredContent{
			Sections: []domain.Section{
				{Content: []string{title + " " + pageURL}},
			},
		},
	}
}
