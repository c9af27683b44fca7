// ABOUTME: Generic heuristic strategy for pages with unknown markup
// ABOUTME: Tries article tags, the densest div, then h1 with its paragraphs

package extract

import (
	"github.com/PuerkitoBio/goquery"

	"newswire-collector/core/domain"
	textutils "newswire-collector/pkg/utils/text"
)

// extractHeuristic handles pages none of the configured selectors know
func (p *Pipeline) extractHeuristic(doc *goquery.Document, pageURL string) (Result, bool) {
	if sel := doc.Find("article"); sel.Length() > 0 {
		if result, ok := p.resultFromContainer(sel.First(), pageURL); ok {
			return result, true
		}
	}

	if sel := densestDiv(doc); sel != nil {
		if result, ok := p.resultFromContainer(sel, pageURL); ok {
			return result, true
		}
	}

	return p.headlineWithParagraphs(doc, pageURL)
}

// densestDiv returns the div whose direct paragraph children carry the
// most text, or nil when no div has paragraph text
func densestDiv(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestScore := 0

	doc.Find("div").Each(func(_ int, div *goquery.Selection) {
		score := 0
		div.ChildrenFiltered("p").Each(func(_ int, para *goquery.Selection) {
			score += len(textutils.Normalize(para.Text()))
		})
		if score > bestScore {
			best = div
			bestScore = score
		}
	})

	return best
}

// headlineWithParagraphs builds a single section from the first h1 and
// its following sibling paragraphs
func (p *Pipeline) headlineWithParagraphs(doc *goquery.Document, pageURL string) (Result, bool) {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return Result{}, false
	}

	heading := textutils.Normalize(h1.Text())
	section := domain.Section{}
	if heading != "" {
		section.Heading = heading
		section.Level = 1
	}

	h1.NextAll().Filter("p").Each(func(_ int, para *goquery.Selection) {
		if text := textutils.Normalize(para.Text()); text != "" {
			section.Content = append(section.Content, text)
		}
	})

	if section.Heading == "" && len(section.Content) == 0 {
		return Result{}, false
	}

	return Result{
		Structured: domain.StructuredContent{Sections: []domain.Section{section}},
	}, true
}
