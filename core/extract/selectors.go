// ABOUTME: Selector-based extraction strategies over the parsed document
// ABOUTME: Primary selector first, then the ordered fallback chain

package extract

import (
	"github.com/PuerkitoBio/goquery"
)

// extractPrimarySelector walks the profile's high-confidence container
func (p *Pipeline) extractPrimarySelector(doc *goquery.Document, pageURL string) (Result, bool) {
	sel := doc.Find(p.profile.PrimarySelector)
	if sel.Length() == 0 {
		return Result{}, false
	}

	return p.resultFromContainer(sel.First(), pageURL)
}

// extractSelectorChain tries each fallback selector in order; the first
// one whose walked content has text wins
func (p *Pipeline) extractSelectorChain(doc *goquery.Document, pageURL string) (Result, bool) {
	for _, selector := range p.profile.FallbackSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		if result, ok := p.resultFromContainer(sel.First(), pageURL); ok {
			return result, true
		}
	}

	return Result{}, false
}

// resultFromContainer walks a matched container and rejects it when the
// walk produced no text, so the chain can continue
func (p *Pipeline) resultFromContainer(sel *goquery.Selection, pageURL string) (Result, bool) {
	structured := walkContainer(sel, pageURL)
	if structured.PlainText() == "" {
		return Result{}, false
	}

	return Result{Structured: structured}, true
}
