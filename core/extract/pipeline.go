// ABOUTME: Content extraction pipeline with an ordered fallback strategy chain
// ABOUTME: The first strategy that succeeds is terminal; the stub never fails

package extract

import (
	"github.com/PuerkitoBio/goquery"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
	textutils "newswire-collector/pkg/utils/text"
)

// Strategy names recorded on extraction results
const (
	StrategyEmbedded        = "embedded_payload"
	StrategyPrimarySelector = "primary_selector"
	StrategySelectorChain   = "selector_chain"
	StrategyHeuristic       = "generic_heuristic"
	StrategyMinimal         = "minimal_stub"
)

// Result carries everything one strategy extracted from an article page
type Result struct {
	// ContentHTML is the synthesized article body
	ContentHTML string

	// Structured is the machine-readable body
	Structured domain.StructuredContent

	// Title overrides the feed-entry title when non-empty
	Title string

	// Thumbnail is the lead image URL, when one was found
	Thumbnail string

	// PublishedHint is a raw timestamp string for the date resolver
	PublishedHint string

	// CategoryLabel is the page's own category label, when present
	CategoryLabel string

	// Strategy names the strategy that produced this result
	Strategy string
}

// Pipeline extracts article content with an ordered chain of strategies
type Pipeline struct {
	profile SiteProfile
	logger  interfaces.Logger
}

// NewPipeline creates a pipeline for the given profile. Empty profile
// fields inherit the defaults.
func NewPipeline(profile SiteProfile, logger interfaces.Logger) *Pipeline {
	def := DefaultProfile()
	if profile.MarkerToken == "" {
		profile.MarkerToken = def.MarkerToken
	}
	if profile.PrimarySelector == "" {
		profile.PrimarySelector = def.PrimarySelector
	}
	if len(profile.FallbackSelectors) == 0 {
		profile.FallbackSelectors = def.FallbackSelectors
	}
	if len(profile.TitleSelectors) == 0 {
		profile.TitleSelectors = def.TitleSelectors
	}
	if profile.CategorySelector == "" {
		profile.CategorySelector = def.CategorySelector
	}
	if profile.ArticleClass == "" {
		profile.ArticleClass = def.ArticleClass
	}

	return &Pipeline{
		profile: profile,
		logger:  logger,
	}
}

// Extract runs the strategy chain against a parsed article page. The
// first strategy that succeeds wins; the minimal stub guarantees a
// renderable result even for empty documents. fallbackTitle is the
// feed-entry title used when the page yields no headline of its own.
func (p *Pipeline) Extract(doc *goquery.Document, pageURL, fallbackTitle string) Result {
	strategies := []struct {
		name string
		run  func(*goquery.Document, string) (Result, bool)
	}{
		{StrategyEmbedded, p.extractEmbedded},
		{StrategyPrimarySelector, p.extractPrimarySelector},
		{StrategySelectorChain, p.extractSelectorChain},
		{StrategyHeuristic, p.extractHeuristic},
	}

	var result Result
	found := false
	for _, s := range strategies {
		if r, ok := s.run(doc, pageURL); ok {
			result = r
			result.Strategy = s.name
			found = true
			break
		}
		p.logger.Debug("extraction strategy missed", map[string]interface{}{
			"strategy": s.name,
			"url":      pageURL,
		})
	}

	p.fillPageHints(&result, doc)

	if result.Title == "" {
		result.Title = textutils.Normalize(fallbackTitle)
	}
	title := result.Title

	if found {
		result.ContentHTML = renderArticle(p.profile.ArticleClass, title, result.Structured, result.Thumbnail)
	} else {
		stub := p.minimalStub(pageURL, title)
		result.ContentHTML = stub.ContentHTML
		result.Structured = stub.Structured
		result.Strategy = StrategyMinimal
	}

	p.logger.Debug("content extracted", map[string]interface{}{
		"strategy": result.Strategy,
		"url":      pageURL,
		"sections": len(result.Structured.Sections),
	})

	return result
}

// fillPageHints supplements a strategy result with page-level metadata
// the strategy itself did not provide
func (p *Pipeline) fillPageHints(result *Result, doc *goquery.Document) {
	if result.Title == "" {
		result.Title = p.pageTitle(doc)
	}

	if result.CategoryLabel == "" {
		result.CategoryLabel = textutils.Normalize(doc.Find(p.profile.CategorySelector).First().Text())
	}

	if result.PublishedHint == "" {
		if dt, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
			result.PublishedHint = dt
		}
	}

	if result.Thumbnail == "" {
		if og, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok && og != "" {
			result.Thumbnail = og
		} else if len(result.Structured.Images) > 0 {
			result.Thumbnail = result.Structured.Images[0]
		}
	}
}

// pageTitle returns the first non-empty headline matched by the
// profile's title selectors, falling back to the og:title meta tag
func (p *Pipeline) pageTitle(doc *goquery.Document) string {
	for _, selector := range p.profile.TitleSelectors {
		if title := textutils.Normalize(doc.Find(selector).First().Text()); title != "" {
			return title
		}
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		return textutils.Normalize(og)
	}

	return ""
}
