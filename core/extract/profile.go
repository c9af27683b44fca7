// ABOUTME: SiteProfile carries the per-site knobs for content extraction
// ABOUTME: Selectors, marker token, and URL base differ between outlets

package extract

// SiteProfile configures the extraction pipeline for one outlet's markup
type SiteProfile struct {
	// MarkerToken identifies the script tag carrying the embedded payload
	MarkerToken string

	// PrimarySelector is the high-confidence article body selector
	PrimarySelector string

	// FallbackSelectors are tried in order when the primary selector misses
	FallbackSelectors []string

	// TitleSelectors locate the page headline for the title override
	TitleSelectors []string

	// CategorySelector locates the page's category label
	CategorySelector string

	// BaseURL resolves relative image and video references; empty means
	// resolve against the article page URL
	BaseURL string

	// ArticleClass is the CSS class used on synthesized article wrappers
	ArticleClass string
}

// DefaultProfile returns the selector set for the standard broadcaster
// page layout. Plugins override individual fields for their outlet.
func DefaultProfile() SiteProfile {
	return SiteProfile{
		MarkerToken:     "__DetailProp__",
		PrimarySelector: ".content--detail-body",
		FallbackSelectors: []string{
			".content--detail-main",
			"main article",
			".news_text",
			".body-text",
			".content--summary",
			`[class*="content--body"]`,
		},
		TitleSelectors: []string{
			"h1.content--title",
			".content--header h1",
			"h1",
		},
		CategorySelector: ".content--header-category",
		ArticleClass:     "news-article",
	}
}
