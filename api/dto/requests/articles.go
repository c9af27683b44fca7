// ABOUTME: Request DTOs for article-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// Bounds for the article listing and search endpoints
const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// RecentArticlesQuery represents the query parameters for listing
// stored articles
type RecentArticlesQuery struct {
	// Limit is the maximum number of articles per page
	Limit int

	// Page selects which window of the newest articles to return,
	// starting at 1
	Page int
}

// ApplyDefaults fills the limit when absent, caps it at the maximum,
// and clamps the page to the first one
func (q *RecentArticlesQuery) ApplyDefaults() {
	if q.Limit <= 0 {
		q.Limit = defaultRecentLimit
	}
	if q.Limit > maxRecentLimit {
		q.Limit = maxRecentLimit
	}
	if q.Page < 1 {
		q.Page = 1
	}
}

// SearchArticlesQuery represents the query parameters for searching
// stored articles by title
type SearchArticlesQuery struct {
	// Query is the title search term
	Query string

	// Limit is the maximum number of matches to return
	Limit int
}

// ApplyDefaults fills the limit when absent and caps it at the maximum
func (q *SearchArticlesQuery) ApplyDefaults() {
	if q.Limit <= 0 {
		q.Limit = defaultRecentLimit
	}
	if q.Limit > maxRecentLimit {
		q.Limit = maxRecentLimit
	}
}
