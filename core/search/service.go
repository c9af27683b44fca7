// ABOUTME: Search service for querying the article archive by title
// ABOUTME: Validates queries before delegating matching to the store

package search

import (
	"context"
	"fmt"

	"newswire-collector/core/domain"
	"newswire-collector/core/errors"
	"newswire-collector/core/interfaces"
)

// ArticleSearchService handles article search operations
type ArticleSearchService struct {
	store interfaces.ArticleStore
}

// NewArticleSearchService creates a new search service over the given
// archive
func NewArticleSearchService(store interfaces.ArticleStore) *ArticleSearchService {
	return &ArticleSearchService{
		store: store,
	}
}

// validateQuery validates search query parameters
func (s *ArticleSearchService) validateQuery(query string) error {
	if query == "" {
		return &errors.ValidationError{Field: "q", Message: "search query cannot be empty"}
	}

	if len(query) < 2 {
		return &errors.ValidationError{Field: "q", Message: "search query must be at least 2 characters"}
	}

	if len(query) > 100 {
		return &errors.ValidationError{Field: "q", Message: "search query cannot exceed 100 characters"}
	}

	return nil
}

// SearchArticles finds archived articles whose titles contain the
// query, newest first, up to limit. A non-positive limit falls back
// to the store default.
func (s *ArticleSearchService) SearchArticles(ctx context.Context, query string, limit int) ([]domain.ArticleRecord, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	records, err := s.store.SearchByTitle(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	return records, nil
}
