package search

import (
	"context"

	"newswire-collector/core/domain"
)

// mockArticleStore is a mock implementation of the ArticleStore interface
type mockArticleStore struct {
	saveFunc   func(ctx context.Context, articles []domain.ArticleRecord) error
	recentFunc func(ctx context.Context, limit int) ([]domain.ArticleRecord, error)
	searchFunc func(ctx context.Context, query string, limit int) ([]domain.ArticleRecord, error)
}

func (m *mockArticleStore) Save(ctx context.Context, articles []domain.ArticleRecord) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, articles)
	}
	return nil
}

func (m *mockArticleStore) Recent(ctx context.Context, limit int) ([]domain.ArticleRecord, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockArticleStore) SearchByTitle(ctx context.Context, query string, limit int) ([]domain.ArticleRecord, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}
