// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for the article archive backends

package interfaces

import (
	"context"

	"newswire-collector/core/domain"
)

// ArticleStore defines the interface for article persistence
type ArticleStore interface {
	// Save persists a batch of collected articles, replacing earlier
	// versions with the same identifier
	Save(ctx context.Context, articles []domain.ArticleRecord) error

	// Recent retrieves up to limit articles ordered by publish date,
	// newest first
	Recent(ctx context.Context, limit int) ([]domain.ArticleRecord, error)

	// SearchByTitle retrieves up to limit articles whose titles contain
	// the query, ordered by publish date, newest first
	SearchByTitle(ctx context.Context, query string, limit int) ([]domain.ArticleRecord, error)
}

// FeedSource defines the interface for loading configured feed descriptors
type FeedSource interface {
	// Load returns every descriptor the source knows about, unfiltered
	Load(ctx context.Context) ([]domain.FeedDescriptor, error)
}
