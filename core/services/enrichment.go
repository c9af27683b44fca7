// ABOUTME: Article enrichment fills thumbnails, bylines, and thumbnail colors
// ABOUTME: Operates on collected batches; enrichment failures never drop records

package services

import (
	"context"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
)

// ArticleEnrichmentService supplements collected records with metadata
// the extraction pipeline did not find
type ArticleEnrichmentService struct {
	deps           interfaces.Dependencies
	config         EnrichmentConfig
	metadata       interfaces.MetadataService
	thumbnailColor interfaces.ThumbnailColorService
}

// NewArticleEnrichmentService creates a new enrichment service.
// Without options every stage is enabled.
func NewArticleEnrichmentService(deps interfaces.Dependencies, opts ...EnrichmentOption) *ArticleEnrichmentService {
	return &ArticleEnrichmentService{
		deps:           deps,
		config:         NewEnrichmentConfig(opts...),
		metadata:       NewMetadataService(deps),
		thumbnailColor: NewThumbnailColorService(deps),
	}
}

// EnrichArticles fills missing thumbnails and bylines from page metadata,
// then computes dominant colors for every thumbnail. Disabled stages are
// skipped. Records are never dropped; a record that cannot be enriched is
// returned unchanged.
func (s *ArticleEnrichmentService) EnrichArticles(ctx context.Context, records []domain.ArticleRecord) []domain.ArticleRecord {
	if len(records) == 0 {
		return records
	}

	needMetadata := 0
	if s.config.ExtractMetadata {
		needMetadata = s.fillFromMetadata(ctx, records)
	}

	thumbnails := 0
	if s.config.ExtractColors {
		thumbnails = s.fillColors(ctx, records)
	}

	s.deps.Logger.Debug("batch enrichment finished", map[string]interface{}{
		"records":    len(records),
		"metadata":   needMetadata,
		"thumbnails": thumbnails,
	})

	return records
}

// fillFromMetadata fills missing thumbnails and bylines from page
// metadata, returning how many records needed a lookup
func (s *ArticleEnrichmentService) fillFromMetadata(ctx context.Context, records []domain.ArticleRecord) int {
	needMetadata := make([]string, 0, len(records))
	for _, record := range records {
		if record.Thumbnail == "" || record.Author == "" {
			needMetadata = append(needMetadata, record.URL)
		}
	}

	if len(needMetadata) == 0 {
		return 0
	}

	metadata := s.metadata.ExtractMetadataBatch(ctx, needMetadata)
	for i := range records {
		result, ok := metadata[records[i].URL]
		if !ok || result == nil {
			continue
		}
		if records[i].Thumbnail == "" {
			records[i].Thumbnail = result.Thumbnail
		}
		if records[i].Author == "" {
			records[i].Author = result.Author
		}
	}

	return len(needMetadata)
}

// fillColors computes dominant colors for every distinct thumbnail,
// returning how many thumbnails were looked up
func (s *ArticleEnrichmentService) fillColors(ctx context.Context, records []domain.ArticleRecord) int {
	seen := make(map[string]struct{})
	thumbnails := make([]string, 0, len(records))
	for _, record := range records {
		if record.Thumbnail == "" {
			continue
		}
		if _, dup := seen[record.Thumbnail]; dup {
			continue
		}
		seen[record.Thumbnail] = struct{}{}
		thumbnails = append(thumbnails, record.Thumbnail)
	}

	if len(thumbnails) == 0 {
		return 0
	}

	colors := s.thumbnailColor.ExtractColorBatch(ctx, thumbnails)
	for i := range records {
		if color, ok := colors[records[i].Thumbnail]; ok {
			records[i].ThumbnailColor = color
		}
	}

	return len(thumbnails)
}
