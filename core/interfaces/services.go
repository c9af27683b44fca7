// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for enrichment services used during collection

package interfaces

import (
	"context"

	"newswire-collector/core/domain"
)

// ThumbnailColorService extracts colors from thumbnail images
type ThumbnailColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
	ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor
	GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

// MetadataResult contains extracted metadata from an article page
type MetadataResult struct {
	Title       string
	Description string
	Thumbnail   string // Primary image URL
	Images      []string
	Author      string // Byline, when one could be recovered
	ThemeColor  string
	Domain      string
	Favicon     string
}

// MetadataService extracts metadata from web pages
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
	ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*MetadataResult
}
