// ABOUTME: JSON batch exporter carrying structured content and diagnostics
// ABOUTME: Writes one document array per collection run

package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
	"newswire-collector/core/runner"
)

// articleDoc is the JSON export shape for one article
type articleDoc struct {
	ID             string                   `json:"id"`
	MediaID        int                      `json:"media_id"`
	Title          string                   `json:"title"`
	URL            string                   `json:"url"`
	ContentText    string                   `json:"content_text"`
	PublishDate    string                   `json:"publish_date"`
	CategoryID     int                      `json:"category_id"`
	TopicID        *int                     `json:"topic_id,omitempty"`
	Author         string                   `json:"author,omitempty"`
	Thumbnail      string                   `json:"thumbnail,omitempty"`
	ThumbnailColor *domain.RGBColor         `json:"thumbnail_color,omitempty"`
	CollectedAt    string                   `json:"collected_at"`
	Structured     domain.StructuredContent `json:"structured"`
	RawData        map[string]interface{}   `json:"raw_data,omitempty"`
}

// JSONExporter implements the Exporter interface writing one JSON
// document array per collection run
type JSONExporter struct {
	dir    string
	logger interfaces.Logger
}

// NewJSONExporter creates a JSON exporter writing into dir
func NewJSONExporter(dir string, logger interfaces.Logger) *JSONExporter {
	return &JSONExporter{
		dir:    dir,
		logger: logger,
	}
}

// Export writes the batch to a timestamped JSON file. Runs that
// collected nothing write nothing.
func (e *JSONExporter) Export(ctx context.Context, records []domain.ArticleRecord, summary runner.Summary) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if len(records) == 0 {
		e.logger.Debug("no records to export", map[string]interface{}{"dir": e.dir})
		return nil
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	docs := make([]articleDoc, 0, len(records))
	for i := range records {
		docs = append(docs, toDoc(&records[i]))
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export documents: %w", err)
	}

	stamp := summary.FinishedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}

	path := filepath.Join(e.dir, stamp.Format(fileStamp)+"_integrated_news.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	e.logger.Info("batch exported", map[string]interface{}{
		"file":  path,
		"items": len(docs),
	})

	return nil
}

func toDoc(record *domain.ArticleRecord) articleDoc {
	publishDate := ""
	if !record.PublishDate.IsZero() {
		publishDate = record.PublishDate.UTC().Format(time.RFC3339)
	}

	collectedAt := ""
	if !record.CollectedAt.IsZero() {
		collectedAt = record.CollectedAt.UTC().Format(time.RFC3339)
	}

	return articleDoc{
		ID:             record.ID(),
		MediaID:        record.MediaID,
		Title:          record.Title,
		URL:            record.URL,
		ContentText:    record.ContentText,
		PublishDate:    publishDate,
		CategoryID:     record.CategoryID,
		TopicID:        record.TopicID,
		Author:         record.Author,
		Thumbnail:      record.Thumbnail,
		ThumbnailColor: record.ThumbnailColor,
		CollectedAt:    collectedAt,
		Structured:     record.Structured,
		RawData:        record.RawData,
	}
}
