// ABOUTME: ArticleFetcher turns one feed entry into a full article record
// ABOUTME: Fetch failures surface as per-item skips, never batch failures

package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newswire-collector/core/category"
	"newswire-collector/core/dates"
	"newswire-collector/core/domain"
	coreerrors "newswire-collector/core/errors"
	"newswire-collector/core/extract"
	"newswire-collector/core/interfaces"
	htmlutils "newswire-collector/pkg/utils/html"
)

// ArticleFetcher fetches article pages and assembles article records
type ArticleFetcher struct {
	pipeline   *extract.Pipeline
	dates      *dates.Resolver
	classifier *category.Classifier
	logger     interfaces.Logger
}

// NewArticleFetcher creates a fetcher for one outlet profile
func NewArticleFetcher(profile extract.SiteProfile, logger interfaces.Logger) *ArticleFetcher {
	return &ArticleFetcher{
		pipeline:   extract.NewPipeline(profile, logger),
		dates:      dates.NewResolver(logger),
		classifier: category.NewClassifier(logger),
		logger:     logger,
	}
}

// Fetch retrieves the entry's article page and builds the record for it.
// Every failure mode returns a SkipError so the caller can count the
// entry as skipped and keep collecting the rest of the feed.
func (f *ArticleFetcher) Fetch(ctx context.Context, client interfaces.HTTPClient, entry domain.FeedEntry, desc domain.FeedDescriptor) (domain.ArticleRecord, error) {
	if entry.URL == "" {
		return domain.ArticleRecord{}, coreerrors.SkipItem(entry.URL, "entry has no link")
	}

	resp, err := client.Get(ctx, entry.URL)
	if err != nil {
		return domain.ArticleRecord{}, coreerrors.SkipItemCause(entry.URL, "article fetch failed", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return domain.ArticleRecord{}, coreerrors.SkipItem(entry.URL, fmt.Sprintf("article returned status %d", resp.StatusCode()))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return domain.ArticleRecord{}, coreerrors.SkipItemCause(entry.URL, "article page is not parseable HTML", err)
	}

	result := f.pipeline.Extract(doc, entry.URL, entry.Title)

	// Extract falls back to the normalized entry title, so an empty
	// title here means neither the page nor the feed had one
	title := result.Title
	if title == "" {
		return domain.ArticleRecord{}, coreerrors.SkipItem(entry.URL, "no usable title")
	}

	publishDate := f.dates.Resolve(result.PublishedHint, entry.Published)
	categoryID := f.classifier.Classify(result.CategoryLabel, desc.CategoryID)
	contentText := htmlutils.StripHTML(result.ContentHTML)

	record := domain.ArticleRecord{
		MediaID:     desc.MediaID,
		Title:       title,
		URL:         entry.URL,
		Content:     result.ContentHTML,
		ContentText: contentText,
		PublishDate: publishDate,
		CategoryID:  categoryID,
		Thumbnail:   result.Thumbnail,
		CollectedAt: time.Now(),
		Structured:  result.Structured,
	}

	record.RawData = map[string]interface{}{
		"article_id": record.ID(),
		"metadata": map[string]interface{}{
			"title":        title,
			"published_at": publishDate.Format(time.RFC3339),
			"category_id":  categoryID,
		},
		"content": map[string]interface{}{
			"main_text":          contentText,
			"thumbnail_url":      result.Thumbnail,
			"structured_content": result.Structured,
		},
		"source": map[string]interface{}{
			"feed":     desc.SourceLink,
			"url":      entry.URL,
			"media_id": desc.MediaID,
			"strategy": result.Strategy,
		},
	}

	return record, nil
}
