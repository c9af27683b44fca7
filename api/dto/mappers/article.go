// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"newswire-collector/api/dto/responses"
	"newswire-collector/core/domain"
)

// ToArticleResponse converts a collected article to its API representation
func ToArticleResponse(record *domain.ArticleRecord) *responses.ArticleResponse {
	if record == nil {
		return nil
	}

	response := &responses.ArticleResponse{
		ID:          record.ID(),
		MediaID:     record.MediaID,
		Title:       record.Title,
		URL:         record.URL,
		ContentText: record.ContentText,
		PublishDate: record.PublishDate,
		CategoryID:  record.CategoryID,
		TopicID:     record.TopicID,
		Author:      record.Author,
		Thumbnail:   record.Thumbnail,
		CollectedAt: record.CollectedAt,
	}

	if record.ThumbnailColor != nil {
		response.ThumbnailColor = &responses.ColorResponse{
			R: int(record.ThumbnailColor.R),
			G: int(record.ThumbnailColor.G),
			B: int(record.ThumbnailColor.B),
		}
	}

	return response
}

// ToRecentArticlesResponse converts a stored batch to the listing response
func ToRecentArticlesResponse(records []domain.ArticleRecord) responses.RecentArticlesResponse {
	articles := make([]responses.ArticleResponse, 0, len(records))

	for i := range records {
		if response := ToArticleResponse(&records[i]); response != nil {
			articles = append(articles, *response)
		}
	}

	return responses.RecentArticlesResponse{
		Articles: articles,
		Total:    len(articles),
	}
}
