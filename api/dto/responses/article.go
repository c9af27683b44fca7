// ABOUTME: Response DTOs for article-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// ColorResponse represents RGB color values
type ColorResponse struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ArticleResponse represents a stored article in API responses
type ArticleResponse struct {
	ID             string         `json:"id"`
	MediaID        int            `json:"media_id"`
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	ContentText    string         `json:"content_text"`
	PublishDate    time.Time      `json:"publish_date"`
	CategoryID     int            `json:"category_id"`
	TopicID        *int           `json:"topic_id,omitempty"`
	Author         string         `json:"author,omitempty"`
	Thumbnail      string         `json:"thumbnail,omitempty"`
	ThumbnailColor *ColorResponse `json:"thumbnail_color,omitempty"`
	CollectedAt    time.Time      `json:"collected_at"`
}

// RecentArticlesResponse represents the response for listing stored articles
type RecentArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}
