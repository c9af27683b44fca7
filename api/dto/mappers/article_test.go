package mappers

import (
	"testing"
	"time"

	"newswire-collector/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestToArticleResponse(t *testing.T) {
	topic := 7
	record := &domain.ArticleRecord{
		MediaID:        3,
		Title:          "首相、所信表明演説で経済対策を強調",
		URL:            "https://www3.nhk.or.jp/news/html/20240301/k1002.html",
		ContentText:    "本文です。",
		PublishDate:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CategoryID:     2,
		TopicID:        &topic,
		Author:         "編集部",
		Thumbnail:      "https://example.com/lead.jpg",
		ThumbnailColor: &domain.RGBColor{R: 200, G: 100, B: 50},
		CollectedAt:    time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC),
	}

	response := ToArticleResponse(record)

	assert.NotNil(t, response)
	assert.Equal(t, "k1002", response.ID)
	assert.Equal(t, 3, response.MediaID)
	assert.Equal(t, record.Title, response.Title)
	assert.Equal(t, record.URL, response.URL)
	assert.Equal(t, record.ContentText, response.ContentText)
	assert.Equal(t, record.PublishDate, response.PublishDate)
	assert.Equal(t, 2, response.CategoryID)
	assert.Equal(t, &topic, response.TopicID)
	assert.Equal(t, "編集部", response.Author)
	assert.Equal(t, record.Thumbnail, response.Thumbnail)
	assert.Equal(t, record.CollectedAt, response.CollectedAt)

	assert.NotNil(t, response.ThumbnailColor)
	assert.Equal(t, 200, response.ThumbnailColor.R)
	assert.Equal(t, 100, response.ThumbnailColor.G)
	assert.Equal(t, 50, response.ThumbnailColor.B)
}

func TestToArticleResponse_Nil(t *testing.T) {
	assert.Nil(t, ToArticleResponse(nil))
}

func TestToArticleResponse_NoColor(t *testing.T) {
	record := &domain.ArticleRecord{
		Title: "headline",
		URL:   "https://example.com/a.html",
	}

	response := ToArticleResponse(record)

	assert.NotNil(t, response)
	assert.Nil(t, response.ThumbnailColor)
}

func TestToRecentArticlesResponse(t *testing.T) {
	records := []domain.ArticleRecord{
		{Title: "first", URL: "https://example.com/1.html"},
		{Title: "second", URL: "https://example.com/2.html"},
	}

	response := ToRecentArticlesResponse(records)

	assert.Equal(t, 2, response.Total)
	assert.Len(t, response.Articles, 2)
	assert.Equal(t, "first", response.Articles[0].Title)
	assert.Equal(t, "second", response.Articles[1].Title)
}

func TestToRecentArticlesResponse_Empty(t *testing.T) {
	response := ToRecentArticlesResponse(nil)

	assert.Equal(t, 0, response.Total)
	assert.NotNil(t, response.Articles)
	assert.Len(t, response.Articles, 0)
}
