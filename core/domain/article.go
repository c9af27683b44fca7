// ABOUTME: ArticleRecord domain model represents one collected news article
// ABOUTME: Provides validation and a stable identifier derived from the URL

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"
)

// FeedEntry is one entry of a parsed feed index, before its article
// page has been fetched
type FeedEntry struct {
	// Title is the headline as it appeared in the feed
	Title string

	// URL is the article page link
	URL string

	// Published is the raw timestamp string from the feed
	Published string

	// Description is the feed-provided summary, if any
	Description string

	// GUID is the feed-provided unique identifier, if any
	GUID string
}

// ArticleRecord represents a fully collected article
type ArticleRecord struct {
	// MediaID is the outlet identifier from the feed descriptor
	MediaID int

	// Title is the normalized article headline
	Title string

	// URL is the canonical article page URL
	URL string

	// Content is the article body as HTML
	Content string

	// ContentText is the article body as plain text
	ContentText string

	// PublishDate is the resolved publication time
	PublishDate time.Time

	// CategoryID is the canonical category identifier
	CategoryID int

	// TopicID optionally refines the category
	TopicID *int

	// Author is the article byline, when one could be found
	Author string

	// Thumbnail is the lead image URL, when one could be found
	Thumbnail string

	// ThumbnailColor is the thumbnail's dominant color, when computed
	ThumbnailColor *RGBColor

	// CollectedAt is when the collector produced this record
	CollectedAt time.Time

	// Structured is the machine-readable body
	Structured StructuredContent

	// RawData carries per-article diagnostics, JSON serializable
	RawData map[string]interface{}
}

// IsValid checks the record has the fields every consumer requires
func (a *ArticleRecord) IsValid() bool {
	if a.Title == "" {
		return false
	}

	if a.URL == "" {
		return false
	}

	return true
}

// ID returns a stable identifier for the record: the last URL path
// segment without its .html extension, or a URL digest when the path
// has no usable segment
func (a *ArticleRecord) ID() string {
	if u, err := url.Parse(a.URL); err == nil {
		segment := strings.Trim(u.Path, "/")
		if idx := strings.LastIndex(segment, "/"); idx >= 0 {
			segment = segment[idx+1:]
		}
		segment = strings.TrimSuffix(segment, ".html")
		if segment != "" {
			return segment
		}
	}

	sum := sha256.Sum256([]byte(a.URL))
	return hex.EncodeToString(sum[:])[:12]
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
