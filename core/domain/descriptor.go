// ABOUTME: FeedDescriptor domain model represents one row of the feed table
// ABOUTME: Provides validation so dispatch only sees well-formed descriptors

package domain

import (
	"errors"
	"net/url"
)

// FeedDescriptor describes one configured news source
type FeedDescriptor struct {
	// SourceID identifies the source row in the feed table
	SourceID string

	// MediaID is the numeric identifier of the publishing outlet
	MediaID int

	// MediaName is the human-readable outlet name, for diagnostics only
	MediaName string

	// CategoryID preassigns a canonical category; nil means the page label decides
	CategoryID *int

	// SourceLink is the feed URL the plugin fetches
	SourceLink string

	// PluginName selects the collector plugin from the registry
	PluginName string

	// SourceType is the transport kind, currently "RSS"
	SourceType string

	// Active marks whether the descriptor participates in collection runs
	Active bool
}

// Validate checks the descriptor has the fields dispatch requires
func (d *FeedDescriptor) Validate() error {
	if d.SourceLink == "" {
		return errors.New("feed descriptor source link cannot be empty")
	}

	if _, err := url.ParseRequestURI(d.SourceLink); err != nil {
		return errors.New("feed descriptor source link is not a valid URL")
	}

	if d.MediaID <= 0 {
		return errors.New("feed descriptor media ID must be positive")
	}

	return nil
}
