// ABOUTME: FeedRegistry filters raw feed table rows down to runnable feeds
// ABOUTME: Rows failing eligibility are logged at debug, never errors

package registry

import (
	"context"

	"newswire-collector/core/domain"
	coreerrors "newswire-collector/core/errors"
	"newswire-collector/core/interfaces"
)

// FeedRegistry wraps a feed source and exposes only runnable descriptors
type FeedRegistry struct {
	source interfaces.FeedSource
	logger interfaces.Logger
}

// NewFeedRegistry creates a registry over the given feed source
func NewFeedRegistry(source interfaces.FeedSource, logger interfaces.Logger) *FeedRegistry {
	return &FeedRegistry{
		source: source,
		logger: logger,
	}
}

// ActiveFeeds loads the feed table and returns the descriptors eligible
// for a collection run
func (r *FeedRegistry) ActiveFeeds(ctx context.Context) ([]domain.FeedDescriptor, error) {
	rows, err := r.source.Load(ctx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to load feed table")
	}

	active := make([]domain.FeedDescriptor, 0, len(rows))
	for _, row := range rows {
		if reason := ineligible(row); reason != "" {
			r.logger.Debug("feed descriptor filtered", map[string]interface{}{
				"source_id": row.SourceID,
				"reason":    reason,
			})
			continue
		}
		active = append(active, row)
	}

	return active, nil
}

// ineligible returns the reason a descriptor cannot run, or empty when
// it can. RSS rows additionally need a plugin name and a descriptor
// that passes model validation.
func ineligible(d domain.FeedDescriptor) string {
	if !d.Active {
		return "inactive"
	}
	if d.CategoryID == nil {
		return "no category"
	}
	if d.SourceType == "RSS" {
		if d.PluginName == "" {
			return "missing plugin name"
		}
		if err := d.Validate(); err != nil {
			return err.Error()
		}
	}
	return ""
}
