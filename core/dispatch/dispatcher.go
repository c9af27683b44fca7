// ABOUTME: Dispatcher runs collector plugins over feed descriptors concurrently
// ABOUTME: One failing or panicking feed never disturbs the others

package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
	"newswire-collector/core/registry"
)

// DefaultFeedConcurrency bounds concurrent feed collections
const DefaultFeedConcurrency = 4

// FeedResult is the outcome of collecting one feed descriptor
type FeedResult struct {
	// Descriptor is the feed this result belongs to
	Descriptor domain.FeedDescriptor

	// Items are the collected articles; empty on failure
	Items []domain.ArticleRecord

	// Err is the whole-feed failure, nil on success
	Err error

	// Elapsed is the wall-clock collection time for this feed
	Elapsed time.Duration
}

// Dispatcher fans collection runs out over the configured feeds
type Dispatcher struct {
	deps    interfaces.Dependencies
	plugins *registry.PluginRegistry
	limit   int
}

// NewDispatcher creates a dispatcher. A non-positive feedConcurrency
// falls back to the default.
func NewDispatcher(deps interfaces.Dependencies, plugins *registry.PluginRegistry, feedConcurrency int) *Dispatcher {
	if feedConcurrency <= 0 {
		feedConcurrency = DefaultFeedConcurrency
	}

	return &Dispatcher{
		deps:    deps,
		plugins: plugins,
		limit:   feedConcurrency,
	}
}

// Run collects every descriptor and returns one result per descriptor,
// in input order. Partial success is the normal outcome; callers decide
// what to do with the failed slots.
func (d *Dispatcher) Run(ctx context.Context, descriptors []domain.FeedDescriptor) []FeedResult {
	results := make([]FeedResult, len(descriptors))
	if len(descriptors) == 0 {
		return results
	}

	started := time.Now()
	semaphore := make(chan struct{}, d.limit)

	var wg sync.WaitGroup
	for i, desc := range descriptors {
		wg.Add(1)
		go func(slot int, desc domain.FeedDescriptor) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[slot] = d.collect(ctx, desc)
		}(i, desc)
	}
	wg.Wait()

	items, failures := 0, 0
	for _, result := range results {
		items += len(result.Items)
		if result.Err != nil {
			failures++
		}
	}

	d.deps.Logger.Info("collection run finished", map[string]interface{}{
		"feeds":      len(descriptors),
		"items":      items,
		"failures":   failures,
		"elapsed_ms": time.Since(started).Milliseconds(),
	})

	return results
}

// collect runs one descriptor's plugin, converting panics into errors
func (d *Dispatcher) collect(ctx context.Context, desc domain.FeedDescriptor) (result FeedResult) {
	started := time.Now()
	result.Descriptor = desc

	defer func() {
		result.Elapsed = time.Since(started)
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("plugin %q panicked: %v", desc.PluginName, r)
		}
		if result.Err != nil {
			d.deps.Logger.Error("feed collection failed", map[string]interface{}{
				"source_id":  desc.SourceID,
				"feed":       desc.SourceLink,
				"plugin":     desc.PluginName,
				"error":      result.Err.Error(),
				"elapsed_ms": result.Elapsed.Milliseconds(),
			})
		}
	}()

	plugin, err := d.plugins.Resolve(desc.PluginName)
	if err != nil {
		result.Err = err
		return result
	}

	items, err := plugin.Process(ctx, desc, d.deps.HTTPClient)
	result.Items = items
	result.Err = err

	return result
}

// MergeItems flattens the results of a run into one article batch,
// keeping items from failed feeds that still produced partial output
func MergeItems(results []FeedResult) []domain.ArticleRecord {
	merged := make([]domain.ArticleRecord, 0)
	for _, result := range results {
		merged = append(merged, result.Items...)
	}
	return merged
}
