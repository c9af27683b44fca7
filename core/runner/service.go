// ABOUTME: Runner executes end-to-end collection runs over the active feeds
// ABOUTME: Storage and export failures are logged, never void a finished batch

package runner

import (
	"context"
	"sort"
	"time"

	"newswire-collector/core/dispatch"
	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
	"newswire-collector/core/registry"
)

// Summary reports one collection run's outcome
type Summary struct {
	// Feeds is the number of descriptors dispatched
	Feeds int

	// Items is the size of the merged article batch
	Items int

	// Failures counts feeds whose collection failed outright
	Failures int

	// StartedAt and FinishedAt bound the run
	StartedAt  time.Time
	FinishedAt time.Time
}

// Enricher supplements collected records with page metadata
type Enricher interface {
	EnrichArticles(ctx context.Context, records []domain.ArticleRecord) []domain.ArticleRecord
}

// Exporter writes a finished batch to one output target
type Exporter interface {
	Export(ctx context.Context, records []domain.ArticleRecord, summary Summary) error
}

// Config carries the optional stages of a run
type Config struct {
	// Enricher fills missing thumbnails and bylines; nil disables enrichment
	Enricher Enricher

	// Store persists finished batches; nil disables persistence
	Store interfaces.ArticleStore

	// Exporters receive every finished batch
	Exporters []Exporter
}

// Service executes collection runs
type Service struct {
	deps       interfaces.Dependencies
	feeds      *registry.FeedRegistry
	dispatcher *dispatch.Dispatcher
	enricher   Enricher
	store      interfaces.ArticleStore
	exporters  []Exporter
}

// NewService creates a runner over the given registries
func NewService(deps interfaces.Dependencies, feeds *registry.FeedRegistry, dispatcher *dispatch.Dispatcher, cfg Config) *Service {
	return &Service{
		deps:       deps,
		feeds:      feeds,
		dispatcher: dispatcher,
		enricher:   cfg.Enricher,
		store:      cfg.Store,
		exporters:  cfg.Exporters,
	}
}

// RunOnce collects every active feed, enriches and orders the merged
// batch, then hands it to the store and the exporters. The returned
// error covers only the stages before a batch exists; later failures
// are logged and the summary still reports the batch.
func (s *Service) RunOnce(ctx context.Context) (Summary, error) {
	started := time.Now()

	descriptors, err := s.feeds.ActiveFeeds(ctx)
	if err != nil {
		return Summary{}, err
	}

	results := s.dispatcher.Run(ctx, descriptors)
	items := dispatch.MergeItems(results)

	failures := 0
	for _, result := range results {
		if result.Err != nil {
			failures++
		}
	}

	if s.enricher != nil && len(items) > 0 {
		items = s.enricher.EnrichArticles(ctx, items)
	}

	// Concurrent collection leaves no defined order; exports and the
	// store see newest first
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishDate.After(items[j].PublishDate)
	})

	summary := Summary{
		Feeds:      len(descriptors),
		Items:      len(items),
		Failures:   failures,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}

	if s.store != nil && len(items) > 0 {
		if err := s.store.Save(ctx, items); err != nil {
			s.deps.Logger.Error("failed to store collected batch", map[string]interface{}{
				"items": len(items),
				"error": err.Error(),
			})
		}
	}

	for _, exporter := range s.exporters {
		if err := exporter.Export(ctx, items, summary); err != nil {
			s.deps.Logger.Error("batch export failed", map[string]interface{}{
				"items": len(items),
				"error": err.Error(),
			})
		}
	}

	s.deps.Logger.Info("collection run complete", map[string]interface{}{
		"feeds":      summary.Feeds,
		"items":      summary.Items,
		"failures":   summary.Failures,
		"elapsed_ms": summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	})

	return summary, nil
}
