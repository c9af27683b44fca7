// ABOUTME: Plugin contract and the RSS SiteCollector reference implementation
// ABOUTME: Entries are fetched concurrently; per-entry skips never fail the feed

package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"newswire-collector/core/domain"
	coreerrors "newswire-collector/core/errors"
	"newswire-collector/core/extract"
	"newswire-collector/core/interfaces"
)

// DefaultEntryConcurrency bounds concurrent article fetches per feed
const DefaultEntryConcurrency = 8

// Plugin collects the articles of one configured feed
type Plugin interface {
	// Process fetches the descriptor's feed and returns its collected
	// articles. Per-entry failures are absorbed as skips; the returned
	// error marks a whole-feed failure.
	Process(ctx context.Context, desc domain.FeedDescriptor, client interfaces.HTTPClient) ([]domain.ArticleRecord, error)
}

// Options configure a SiteCollector
type Options struct {
	// EntryConcurrency bounds concurrent article fetches; zero means default
	EntryConcurrency int

	// Validation is the URL reachability policy: soft, hard, or off
	Validation string
}

// SiteCollector is the RSS reference plugin: it parses a feed index and
// fetches every entry's article page through the extraction pipeline.
type SiteCollector struct {
	fetcher    *ArticleFetcher
	logger     interfaces.Logger
	entryLimit int
	validation string
}

// NewSiteCollector creates a collector for one outlet profile
func NewSiteCollector(profile extract.SiteProfile, logger interfaces.Logger, opts Options) *SiteCollector {
	if opts.EntryConcurrency <= 0 {
		opts.EntryConcurrency = DefaultEntryConcurrency
	}
	if opts.Validation == "" {
		opts.Validation = ValidationSoft
	}

	return &SiteCollector{
		fetcher:    NewArticleFetcher(profile, logger),
		logger:     logger,
		entryLimit: opts.EntryConcurrency,
		validation: opts.Validation,
	}
}

// Process fetches the feed index, collects every entry concurrently, and
// applies the reachability policy to the survivors
func (s *SiteCollector) Process(ctx context.Context, desc domain.FeedDescriptor, client interfaces.HTTPClient) ([]domain.ArticleRecord, error) {
	started := time.Now()

	entries, err := s.fetchEntries(ctx, desc.SourceLink, client)
	if err != nil {
		return nil, err
	}

	type entryResult struct {
		record domain.ArticleRecord
		err    error
		url    string
	}

	resultsChan := make(chan entryResult, len(entries))
	semaphore := make(chan struct{}, s.entryLimit)

	var wg sync.WaitGroup
	for _, entry := range entries {
		wg.Add(1)
		go func(e domain.FeedEntry) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultsChan <- entryResult{url: e.URL, err: ctx.Err()}
				return
			default:
			}

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			record, err := s.fetcher.Fetch(ctx, client, e, desc)
			resultsChan <- entryResult{record: record, err: err, url: e.URL}
		}(entry)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	records := make([]domain.ArticleRecord, 0, len(entries))
	skipped := 0
	var firstError error

	for result := range resultsChan {
		if result.err != nil {
			skipped++
			s.logger.Warn("entry skipped", map[string]interface{}{
				"url":    result.url,
				"feed":   desc.SourceLink,
				"reason": result.err.Error(),
			})
			if firstError == nil && errors.Is(result.err, context.Canceled) {
				firstError = result.err
			}
			continue
		}
		records = append(records, result.record)
	}

	records = s.validateRecords(ctx, client, records)

	s.logger.Info("feed collected", map[string]interface{}{
		"feed":       desc.SourceLink,
		"media_id":   desc.MediaID,
		"collected":  len(records),
		"skipped":    skipped,
		"elapsed_ms": time.Since(started).Milliseconds(),
	})

	if firstError != nil {
		return records, firstError
	}

	return records, nil
}

// fetchEntries downloads and parses the feed index
func (s *SiteCollector) fetchEntries(ctx context.Context, feedURL string, client interfaces.HTTPClient) ([]domain.FeedEntry, error) {
	if feedURL == "" {
		return nil, &coreerrors.ValidationError{Field: "source_link", Message: "feed URL cannot be empty"}
	}

	resp, err := client.Get(ctx, feedURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to fetch feed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-2xx status",
			API:        feedURL,
		}
	}

	content, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read feed body")
	}

	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, &coreerrors.MalformedDataError{
			Source:  feedURL,
			Message: fmt.Sprintf("feed XML is not parseable: %v", err),
		}
	}

	return entriesFromFeed(feed), nil
}

// entriesFromFeed converts parsed feed items to domain entries
func entriesFromFeed(feed *gofeed.Feed) []domain.FeedEntry {
	entries := make([]domain.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		entry := domain.FeedEntry{
			Title:       item.Title,
			URL:         item.Link,
			Published:   item.Published,
			Description: item.Description,
			GUID:        item.GUID,
		}

		if entry.Published == "" && item.PublishedParsed != nil {
			entry.Published = item.PublishedParsed.Format(time.RFC3339)
		}

		entries = append(entries, entry)
	}

	return entries
}
