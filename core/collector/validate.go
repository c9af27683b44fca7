// ABOUTME: Post-collection URL reachability pass with a configurable policy
// ABOUTME: Soft warns and keeps, hard drops, off skips the pass entirely

package collector

import (
	"context"
	"time"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
)

// URL reachability policies
const (
	ValidationSoft = "soft"
	ValidationHard = "hard"
	ValidationOff  = "off"
)

// validationTimeout bounds each reachability probe
const validationTimeout = 5 * time.Second

// validateRecords applies the reachability policy to collected records
func (s *SiteCollector) validateRecords(ctx context.Context, client interfaces.HTTPClient, records []domain.ArticleRecord) []domain.ArticleRecord {
	if s.validation == ValidationOff {
		return records
	}

	kept := make([]domain.ArticleRecord, 0, len(records))
	for _, record := range records {
		if s.reachable(ctx, client, record.URL) {
			kept = append(kept, record)
			continue
		}

		if s.validation == ValidationHard {
			s.logger.Warn("dropping unreachable article", map[string]interface{}{
				"url": record.URL,
			})
			continue
		}

		s.logger.Warn("article URL not reachable", map[string]interface{}{
			"url": record.URL,
		})
		kept = append(kept, record)
	}

	return kept
}

// reachable probes the URL with a HEAD request under a short timeout
func (s *SiteCollector) reachable(ctx context.Context, client interfaces.HTTPClient, url string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, validationTimeout)
	defer cancel()

	resp, err := client.Head(probeCtx, url)
	if err != nil {
		return false
	}
	defer resp.Body().Close()

	return resp.StatusCode() >= 200 && resp.StatusCode() < 400
}
