// ABOUTME: Date resolution from prioritized candidate strings
// ABOUTME: Guarantees a usable publish time by falling back to now

package dates

import (
	"strings"
	"time"

	"newswire-collector/core/interfaces"
	timeutils "newswire-collector/pkg/utils/time"
)

// Resolver picks the first parseable timestamp from candidate strings
type Resolver struct {
	logger interfaces.Logger
}

// NewResolver creates a new date resolver
func NewResolver(logger interfaces.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve tries candidates in priority order and returns the first one
// that parses. Empty candidates are skipped silently; a candidate that
// fails every format logs a warning. When all candidates are exhausted
// the current time is returned so publish dates are never zero.
func (r *Resolver) Resolve(candidates ...string) time.Time {
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}

		if t := timeutils.ParseFlexibleTime(trimmed); !t.IsZero() {
			return t
		}

		r.logger.Warn("unparseable date candidate", map[string]interface{}{
			"candidate": trimmed,
		})
	}

	r.logger.Warn("no usable date candidate, falling back to current time", nil)
	return time.Now()
}
