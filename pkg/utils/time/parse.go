// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles formats found in RSS feeds and Japanese news pages

package time

import (
	"strings"
	"time"
)

// Formats tried in order: RFC-822 style feed timestamps first, then
// ISO-8601 variants, then localized date formats.
var timeFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006年01月02日 15時04分",
	"2006年01月02日",
}

// ParseFlexibleTime attempts to parse a time string using various formats
func ParseFlexibleTime(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}

	timeStr = strings.TrimSpace(timeStr)

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}
