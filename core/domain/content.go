// ABOUTME: Structured content model for extracted article bodies
// ABOUTME: Sections preserve document order of headings, paragraphs, and lists

package domain

import "strings"

// Section is one heading-delimited block of article text
type Section struct {
	// Heading is the section title; empty for implicit sections
	Heading string `json:"heading,omitempty"`

	// Level is the heading level (1-6); 0 when Heading is empty
	Level int `json:"level,omitempty"`

	// Content holds the section's paragraphs or list items in document order
	Content []string `json:"content"`
}

// StructuredContent is the machine-readable form of an extracted article
type StructuredContent struct {
	Sections []Section `json:"sections"`
	Images   []string  `json:"images,omitempty"`
	Videos   []string  `json:"videos,omitempty"`
}

// IsZero reports whether extraction produced nothing
func (sc StructuredContent) IsZero() bool {
	return len(sc.Sections) == 0 && len(sc.Images) == 0 && len(sc.Videos) == 0
}

// PlainText joins every heading and content entry, space separated.
// Strategies use it to decide whether a walk produced usable text.
func (sc StructuredContent) PlainText() string {
	parts := make([]string, 0, len(sc.Sections)*2)
	for _, s := range sc.Sections {
		if s.Heading != "" {
			parts = append(parts, s.Heading)
		}
		parts = append(parts, s.Content...)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
