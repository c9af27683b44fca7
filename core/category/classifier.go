// ABOUTME: Category classifier maps source category labels to canonical IDs
// ABOUTME: Preassigned IDs from the feed table always win over page labels

package category

import (
	"strings"

	"newswire-collector/core/interfaces"
)

// Canonical category identifiers
const (
	Politics      = 1
	Business      = 2
	Society       = 3
	International = 4
	Sports        = 5
	Culture       = 6
	Entertainment = 7
	Science       = 8
)

// DefaultCategoryID is assigned when no label matches
const DefaultCategoryID = Society

// Lookup keys are lowercased before matching, so ASCII aliases are
// case-insensitive while Japanese labels match exactly.
var labelToID = map[string]int{
	"政治":    Politics,
	"経済":    Business,
	"社会":    Society,
	"国際":    International,
	"スポーツ":  Sports,
	"科学・文化": Culture,
	"エンタメ":  Entertainment,
	"it・科学": Science,
	"国会":    Politics,

	"politics":      Politics,
	"business":      Business,
	"economy":       Business,
	"society":       Society,
	"international": International,
	"world":         International,
	"sports":        Sports,
	"culture":       Culture,
	"entertainment": Entertainment,
	"science":       Science,
	"tech":          Science,
}

// IsValid reports whether id belongs to the canonical category set
func IsValid(id int) bool {
	return id >= Politics && id <= Science
}

// Classifier resolves category labels to canonical identifiers
type Classifier struct {
	logger interfaces.Logger
}

// NewClassifier creates a new classifier
func NewClassifier(logger interfaces.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify returns the canonical category ID for an article. A preassigned
// ID from the feed table wins when it is canonical; otherwise the page
// label decides, and unknown labels fall back to the default.
func (c *Classifier) Classify(label string, preassigned *int) int {
	if preassigned != nil && IsValid(*preassigned) {
		return *preassigned
	}

	key := strings.ToLower(strings.TrimSpace(label))
	if key != "" {
		if id, ok := labelToID[key]; ok {
			return id
		}
	}

	if label != "" {
		c.logger.Debug("unknown category label, using default", map[string]interface{}{
			"label":   label,
			"default": DefaultCategoryID,
		})
	}

	return DefaultCategoryID
}
