// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Provides safe parsing with default values

package parse

import (
	"strconv"
	"strings"
)

// IntPtrOrNil parses an optional integer, returning nil for empty or
// unparseable input. Used for fields where absence and zero differ.
func IntPtrOrNil(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
