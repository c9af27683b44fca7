package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentArticlesQuery_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero gets default", 0, 50},
		{"negative gets default", -5, 50},
		{"in range kept", 10, 10},
		{"at maximum kept", 200, 200},
		{"above maximum capped", 500, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := RecentArticlesQuery{Limit: tt.limit}
			q.ApplyDefaults()

			assert.Equal(t, tt.expected, q.Limit)
		})
	}
}

func TestRecentArticlesQuery_ApplyDefaults_Page(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		expected int
	}{
		{"zero clamps to first page", 0, 1},
		{"negative clamps to first page", -3, 1},
		{"positive kept", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := RecentArticlesQuery{Page: tt.page}
			q.ApplyDefaults()

			assert.Equal(t, tt.expected, q.Page)
		})
	}
}

func TestSearchArticlesQuery_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero gets default", 0, 50},
		{"above maximum capped", 500, 200},
		{"in range kept", 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := SearchArticlesQuery{Query: "地震", Limit: tt.limit}
			q.ApplyDefaults()

			assert.Equal(t, tt.expected, q.Limit)
		})
	}
}
