// ABOUTME: CSV-backed feed table loader producing feed descriptors
// ABOUTME: Parses the page master export with header-mapped columns

package feedtable

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
	"newswire-collector/pkg/utils/parse"
)

// requiredColumns must all be present in the table header
var requiredColumns = []string{
	"source_id",
	"media_id",
	"news_category",
	"source_link",
	"script_file_name",
	"active",
	"source_type",
}

// CSVSource implements the FeedSource interface over a CSV file.
// The file is re-read on every Load so table edits take effect on the
// next collection run without a restart.
type CSVSource struct {
	filePath string
	logger   interfaces.Logger
}

// NewCSVSource creates a feed source reading from the given CSV file
func NewCSVSource(filePath string, logger interfaces.Logger) *CSVSource {
	return &CSVSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads every descriptor from the table, unfiltered. Malformed
// rows are logged and skipped; a missing file or header is an error.
func (s *CSVSource) Load(ctx context.Context) ([]domain.FeedDescriptor, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed table: %w", err)
	}
	defer file.Close()

	// The header row fixes the expected field count; rows that do not
	// match surface as per-row errors and are skipped below
	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed table header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	descriptors := make([]domain.FeedDescriptor, 0)
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.logger.Warn("feed table row unreadable", map[string]interface{}{
				"line":  line,
				"error": err.Error(),
			})
			continue
		}

		descriptor, err := s.parseRow(columns, row)
		if err != nil {
			s.logger.Warn("feed table row skipped", map[string]interface{}{
				"line":  line,
				"error": err.Error(),
			})
			continue
		}

		descriptors = append(descriptors, descriptor)
	}

	s.logger.Debug("feed table loaded", map[string]interface{}{
		"path": s.filePath,
		"rows": len(descriptors),
	})

	return descriptors, nil
}

// mapColumns resolves header names to field indexes
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		// Excel exports prefix the first cell with a UTF-8 BOM
		name = strings.TrimPrefix(name, "\uFEFF")
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("feed table missing required column %q", required)
		}
	}

	return columns, nil
}

// parseRow converts one table row into a descriptor
func (s *CSVSource) parseRow(columns map[string]int, row []string) (domain.FeedDescriptor, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	sourceID := field("source_id")
	if sourceID == "" {
		return domain.FeedDescriptor{}, fmt.Errorf("missing source_id")
	}

	mediaID, err := strconv.Atoi(field("media_id"))
	if err != nil {
		return domain.FeedDescriptor{}, fmt.Errorf("invalid media_id %q", field("media_id"))
	}

	descriptor := domain.FeedDescriptor{
		SourceID:   sourceID,
		MediaID:    mediaID,
		MediaName:  field("media_name"),
		CategoryID: parseCategory(field("news_category")),
		SourceLink: field("source_link"),
		PluginName: pluginName(field("script_file_name")),
		SourceType: field("source_type"),
		Active:     parseBool(field("active")),
	}

	return descriptor, nil
}

// parseCategory coerces the category column to an identifier; anything
// non-numeric becomes nil, leaving the row for the registry to filter
func parseCategory(value string) *int {
	return parse.IntPtrOrNil(value)
}

// pluginName derives the registry name from the script file column
func pluginName(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, ".py")
	return value
}

// parseBool accepts the spreadsheet booleans the table is exported with
func parseBool(value string) bool {
	return strings.EqualFold(value, "true") || value == "1"
}
