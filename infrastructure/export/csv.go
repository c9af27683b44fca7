// ABOUTME: CSV batch exporter producing the integrated news file per run
// ABOUTME: Writes fully quoted rows plus a stats sidecar for the ingest handoff

package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
	"newswire-collector/core/runner"
)

// fileStamp is the filename prefix layout (month, day, hour, minute)
const fileStamp = "01021504"

// csvColumns is the downstream ingest contract; id stays empty because
// the ingest database assigns it
var csvColumns = []string{
	"id",
	"media_id",
	"title",
	"url",
	"content",
	"publish_date",
	"category_id",
	"topic_id",
	"author",
	"collected_at",
}

// CSVExporter implements the Exporter interface writing one integrated
// CSV file and a stats JSON per collection run
type CSVExporter struct {
	dir    string
	logger interfaces.Logger
}

// NewCSVExporter creates a CSV exporter writing into dir
func NewCSVExporter(dir string, logger interfaces.Logger) *CSVExporter {
	return &CSVExporter{
		dir:    dir,
		logger: logger,
	}
}

// Export writes the batch to a timestamped CSV file. Runs that
// collected nothing write nothing.
func (e *CSVExporter) Export(ctx context.Context, records []domain.ArticleRecord, summary runner.Summary) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if len(records) == 0 {
		e.logger.Debug("no records to export", map[string]interface{}{"dir": e.dir})
		return nil
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	stamp := summary.FinishedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}

	path := filepath.Join(e.dir, stamp.Format(fileStamp)+"_integrated_news.csv")
	if err := e.writeCSV(path, records); err != nil {
		return err
	}

	statsPath := filepath.Join(e.dir, stamp.Format(fileStamp)+"_stats.json")
	if err := writeStats(statsPath, path, len(records), summary); err != nil {
		return err
	}

	e.logger.Info("batch exported", map[string]interface{}{
		"file":  path,
		"items": len(records),
	})

	return nil
}

func (e *CSVExporter) writeCSV(path string, records []domain.ArticleRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	if _, err := w.WriteString(quoteAll(csvColumns) + "\n"); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range records {
		if _, err := w.WriteString(quoteAll(csvRow(&records[i])) + "\n"); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush export file: %w", err)
	}

	return file.Close()
}

// csvRow renders one record in column order
func csvRow(record *domain.ArticleRecord) []string {
	publishDate := ""
	if !record.PublishDate.IsZero() {
		publishDate = record.PublishDate.Format("2006-01-02 15:04:05")
	}

	topicID := ""
	if record.TopicID != nil {
		topicID = strconv.Itoa(*record.TopicID)
	}

	collectedAt := record.CollectedAt
	if collectedAt.IsZero() {
		collectedAt = time.Now()
	}

	return []string{
		"", // id assigned downstream
		strconv.Itoa(record.MediaID),
		record.Title,
		record.URL,
		record.ContentText,
		publishDate,
		strconv.Itoa(record.CategoryID),
		topicID,
		record.Author,
		collectedAt.Format("2006-01-02 15:04:05.000000"),
	}
}

// quoteAll renders a row with every field quoted, doubling embedded
// quotes, to match the ingest side's strict reader
func quoteAll(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// runStats is the per-run summary written beside the CSV
type runStats struct {
	OutputFile string `json:"output_file"`
	TotalItems int    `json:"total_items"`
	Feeds      int    `json:"feeds"`
	Failures   int    `json:"failures"`
	FinishedAt string `json:"finished_at"`
}

func writeStats(path string, outputFile string, items int, summary runner.Summary) error {
	stats := runStats{
		OutputFile: outputFile,
		TotalItems: items,
		Feeds:      summary.Feeds,
		Failures:   summary.Failures,
		FinishedAt: summary.FinishedAt.UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run stats: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run stats: %w", err)
	}

	return nil
}
