// ABOUTME: SQLite-backed article archive for collected news articles
// ABOUTME: Provides upsert semantics keyed by article identifier and newest-first reads

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"newswire-collector/core/domain"

	_ "github.com/mattn/go-sqlite3"
)

// defaultRecentLimit bounds Recent when the caller passes no limit
const defaultRecentLimit = 50

// Client implements the ArticleStore interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	queries  *ArticleQueryBuilder
}

// NewSQLiteStore creates a new SQLite article store
func NewSQLiteStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "articles.db"
	}

	// Open database connection
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		queries:  NewArticleQueryBuilder(),
	}

	// Initialize schema
	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the articles table if it doesn't exist.
// The scalar columns support querying; payload carries the full record.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS articles (
			article_id   TEXT PRIMARY KEY,
			media_id     INTEGER NOT NULL,
			category_id  INTEGER NOT NULL,
			title        TEXT NOT NULL,
			url          TEXT NOT NULL,
			author       TEXT,
			thumbnail    TEXT,
			content_text TEXT,
			publish_date INTEGER NOT NULL,
			collected_at INTEGER NOT NULL,
			payload      BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_articles_publish_date ON articles(publish_date);
		CREATE INDEX IF NOT EXISTS idx_articles_media ON articles(media_id);
	`

	_, err := c.db.Exec(query)
	return err
}

// Save persists a batch of articles, replacing earlier rows with the
// same identifier
func (c *Client) Save(ctx context.Context, articles []domain.ArticleRecord) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, _ := c.queries.SaveQuery()
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := range articles {
		record := &articles[i]
		id := record.ID()
		if err := ValidateArticleID(id); err != nil {
			return fmt.Errorf("article %q: %w", record.URL, err)
		}

		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal article %s: %w", id, err)
		}

		_, err = stmt.ExecContext(ctx,
			id,
			record.MediaID,
			record.CategoryID,
			record.Title,
			record.URL,
			record.Author,
			record.Thumbnail,
			record.ContentText,
			record.PublishDate.Unix(),
			record.CollectedAt.Unix(),
			payload,
		)
		if err != nil {
			return fmt.Errorf("failed to save article %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// Recent retrieves up to limit articles ordered by publish date,
// newest first. A non-positive limit falls back to the default.
func (c *Client) Recent(ctx context.Context, limit int) ([]domain.ArticleRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	query, _ := c.queries.RecentQuery()
	rows, err := c.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ArticleRecord, 0, limit)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}

		var record domain.ArticleRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// SearchByTitle retrieves up to limit articles whose titles contain
// the query, ordered by publish date, newest first. Matching ignores
// ASCII case.
func (c *Client) SearchByTitle(ctx context.Context, query string, limit int) ([]domain.ArticleRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	sqlQuery, _ := c.queries.SearchQuery()
	pattern := "%" + escapeLike(query) + "%"
	rows, err := c.db.QueryContext(ctx, sqlQuery, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ArticleRecord, 0, limit)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}

		var record domain.ArticleRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// escapeLike neutralizes LIKE wildcards in user-entered search terms
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// Count returns the number of archived articles
func (c *Client) Count(ctx context.Context) (int, error) {
	query, _ := c.queries.CountQuery()

	var count int
	err := c.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return count, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Stats returns archive statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// Count total articles
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count)
	if err != nil {
		return nil, err
	}
	stats["total_articles"] = count

	// Newest publish date
	var newest sql.NullInt64
	err = c.db.QueryRow("SELECT MAX(publish_date) FROM articles").Scan(&newest)
	if err == nil && newest.Valid {
		stats["newest_publish_date"] = time.Unix(newest.Int64, 0).UTC().Format(time.RFC3339)
	}

	// Database file size
	var pageCount, pageSize int
	err = c.db.QueryRow("PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRow("PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
