// ABOUTME: Safe SQL query builder for the SQLite article archive
// ABOUTME: Enforces parameterization and prevents SQL injection attacks

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// QueryBuilder provides a safe way to build SQL queries with automatic parameterization
type QueryBuilder struct {
	query  string
	params []interface{}
}

// Table and column name validation - only alphanumeric, underscore allowed
var (
	safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	// Maximum identifier length to prevent abuse
	maxArticleIDLength = 255
)

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		params: make([]interface{}, 0),
	}
}

// validateName validates table/column names to prevent SQL injection
func (qb *QueryBuilder) validateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}

	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid name: %s (only alphanumeric and underscore allowed)", name)
	}

	// Prevent extremely long names
	if len(name) > 64 {
		return fmt.Errorf("name too long: %s (max 64 characters)", name)
	}

	return nil
}

// Select builds a SELECT query
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	// Validate column names, falling back to * on anything suspicious
	for _, col := range columns {
		if err := qb.validateName(col); err != nil {
			qb.query = "SELECT * "
			return qb
		}
	}

	if len(columns) == 0 {
		qb.query = "SELECT * "
	} else {
		qb.query = "SELECT " + strings.Join(columns, ", ") + " "
	}

	return qb
}

// From adds FROM clause
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	if err := qb.validateName(table); err != nil {
		return qb
	}

	qb.query += "FROM " + table + " "
	return qb
}

// Where adds WHERE clause with parameterized conditions
func (qb *QueryBuilder) Where(column string, operator string, value interface{}) *QueryBuilder {
	if err := qb.validateName(column); err != nil {
		return qb
	}

	// Validate operator
	allowedOperators := map[string]bool{
		"=":  true,
		"!=": true,
		">":  true,
		"<":  true,
		">=": true,
		"<=": true,
	}

	if !allowedOperators[operator] {
		operator = "=" // Default to equals for safety
	}

	if strings.Contains(qb.query, "WHERE") {
		qb.query += "AND "
	} else {
		qb.query += "WHERE "
	}

	qb.query += column + " " + operator + " ? "
	qb.params = append(qb.params, value)

	return qb
}

// OrderBy adds an ORDER BY clause. Only validated column names and the
// two SQL directions are accepted.
func (qb *QueryBuilder) OrderBy(column string, direction string) *QueryBuilder {
	if err := qb.validateName(column); err != nil {
		return qb
	}

	direction = strings.ToUpper(direction)
	if direction != "ASC" && direction != "DESC" {
		direction = "ASC"
	}

	qb.query += "ORDER BY " + column + " " + direction + " "
	return qb
}

// Limit adds a parameterized LIMIT clause
func (qb *QueryBuilder) Limit(n interface{}) *QueryBuilder {
	qb.query += "LIMIT ? "
	qb.params = append(qb.params, n)
	return qb
}

// InsertOrReplace builds an INSERT OR REPLACE query
func (qb *QueryBuilder) InsertOrReplace(table string) *QueryBuilder {
	if err := qb.validateName(table); err != nil {
		return qb
	}

	qb.query = "INSERT OR REPLACE INTO " + table + " "
	return qb
}

// Values adds VALUES clause
func (qb *QueryBuilder) Values(columns []string, values []interface{}) *QueryBuilder {
	if len(columns) != len(values) {
		return qb // Invalid input
	}

	// Validate column names
	validColumns := make([]string, 0, len(columns))
	validValues := make([]interface{}, 0, len(values))

	for i, col := range columns {
		if err := qb.validateName(col); err == nil {
			validColumns = append(validColumns, col)
			validValues = append(validValues, values[i])
		}
	}

	if len(validColumns) == 0 {
		return qb
	}

	placeholders := make([]string, len(validColumns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	qb.query += "(" + strings.Join(validColumns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	qb.params = append(qb.params, validValues...)

	return qb
}

// Delete builds a DELETE query
func (qb *QueryBuilder) Delete(table string) *QueryBuilder {
	if err := qb.validateName(table); err != nil {
		return qb
	}

	qb.query = "DELETE FROM " + table + " "
	return qb
}

// Build returns the built query and parameters
func (qb *QueryBuilder) Build() (string, []interface{}) {
	return strings.TrimSpace(qb.query), qb.params
}

// ValidateArticleID validates an article identifier before it is used
// as a primary key
func ValidateArticleID(id string) error {
	if id == "" {
		return errors.New("article id cannot be empty")
	}

	if len(id) > maxArticleIDLength {
		return fmt.Errorf("article id too long: max %d characters", maxArticleIDLength)
	}

	// Null bytes confuse SQLite text handling even when parameterized
	if strings.Contains(id, "\x00") {
		return errors.New("article id cannot contain null bytes")
	}

	return nil
}

// ArticleQueryBuilder provides pre-built queries for archive operations
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates an archive-specific query builder
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// articleColumns lists the persisted columns in insert order
var articleColumns = []string{
	"article_id",
	"media_id",
	"category_id",
	"title",
	"url",
	"author",
	"thumbnail",
	"content_text",
	"publish_date",
	"collected_at",
	"payload",
}

// SaveQuery builds a parameterized upsert query
func (aq *ArticleQueryBuilder) SaveQuery() (string, int) {
	qb := NewQueryBuilder()
	qb.InsertOrReplace("articles").
		Values(articleColumns, make([]interface{}, len(articleColumns)))

	query, _ := qb.Build()
	return query, len(articleColumns)
}

// RecentQuery builds a parameterized newest-first query
func (aq *ArticleQueryBuilder) RecentQuery() (string, int) {
	qb := NewQueryBuilder()
	qb.Select("payload").
		From("articles").
		OrderBy("publish_date", "DESC").
		Limit(nil)

	query, _ := qb.Build()
	return query, 1
}

// SearchQuery builds a newest-first title-match query. The ESCAPE
// clause cannot pass through the builder, so this one is literal.
func (aq *ArticleQueryBuilder) SearchQuery() (string, int) {
	return `SELECT payload FROM articles WHERE title LIKE ? ESCAPE '\' ORDER BY publish_date DESC LIMIT ?`, 2
}

// CountQuery returns the archive count query. Aggregate expressions
// cannot pass the name validator, so this one is literal.
func (aq *ArticleQueryBuilder) CountQuery() (string, int) {
	return "SELECT COUNT(*) FROM articles", 0
}
