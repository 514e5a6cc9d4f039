package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/COMP3220/2020S1/models"
)

// ImportStats counts the distinct keys written by ImportCorpus. A key that
// repeats within one import is stored once and counted once.
type ImportStats struct {
	Documents int `yaml:"documents"`
	Queries   int `yaml:"queries"`
	Judgments int `yaml:"judgments"`
}

// CorpusStats counts the rows currently stored.
type CorpusStats struct {
	Documents int `yaml:"documents"`
	Queries   int `yaml:"queries"`
	Judgments int `yaml:"judgments"`
	Summaries int `yaml:"summaries"`
}

// ImportCorpus upserts records, questions and judgments in one transaction.
// Re-importing the same files replaces texts and relevance grades in place.
func (db *DB) ImportCorpus(records []models.Record, questions []models.Question, judgments []models.Judgment) (ImportStats, error) {
	var stats ImportStats

	tx, err := db.Begin()
	if err != nil {
		return stats, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // No-op after a successful commit
	}()

	docStmt, err := tx.Prepare(`
		INSERT INTO documents (doc_key, text) VALUES (?, ?)
		ON CONFLICT(doc_key) DO UPDATE SET text = excluded.text, updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return stats, fmt.Errorf("failed to prepare document insert: %w", err)
	}
	defer docStmt.Close()

	docKeys := make(map[string]struct{})
	for _, r := range records {
		if r.Key == "" {
			continue
		}
		if _, err := docStmt.Exec(r.Key, r.Text); err != nil {
			return stats, fmt.Errorf("failed to insert document %s: %w", r.Key, err)
		}
		docKeys[r.Key] = struct{}{}
	}
	stats.Documents = len(docKeys)

	queryStmt, err := tx.Prepare(`
		INSERT INTO queries (query_key, text) VALUES (?, ?)
		ON CONFLICT(query_key) DO UPDATE SET text = excluded.text
	`)
	if err != nil {
		return stats, fmt.Errorf("failed to prepare query insert: %w", err)
	}
	defer queryStmt.Close()

	queryKeys := make(map[string]struct{})
	for _, q := range questions {
		if q.Key == "" {
			continue
		}
		if _, err := queryStmt.Exec(q.Key, q.Text); err != nil {
			return stats, fmt.Errorf("failed to insert query %s: %w", q.Key, err)
		}
		queryKeys[q.Key] = struct{}{}
	}
	stats.Queries = len(queryKeys)

	judgmentStmt, err := tx.Prepare(`
		INSERT INTO judgments (query_key, doc_key, relevance) VALUES (?, ?, ?)
		ON CONFLICT(query_key, doc_key) DO UPDATE SET relevance = excluded.relevance
	`)
	if err != nil {
		return stats, fmt.Errorf("failed to prepare judgment insert: %w", err)
	}
	defer judgmentStmt.Close()

	type pair struct{ query, doc string }
	judged := make(map[pair]struct{})
	for _, j := range judgments {
		if _, err := judgmentStmt.Exec(j.QueryKey, j.DocKey, NewNullString(j.Relevance)); err != nil {
			return stats, fmt.Errorf("failed to insert judgment %s/%s: %w", j.QueryKey, j.DocKey, err)
		}
		judged[pair{j.QueryKey, j.DocKey}] = struct{}{}
	}
	stats.Judgments = len(judged)

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit import: %w", err)
	}
	return stats, nil
}

// GetDocument returns the text stored for docKey.
func (db *DB) GetDocument(docKey string) (string, error) {
	var text string
	err := db.QueryRow("SELECT text FROM documents WHERE doc_key = ?", docKey).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("document %s: %w", docKey, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get document: %w", err)
	}
	return text, nil
}

// GetQuery returns the text stored for queryKey.
func (db *DB) GetQuery(queryKey string) (string, error) {
	var text string
	err := db.QueryRow("SELECT text FROM queries WHERE query_key = ?", queryKey).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("query %s: %w", queryKey, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get query: %w", err)
	}
	return text, nil
}

// RelevantDocuments lists the document keys judged relevant for queryKey,
// sorted by key.
func (db *DB) RelevantDocuments(queryKey string) ([]string, error) {
	rows, err := db.Query(`
		SELECT doc_key FROM judgments
		WHERE query_key = ?
		ORDER BY doc_key
	`, queryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query judgments: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan judgment: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// EachDocument calls fn for every stored document in import order.
// Returning an error from fn stops the walk and is returned unchanged.
func (db *DB) EachDocument(fn func(docKey, text string) error) error {
	rows, err := db.Query("SELECT doc_key, text FROM documents ORDER BY doc_id")
	if err != nil {
		return fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, text string
		if err := rows.Scan(&key, &text); err != nil {
			return fmt.Errorf("failed to scan document: %w", err)
		}
		if err := fn(key, text); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Stats counts the rows of each table.
func (db *DB) Stats() (CorpusStats, error) {
	var s CorpusStats
	err := db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM documents),
			(SELECT COUNT(*) FROM queries),
			(SELECT COUNT(*) FROM judgments),
			(SELECT COUNT(*) FROM summary_runs)
	`).Scan(&s.Documents, &s.Queries, &s.Judgments, &s.Summaries)
	if err != nil {
		return s, fmt.Errorf("failed to count rows: %w", err)
	}
	return s, nil
}

// NewNullString creates a sql.NullString from a string value.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
