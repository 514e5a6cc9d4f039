package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/COMP3220/2020S1/models"
)

// SummaryRun is one stored summary of a document.
type SummaryRun struct {
	RunID      int64                    `yaml:"run_id"`
	DocKey     string                   `yaml:"doc_key"`
	Params     models.SummaryConfig     `yaml:"params"`
	Vocabulary []string                 `yaml:"vocabulary"`
	Sentences  []models.SummarySentence `yaml:"sentences"`
	Iterations int                      `yaml:"iterations"`
	Converged  bool                     `yaml:"converged"`
	CreatedAt  time.Time                `yaml:"created_at"`
}

// RecordSummary stores a summary run and returns its run_id.
// The document must already exist.
func (db *DB) RecordSummary(run SummaryRun) (int64, error) {
	params, err := json.Marshal(run.Params)
	if err != nil {
		return 0, fmt.Errorf("failed to encode params: %w", err)
	}
	vocab, err := json.Marshal(nonNil(run.Vocabulary))
	if err != nil {
		return 0, fmt.Errorf("failed to encode vocabulary: %w", err)
	}
	sentences, err := json.Marshal(run.Sentences)
	if err != nil {
		return 0, fmt.Errorf("failed to encode sentences: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO summary_runs (doc_key, params, vocabulary, sentences, iterations, converged)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.DocKey, string(params), string(vocab), string(sentences), run.Iterations, run.Converged)
	if err != nil {
		return 0, fmt.Errorf("failed to insert summary run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListSummaries returns the runs of docKey, newest first. A non-positive
// limit returns every run.
func (db *DB) ListSummaries(docKey string, limit int) ([]SummaryRun, error) {
	query := `
		SELECT run_id, doc_key, params, vocabulary, sentences, iterations, converged, created_at
		FROM summary_runs
		WHERE doc_key = ?
		ORDER BY run_id DESC
	`
	args := []interface{}{docKey}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary runs: %w", err)
	}
	defer rows.Close()

	var runs []SummaryRun
	for rows.Next() {
		var run SummaryRun
		var params, vocab, sentences string
		if err := rows.Scan(&run.RunID, &run.DocKey, &params, &vocab, &sentences, &run.Iterations, &run.Converged, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan summary run: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &run.Params); err != nil {
			return nil, fmt.Errorf("failed to decode params of run %d: %w", run.RunID, err)
		}
		if err := json.Unmarshal([]byte(vocab), &run.Vocabulary); err != nil {
			return nil, fmt.Errorf("failed to decode vocabulary of run %d: %w", run.RunID, err)
		}
		if err := json.Unmarshal([]byte(sentences), &run.Sentences); err != nil {
			return nil, fmt.Errorf("failed to decode sentences of run %d: %w", run.RunID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
