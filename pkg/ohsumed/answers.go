package ohsumed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/COMP3220/2020S1/models"
)

// JudgmentScanner walks a relevance file with one "query doc relevance"
// triple per line. Blank lines are skipped.
type JudgmentScanner struct {
	lines  *bufio.Scanner
	cur    models.Judgment
	err    error
	lineNo int
}

// NewJudgmentScanner returns a scanner reading from r.
func NewJudgmentScanner(r io.Reader) *JudgmentScanner {
	return &JudgmentScanner{lines: newLineScanner(r)}
}

// Scan advances to the next judgment. A line without exactly three fields
// stops the scan with an error.
func (s *JudgmentScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.lines.Scan() {
		s.lineNo++
		fields := strings.Fields(s.lines.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			s.err = fmt.Errorf("line %d: expected 3 fields, got %d", s.lineNo, len(fields))
			return false
		}
		s.cur = models.Judgment{QueryKey: fields[0], DocKey: fields[1], Relevance: fields[2]}
		return true
	}
	if err := s.lines.Err(); err != nil {
		s.err = fmt.Errorf("failed to read judgments at line %d: %w", s.lineNo, err)
	}
	return false
}

// Judgment returns the triple found by the last call to Scan.
func (s *JudgmentScanner) Judgment() models.Judgment {
	return s.cur
}

// Err returns the first read or format error.
func (s *JudgmentScanner) Err() error {
	return s.err
}

// ReadJudgments reads every triple of r.
func ReadJudgments(r io.Reader) ([]models.Judgment, error) {
	var out []models.Judgment
	s := NewJudgmentScanner(r)
	for s.Scan() {
		out = append(out, s.Judgment())
	}
	return out, s.Err()
}

// GroupJudgments collects the relevant document keys of each query.
func GroupJudgments(judgments []models.Judgment) models.Judgments {
	out := make(models.Judgments)
	for _, j := range judgments {
		out.Add(j.QueryKey, j.DocKey)
	}
	return out
}
