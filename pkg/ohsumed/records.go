// Package ohsumed reads the three line-oriented files of the OHSUMED
// collection: medline records, query topics and relevance judgments.
package ohsumed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/COMP3220/2020S1/models"
)

// maxLineSize bounds a single line; OHSUMED abstracts fit comfortably.
const maxLineSize = 1024 * 1024

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return s
}

// RecordScanner walks the records of an OHSUMED corpus file. Each record
// starts with a ".I" line; the line after ".U" is the key and the line after
// ".W" is the text. Other fields are ignored.
type RecordScanner struct {
	lines  *bufio.Scanner
	cur    models.Record
	next   models.Record
	done   bool
	err    error
	lineNo int
}

// NewRecordScanner returns a scanner reading from r.
func NewRecordScanner(r io.Reader) *RecordScanner {
	return &RecordScanner{lines: newLineScanner(r)}
}

// Scan advances to the next record. It returns false at the end of input or
// on a read error, which Err reports.
func (s *RecordScanner) Scan() bool {
	if s.done {
		return false
	}

	var inKey, inText bool
	for s.lines.Scan() {
		s.lineNo++
		line := s.lines.Text()
		switch {
		case inKey:
			inKey = false
			s.next.Key = strings.TrimSpace(line)
		case inText:
			inText = false
			s.next.Text = strings.TrimSpace(line)
		case strings.HasPrefix(line, ".U"):
			inKey = true
		case strings.HasPrefix(line, ".W"):
			inText = true
		case strings.HasPrefix(line, ".I") && s.next.Key != "":
			s.cur = s.next
			s.next = models.Record{}
			return true
		}
	}

	s.done = true
	if err := s.lines.Err(); err != nil {
		s.err = fmt.Errorf("failed to read records at line %d: %w", s.lineNo, err)
		return false
	}
	if s.next.Key == "" && s.next.Text == "" {
		return false
	}
	s.cur = s.next
	s.next = models.Record{}
	return true
}

// Record returns the record found by the last call to Scan.
func (s *RecordScanner) Record() models.Record {
	return s.cur
}

// Err returns the first read error.
func (s *RecordScanner) Err() error {
	return s.err
}

// ReadRecords reads every record of r.
func ReadRecords(r io.Reader) ([]models.Record, error) {
	var out []models.Record
	s := NewRecordScanner(r)
	for s.Scan() {
		out = append(out, s.Record())
	}
	return out, s.Err()
}
