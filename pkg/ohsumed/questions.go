package ohsumed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/COMP3220/2020S1/models"
)

// QuestionScanner walks the topics of an OHSUMED query file:
//
//	<top>
//	<num> Number: OHSU1
//	<title> 60 year old menopausal woman without hormone replacement therapy
//	<desc> Description:
//	Are there adverse effects on lipids when progesterone is given ...
//	</top>
//
// The question text is the title followed by every description line, joined
// by single spaces.
type QuestionScanner struct {
	lines  *bufio.Scanner
	cur    models.Question
	err    error
	lineNo int
}

// NewQuestionScanner returns a scanner reading from r.
func NewQuestionScanner(r io.Reader) *QuestionScanner {
	return &QuestionScanner{lines: newLineScanner(r)}
}

// Scan advances to the next topic closed by "</top>".
func (s *QuestionScanner) Scan() bool {
	var q models.Question
	inDesc := false
	for s.lines.Scan() {
		s.lineNo++
		line := strings.TrimSpace(s.lines.Text())
		switch {
		case strings.HasPrefix(line, "<num>"):
			q = models.Question{Key: questionKey(line)}
		case strings.HasPrefix(line, "<title>"):
			q.Text = strings.TrimSpace(strings.TrimPrefix(line, "<title>"))
		case strings.HasPrefix(line, "<desc>"):
			inDesc = true
		case strings.HasPrefix(line, "</top>"):
			s.cur = q
			return true
		case inDesc:
			q.Text += " " + line
		}
	}
	if err := s.lines.Err(); err != nil {
		s.err = fmt.Errorf("failed to read questions at line %d: %w", s.lineNo, err)
	}
	return false
}

// questionKey extracts "OHSU1" from "<num> Number: OHSU1".
func questionKey(line string) string {
	key := strings.TrimSpace(strings.TrimPrefix(line, "<num>"))
	key = strings.TrimPrefix(key, "Number:")
	return strings.TrimSpace(key)
}

// Question returns the topic found by the last call to Scan.
func (s *QuestionScanner) Question() models.Question {
	return s.cur
}

// Err returns the first read error.
func (s *QuestionScanner) Err() error {
	return s.err
}

// ReadQuestions reads every topic of r.
func ReadQuestions(r io.Reader) ([]models.Question, error) {
	var out []models.Question
	s := NewQuestionScanner(r)
	for s.Scan() {
		out = append(out, s.Question())
	}
	return out, s.Err()
}
