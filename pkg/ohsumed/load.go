package ohsumed

import (
	"fmt"
	"os"

	"github.com/COMP3220/2020S1/models"
)

// Files names the three files of a collection.
type Files struct {
	Corpus    string
	Questions string
	Answers   string
}

// DefaultFiles are the file names of the 1987 batch.
var DefaultFiles = Files{
	Corpus:    "ohsumed.87",
	Questions: "query.ohsu.1-63",
	Answers:   "qrels.ohsu.batch.87",
}

// Collection is everything read from a Files set, keeping the judgment
// lines so they can be stored with their relevance grades.
type Collection struct {
	Corpus    *models.Corpus
	Records   []models.Record
	Questions []models.Question
	Judgments []models.Judgment
}

// Load reads the three files. A later record with a repeated key replaces
// the earlier one in Corpus.Documents.
func Load(files Files) (*Collection, error) {
	c := &Collection{Corpus: models.NewCorpus()}

	if err := readFile(files.Corpus, func(f *os.File) (err error) {
		c.Records, err = ReadRecords(f)
		return err
	}); err != nil {
		return nil, err
	}
	if err := readFile(files.Questions, func(f *os.File) (err error) {
		c.Questions, err = ReadQuestions(f)
		return err
	}); err != nil {
		return nil, err
	}
	if err := readFile(files.Answers, func(f *os.File) (err error) {
		c.Judgments, err = ReadJudgments(f)
		return err
	}); err != nil {
		return nil, err
	}

	for _, r := range c.Records {
		c.Corpus.Documents[r.Key] = r.Text
	}
	for _, q := range c.Questions {
		c.Corpus.Questions[q.Key] = q.Text
	}
	c.Corpus.Answers = GroupJudgments(c.Judgments)
	return c, nil
}

func readFile(path string, read func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
