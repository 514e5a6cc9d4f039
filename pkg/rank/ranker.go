// Package rank scores the sentences of a text with PageRank over a graph
// whose edges join sentences with similar stem sets, and picks the best ones
// as an extractive summary.
package rank

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/COMP3220/2020S1/pkg/textproc"
)

// Ranker carries the NLP primitives and logger shared by all operations.
// The zero value is not usable; build one with New.
type Ranker struct {
	nlp    *textproc.Pipeline
	logger *slog.Logger
}

// New returns a Ranker. A nil pipeline selects textproc.Default and a nil
// logger discards output.
func New(nlp *textproc.Pipeline, logger *slog.Logger) *Ranker {
	if nlp == nil {
		nlp = textproc.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ranker{nlp: nlp, logger: logger}
}

var defaultRanker = New(nil, nil)

// SentenceToSet projects sentence onto vocabulary with the default pipeline.
func SentenceToSet(sentence string, vocabulary []string) StemSet {
	return defaultRanker.StemSet(sentence, vocabulary)
}

// Similarity is the Jaccard similarity of two sentences with the default pipeline.
func Similarity(sentence1, sentence2 string, vocabulary []string) float64 {
	return defaultRanker.Similarity(sentence1, sentence2, vocabulary)
}

// TransitionMatrix builds the transition matrix with the default pipeline.
func TransitionMatrix(sentences, vocabulary []string, threshold float64) (*mat.Dense, error) {
	return defaultRanker.TransitionMatrix(sentences, vocabulary, threshold)
}

// PageRank ranks sentences with the default pipeline.
func PageRank(sentences, vocabulary []string, p Params) (Result, error) {
	return defaultRanker.PageRank(sentences, vocabulary, p)
}

// Summarise returns the n best sentences of text with the default pipeline.
func Summarise(text string, vocabulary []string, n int, p Params) ([]string, error) {
	return defaultRanker.Summarise(text, vocabulary, n, p)
}
