package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/COMP3220/2020S1/pkg/textproc"
)

// ErrNegativeCount is returned when a negative number of stems is requested.
var ErrNegativeCount = errors.New("analytics: count must not be negative")

// Analytics computes stem statistics with a fixed NLP pipeline.
type Analytics struct {
	NLP *textproc.Pipeline
}

// New returns an Analytics using nlp, or the default pipeline when nlp is nil.
func New(nlp *textproc.Pipeline) *Analytics {
	if nlp == nil {
		nlp = textproc.Default()
	}
	return &Analytics{NLP: nlp}
}

// StemCount is one row of a stem frequency table.
type StemCount struct {
	Stem  string `yaml:"stem" json:"stem"`
	Count int    `yaml:"count" json:"count"`
}

// StemFrequency tokenizes text, drops stopwords (compared case-insensitively on
// the raw token), stems the rest and counts them. The table is sorted by
// descending count; equal counts keep the order of first appearance.
func (a *Analytics) StemFrequency(text string, stop Stopwords) []StemCount {
	counts := a.StemCounts(text, stop)
	SortCounts(counts)
	return counts
}

// SortCounts orders a table by descending count, keeping the existing order
// of equal counts.
func SortCounts(counts []StemCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}

// StemCounts counts the stems of text like StemFrequency but leaves the table
// in order of first appearance.
func (a *Analytics) StemCounts(text string, stop Stopwords) []StemCount {
	index := make(map[string]int)
	var counts []StemCount

	for _, tok := range a.NLP.Tokens(text) {
		if tok == "" || stop.Contains(tok) {
			continue
		}
		stem := a.NLP.StemToken(tok)
		if i, ok := index[stem]; ok {
			counts[i].Count++
			continue
		}
		index[stem] = len(counts)
		counts = append(counts, StemCount{Stem: stem, Count: 1})
	}
	return counts
}

// TopStemCounts returns the n most frequent rows of StemFrequency.
func (a *Analytics) TopStemCounts(text string, n int, stop Stopwords) ([]StemCount, error) {
	if n < 0 {
		return nil, fmt.Errorf("top stems n=%d: %w", n, ErrNegativeCount)
	}
	counts := a.StemFrequency(text, stop)

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}
	return counts[:limit], nil
}

// TopStems returns the n most frequent stems of text, most frequent first.
func (a *Analytics) TopStems(text string, n int, stop Stopwords) ([]string, error) {
	counts, err := a.TopStemCounts(text, n, stop)
	if err != nil {
		return nil, err
	}

	topN := make([]string, len(counts))
	for i, c := range counts {
		topN[i] = c.Stem
	}
	return topN, nil
}

// TopStems runs Analytics.TopStems with the default pipeline.
func TopStems(text string, n int, stop Stopwords) ([]string, error) {
	return New(nil).TopStems(text, n, stop)
}
