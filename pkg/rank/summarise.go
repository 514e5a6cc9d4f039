package rank

import (
	"fmt"
	"sort"
)

// RankedSentence is a sentence picked for a summary.
type RankedSentence struct {
	Index    int     `yaml:"index" json:"index"`
	Sentence string  `yaml:"sentence" json:"sentence"`
	Score    float64 `yaml:"score" json:"score"`
}

// Summary is the full outcome of SummariseRanked.
type Summary struct {
	Sentences  []RankedSentence
	Total      int
	Iterations int
	Converged  bool
}

// Summarise splits text into sentences and returns the n with the highest
// PageRank, in their original order.
func (r *Ranker) Summarise(text string, vocabulary []string, n int, p Params) ([]string, error) {
	summary, err := r.SummariseRanked(text, vocabulary, n, p)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(summary.Sentences))
	for i, s := range summary.Sentences {
		out[i] = s.Sentence
	}
	return out, nil
}

// SummariseRanked is Summarise with scores and positions attached. Equal
// scores favour the earlier sentence. Asking for more sentences than the text
// has returns all of them; a text without sentences returns none.
func (r *Ranker) SummariseRanked(text string, vocabulary []string, n int, p Params) (Summary, error) {
	if n < 0 {
		return Summary{}, fmt.Errorf("summary length %d: %w", n, ErrInvalidN)
	}
	if err := p.Validate(); err != nil {
		return Summary{}, err
	}

	sentences := r.nlp.Sentences(text)
	res, err := r.PageRank(sentences, vocabulary, p)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{
		Sentences:  SelectTop(sentences, res.Values(), n),
		Total:      len(sentences),
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}

	r.logger.Info("summarised text", "sentences", len(sentences), "selected", len(summary.Sentences), "iterations", res.Iterations)
	return summary, nil
}

// SelectTop picks the n highest scores (earlier index on ties) and returns
// the chosen sentences sorted by index. scores must be as long as sentences.
func SelectTop(sentences []string, scores []float64, n int) []RankedSentence {
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if n > len(order) {
		n = len(order)
	}
	if n < 0 {
		n = 0
	}
	picked := order[:n]
	sort.Ints(picked)

	out := make([]RankedSentence, len(picked))
	for i, idx := range picked {
		out[i] = RankedSentence{Index: idx, Sentence: sentences[idx], Score: scores[idx]}
	}
	return out
}
