package rank

import (
	"sort"
	"strings"
)

// StemSet is a set of lowercased stems.
type StemSet map[string]struct{}

// Has reports whether stem is in the set.
func (s StemSet) Has(stem string) bool {
	_, ok := s[stem]
	return ok
}

// Sorted returns the members in lexical order.
func (s StemSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for stem := range s {
		out = append(out, stem)
	}
	sort.Strings(out)
	return out
}

// StemSet returns the vocabulary stems that occur among the stems of
// sentence. Both sides are compared lowercased; no stopwords are removed.
func (r *Ranker) StemSet(sentence string, vocabulary []string) StemSet {
	present := make(map[string]struct{})
	for _, stem := range r.nlp.Stems(sentence) {
		present[stem] = struct{}{}
	}

	set := make(StemSet)
	for _, v := range vocabulary {
		v = strings.ToLower(v)
		if _, ok := present[v]; ok {
			set[v] = struct{}{}
		}
	}
	return set
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b StemSet) float64 {
	if len(a)+len(b) == 0 {
		return 0
	}
	inter := 0
	for stem := range a {
		if b.Has(stem) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// Similarity is the Jaccard similarity of the stem sets of two sentences.
func (r *Ranker) Similarity(sentence1, sentence2 string, vocabulary []string) float64 {
	return Jaccard(r.StemSet(sentence1, vocabulary), r.StemSet(sentence2, vocabulary))
}
