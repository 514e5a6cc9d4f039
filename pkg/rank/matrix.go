package rank

import (
	"gonum.org/v1/gonum/mat"
)

// TransitionMatrix returns the column-stochastic matrix of the sentence graph.
// Entry (i, j) is the probability of moving from sentence j to sentence i.
// Sentence j links to sentence i when their Jaccard similarity is at least
// threshold; a sentence with a non-empty stem set therefore always links to
// itself. A column without links (an empty stem set under a positive
// threshold) is spread uniformly over all sentences.
//
// An empty sentence list yields an empty matrix.
func (r *Ranker) TransitionMatrix(sentences, vocabulary []string, threshold float64) (*mat.Dense, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	n := len(sentences)
	if n == 0 {
		return &mat.Dense{}, nil
	}

	sets := make([]StemSet, n)
	for i, s := range sentences {
		sets[i] = r.StemSet(s, vocabulary)
	}

	links := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if Jaccard(sets[i], sets[j]) >= threshold {
				links.Set(i, j, 1)
				links.Set(j, i, 1)
			}
		}
	}

	col := make([]float64, n)
	for j := 0; j < n; j++ {
		mat.Col(col, j, links)
		total := 0.0
		for _, v := range col {
			total += v
		}
		for i := 0; i < n; i++ {
			if total == 0 {
				links.Set(i, j, 1/float64(n))
				continue
			}
			links.Set(i, j, col[i]/total)
		}
	}

	r.logger.Debug("built transition matrix", "sentences", n, "threshold", threshold)
	return links, nil
}
