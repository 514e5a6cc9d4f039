package rank

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of a power iteration.
type Result struct {
	// Scores is an n×1 column; nil when there were no sentences.
	Scores *mat.VecDense
	// Iterations is the number of updates performed.
	Iterations int
	// Converged is false when MaxIterations stopped the loop first.
	Converged bool
	// Delta is the L1 change of the last update.
	Delta float64
}

// Values copies the scores into a slice.
func (res Result) Values() []float64 {
	if res.Scores == nil {
		return []float64{}
	}
	out := make([]float64, res.Scores.Len())
	for i := range out {
		out[i] = res.Scores.AtVec(i)
	}
	return out
}

// PageRank builds the transition matrix of sentences and runs PowerIterate on it.
func (r *Ranker) PageRank(sentences, vocabulary []string, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if len(sentences) == 0 {
		return Result{Converged: true}, nil
	}
	m, err := r.TransitionMatrix(sentences, vocabulary, p.Threshold)
	if err != nil {
		return Result{}, err
	}
	return r.PowerIterate(m, p)
}

// PowerIterate computes the damped PageRank of the column-stochastic matrix m:
//
//	r₀ = 1/n,  r_{k+1} = d·M·r_k + (1-d)/n
//
// It stops once the L1 distance between successive vectors is below
// p.Epsilon. Hitting p.MaxIterations is not an error; the last estimate is
// returned with Converged set to false.
func (r *Ranker) PowerIterate(m mat.Matrix, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	n, _ := m.Dims()
	if n == 0 {
		return Result{Converged: true}, nil
	}

	jump := (1 - p.Damping) / float64(n)
	rank := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		rank.SetVec(i, 1/float64(n))
	}
	next := mat.NewVecDense(n, nil)

	res := Result{Delta: math.Inf(1)}
	for res.Iterations < p.MaxIterations {
		next.MulVec(m, rank)
		delta := 0.0
		for i := 0; i < n; i++ {
			v := p.Damping*next.AtVec(i) + jump
			delta += math.Abs(v - rank.AtVec(i))
			next.SetVec(i, v)
		}
		rank, next = next, rank
		res.Iterations++
		res.Delta = delta

		if delta < p.Epsilon {
			res.Converged = true
			break
		}
	}
	res.Scores = rank

	if !res.Converged {
		r.logger.Warn("pagerank did not converge", "iterations", res.Iterations, "delta", res.Delta, "epsilon", p.Epsilon)
	} else {
		r.logger.Debug("pagerank converged", "iterations", res.Iterations, "delta", res.Delta)
	}
	return res, nil
}
