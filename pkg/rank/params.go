package rank

import (
	"fmt"
	"math"
)

const (
	DefaultThreshold     = 0.5
	DefaultDamping       = 0.85
	DefaultEpsilon       = 0.01
	DefaultMaxIterations = 100
	DefaultSentences     = 3
)

// Params controls graph construction and the power iteration.
type Params struct {
	// Threshold is the minimum Jaccard similarity for two sentences to link.
	Threshold float64
	// Damping is the probability of following a link instead of jumping.
	Damping float64
	// Epsilon stops the iteration once the L1 change drops below it.
	Epsilon float64
	// MaxIterations caps the iteration when Epsilon is never reached.
	MaxIterations int
}

// DefaultParams returns threshold 0.5, damping 0.85, epsilon 0.01 and a cap
// of 100 iterations.
func DefaultParams() Params {
	return Params{
		Threshold:     DefaultThreshold,
		Damping:       DefaultDamping,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate reports the first out-of-range field.
func (p Params) Validate() error {
	if err := validateThreshold(p.Threshold); err != nil {
		return err
	}
	if math.IsNaN(p.Damping) || p.Damping < 0 || p.Damping > 1 {
		return fmt.Errorf("damping %v: %w", p.Damping, ErrInvalidDamping)
	}
	if math.IsNaN(p.Epsilon) || p.Epsilon <= 0 {
		return fmt.Errorf("epsilon %v: %w", p.Epsilon, ErrInvalidEpsilon)
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("max iterations %d: %w", p.MaxIterations, ErrInvalidIterations)
	}
	return nil
}

func validateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v: %w", threshold, ErrInvalidThreshold)
	}
	return nil
}
