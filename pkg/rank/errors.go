package rank

import "errors"

var (
	ErrInvalidN          = errors.New("rank: number of sentences must not be negative")
	ErrInvalidThreshold  = errors.New("rank: threshold must be within [0, 1]")
	ErrInvalidDamping    = errors.New("rank: damping factor must be within [0, 1]")
	ErrInvalidEpsilon    = errors.New("rank: epsilon must be positive")
	ErrInvalidIterations = errors.New("rank: max iterations must be at least 1")
)
