package textproc

import (
	"strings"

	"github.com/reiver/go-porterstemmer"
)

// PorterStem stems a token with the classic Porter algorithm.
// The result is lowercased.
func PorterStem(token string) (stem string) {
	if token == "" {
		return token
	}
	lower := strings.ToLower(token)

	// The library indexes before the start of "eed" when nothing precedes it.
	// Porter leaves both forms as "eed" (m = 0).
	switch lower {
	case "eed", "eeds":
		return "eed"
	}

	defer func() {
		if recover() != nil {
			stem = lower
		}
	}()
	return porterstemmer.StemString(lower)
}
