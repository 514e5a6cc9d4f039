package mapreduce

import (
	"fmt"
	"io"
	"strings"

	"github.com/COMP3220/2020S1/pkg/analytics"
)

// isValidKeyword checks if a stem should be included in results.
// Filters malformed tokens (unmatched delimiters, trailing special chars, unmatched quotes).
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	// Unmatched opening delimiters
	if strings.Contains(word, "(") && !strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") && !strings.Contains(word, "]") {
		return false
	}
	if strings.Contains(word, "{") && !strings.Contains(word, "}") {
		return false
	}

	if strings.Count(word, "\"")%2 != 0 {
		return false
	}
	return true
}

// Top returns the first n valid rows of a sorted table.
func Top(counts []analytics.StemCount, n int) []analytics.StemCount {
	if n < 0 {
		n = 0
	}
	top := make([]analytics.StemCount, 0, n)
	for _, c := range counts {
		if len(top) == n {
			break
		}
		if isValidKeyword(c.Stem) {
			top = append(top, c)
		}
	}
	return top
}

// TopKeywords returns the top N stems of a sorted table as formatted strings.
// Each string is formatted as "stem:count" (e.g., "patient:1153").
func TopKeywords(counts []analytics.StemCount, n int) []string {
	top := Top(counts, n)
	keywords := make([]string, len(top))
	for i, c := range top {
		keywords[i] = fmt.Sprintf("%s:%d", c.Stem, c.Count)
	}
	return keywords
}

// PrintTopKeywords writes the top N stems in a numbered list format.
func PrintTopKeywords(w io.Writer, counts []analytics.StemCount, n int) error {
	for i, c := range Top(counts, n) {
		if _, err := fmt.Fprintf(w, "%d. %s: %d\n", i+1, c.Stem, c.Count); err != nil {
			return err
		}
	}
	return nil
}
