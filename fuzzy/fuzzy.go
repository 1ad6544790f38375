// Package fuzzy scores how closely two comic names resemble each other.
package fuzzy

import (
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Threshold is the score a name must strictly exceed to count as a fuzzy match.
const Threshold = 80

// Ratio scores a against b by Levenshtein distance in [0,100].
// Comparison is case-sensitive; two empty strings score 0.
func Ratio(a, b string) int {
	if a == "" && b == "" {
		return 0
	}
	return fuzzywuzzy.Ratio(a, b)
}

// PartialRatio is the best Ratio of the shorter string against the
// closest-aligned substring of the longer one. Inputs are lowercased;
// an empty input scores 0 and equal inputs score 100.
func PartialRatio(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	// Alignment picks the first of two equal-length inputs as the shorter.
	return max(fuzzywuzzy.PartialRatio(a, b), fuzzywuzzy.PartialRatio(b, a))
}
