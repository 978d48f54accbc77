package utils

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// ComputeDistance computes the Levenshtein distance between two strings.
// Insertions, deletions and substitutions each cost 1. It is case-sensitive
// and compares runes, not bytes.
func ComputeDistance(s1, s2 string) int {
	return levenshtein.ComputeDistance(s1, s2)
}

// Similarity returns 1 - distance/maxLen, where maxLen is the rune length of
// the longer string. Two empty strings are identical and score 1.0.
func Similarity(s1, s2 string) float64 {
	maxLen := utf8.RuneCountInString(s1)
	if n := utf8.RuneCountInString(s2); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1 - float64(ComputeDistance(s1, s2))/float64(maxLen)
}
