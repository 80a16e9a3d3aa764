package stringsx

import "strings"

// Clip returns at most max runes of s.
// If max <= 0, an empty string is returned.
func Clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// Preview clips s to max runes and marks the cut with an ellipsis.
func Preview(s string, max int) string {
	c := Clip(s, max)
	if len(c) < len(s) {
		return c + "…"
	}
	return c
}

// IsEmpty reports whether s is empty after trimming spaces.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
