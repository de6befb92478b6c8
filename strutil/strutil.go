// Package strutil provides small string helpers for the radix tree: a
// handful of focused comparison/trimming helpers, not a general string
// toolkit.
package strutil

import "strings"

// CommonPrefixLen returns the number of leading bytes a and b share.
func CommonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}

// TrimWord trims surrounding whitespace from s. The radix tree calls this
// on every inserted or searched string so that an accidental blank
// boundary never becomes part of a stored label.
func TrimWord(s string) string {
	return strings.TrimSpace(s)
}
