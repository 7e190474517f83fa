// Package strutil holds small ASCII-only string helpers used by the lexer
// and the case-folded section index.
package strutil

import "strings"

// ToLowerFast lowers the ASCII letters A-Z in s. All other bytes, including
// non-ASCII UTF-8 sequences, pass through unchanged.
func ToLowerFast(s string) string {
	if IsAllLowerFast(s) {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// ToUpperFast raises the ASCII letters a-z in s.
func ToUpperFast(s string) string {
	if IsAllUpperFast(s) {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// IsAllLowerFast reports whether s has no ASCII upper-case letters.
func IsAllLowerFast(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return false
		}
	}
	return true
}

// IsAllUpperFast reports whether s has no ASCII lower-case letters.
func IsAllUpperFast(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'a' <= c && c <= 'z' {
			return false
		}
	}
	return true
}

// EqualFoldFast compares a and b ignoring ASCII case only.
func EqualFoldFast(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// CountByte returns the number of occurrences of c in s.
func CountByte(s string, c byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}

// SplitFast splits s around every sep. It always returns CountByte(s, sep)+1
// elements, so an empty input yields a single empty string.
func SplitFast(s string, sep byte) []string {
	out := make([]string, 0, CountByte(s, sep)+1)
	for {
		i := strings.IndexByte(s, sep)
		if i < 0 {
			return append(out, s)
		}
		out = append(out, s[:i])
		s = s[i+1:]
	}
}

// SplitFastN is SplitFast limited to at most n parts; the last part holds
// the unsplit remainder. n <= 0 means no limit.
func SplitFastN(s string, sep byte, n int) []string {
	if n <= 0 {
		return SplitFast(s, sep)
	}
	out := make([]string, 0, min(n, CountByte(s, sep)+1))
	for len(out) < n-1 {
		i := strings.IndexByte(s, sep)
		if i < 0 {
			break
		}
		out = append(out, s[:i])
		s = s[i+1:]
	}
	return append(out, s)
}
