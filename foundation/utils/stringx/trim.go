// File: trim.go
// Title: Predicate-Driven Trimming
// Description: Implements the trimming family (TrimStart, TrimEnd, Trim) over
//              byte predicates. A predicate is a single byte, a byte set or an
//              arbitrary classifier; nil selects ASCII whitespace.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-02 v0.3.0: Byte predicates replace the rune-based TrimSpace helpers

package stringx

// Predicate reports whether a byte should be stripped.
type Predicate func(c byte) bool

// Byte returns a predicate matching exactly c.
func Byte(c byte) Predicate {
	return func(b byte) bool { return b == c }
}

// AnyOf returns a predicate matching any byte of set.
// A set of length one degenerates to Byte. An empty set matches nothing.
func AnyOf(set string) Predicate {
	if len(set) == 1 {
		return Byte(set[0])
	}
	return func(b byte) bool {
		for i := 0; i < len(set); i++ {
			if set[i] == b {
				return true
			}
		}
		return false
	}
}

// Func adapts an arbitrary classifier to a Predicate.
func Func(f func(byte) bool) Predicate {
	return Predicate(f)
}

// Space is the default predicate: ASCII whitespace.
var Space Predicate = IsSpace

func orSpace(p Predicate) Predicate {
	if p == nil {
		return Space
	}
	return p
}

// TrimStart removes the longest prefix of s whose bytes all satisfy p.
// A nil predicate strips ASCII whitespace.
func TrimStart(s string, p Predicate) string {
	p = orSpace(p)
	i := 0
	for i < len(s) && p(s[i]) {
		i++
	}
	return s[i:]
}

// TrimEnd removes the longest suffix of s whose bytes all satisfy p.
// A nil predicate strips ASCII whitespace.
func TrimEnd(s string, p Predicate) string {
	p = orSpace(p)
	j := len(s)
	for j > 0 && p(s[j-1]) {
		j--
	}
	return s[:j]
}

// Trim is TrimEnd(TrimStart(s, p), p).
func Trim(s string, p Predicate) string {
	return TrimEnd(TrimStart(s, p), p)
}

// TrimSpace trims ASCII whitespace from both ends.
func TrimSpace(s string) string {
	return Trim(s, nil)
}

// TrimChars trims any byte of set from both ends.
func TrimChars(s, set string) string {
	return Trim(s, AnyOf(set))
}
