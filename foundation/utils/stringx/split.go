// File: split.go
// Title: Split and Join
// Description: Eager, left-to-right splitting on a byte or byte sequence and
//              the inverse join. Empty pieces are preserved so that
//              Join(Split(s, d), d) == s.
// Author: msto63
// Version: v0.3.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.3.0: Replaces SplitLines with delimiter-based Split/Join

package stringx

import (
	"strings"
)

// SplitByte splits s on every occurrence of c.
// The result always has at least one element; SplitByte("", c) is [""].
func SplitByte(s string, c byte) []string {
	parts := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// Split splits s on every non-overlapping occurrence of delim, scanning left
// to right. The delimiter is consumed. An empty delimiter yields []string{s}.
func Split(s, delim string) []string {
	switch len(delim) {
	case 0:
		return []string{s}
	case 1:
		return SplitByte(s, delim[0])
	}

	parts := make([]string, 0, 4)
	start := 0
	for {
		idx := strings.Index(s[start:], delim)
		if idx < 0 {
			break
		}
		parts = append(parts, s[start:start+idx])
		start += idx + len(delim)
	}
	return append(parts, s[start:])
}

// Join concatenates pieces with sep between consecutive elements.
func Join(pieces []string, sep string) string {
	if len(pieces) == 0 {
		return ""
	}

	n := len(sep) * (len(pieces) - 1)
	for _, p := range pieces {
		n += len(p)
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(pieces[0])
	for _, p := range pieces[1:] {
		b.WriteString(sep)
		b.WriteString(p)
	}
	return b.String()
}
