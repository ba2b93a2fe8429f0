// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the byte-oriented search, replace and extraction
//              helpers of the text transformation library together with the
//              ASCII classifiers they rely on. Every function is total: range
//              errors clamp or return a sentinel instead of panicking.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-02 v0.3.0: Byte-wise search/replace family, SubstrSafe, IsIdent

package stringx

import (
	"math"
	"strings"
)

// NotFound is returned by FindFirst and FindLast when the byte is absent.
const NotFound = -1

// IsSpace reports whether c is ASCII whitespace (space, \t, \n, \v, \f, \r).
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool { return 'a' <= c && c <= 'z' }

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool { return IsUpper(c) || IsLower(c) }

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// IsIdentByte reports whether c may appear in an identifier.
func IsIdentByte(c byte) bool { return IsAlnum(c) || c == '_' }

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only ASCII whitespace.
func IsBlank(s string) bool {
	return TrimStart(s, nil) == ""
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
// This is useful for providing default values in a chain.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if !IsEmpty(s) {
			return s
		}
	}
	return ""
}

// Contains reports whether needle occurs in s. An empty needle always matches.
func Contains(s, needle string) bool {
	return strings.Contains(s, needle)
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// Replace replaces every non-overlapping occurrence of from with to, scanning
// left to right. Inserted text is never rescanned. An empty from is a no-op.
func Replace(s, from, to string) string {
	if from == "" {
		return s
	}

	idx := strings.Index(s, from)
	if idx < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for idx >= 0 {
		b.WriteString(s[pos : pos+idx])
		b.WriteString(to)
		pos += idx + len(from)
		idx = strings.Index(s[pos:], from)
	}
	b.WriteString(s[pos:])
	return b.String()
}

// Remove deletes every occurrence of target. It equals Replace(s, target, "").
func Remove(s, target string) string {
	return Replace(s, target, "")
}

// SubstrSafe returns s[start:start+length] clamped to the bounds of s.
// A start beyond the end, a negative start or a non-positive length yield "".
func SubstrSafe(s string, start, length int) string {
	if start < 0 || start >= len(s) || length <= 0 {
		return ""
	}
	if length > len(s)-start {
		return s[start:]
	}
	return s[start : start+length]
}

// FindFirst returns the index of the first c in s, or NotFound.
func FindFirst(s string, c byte) int {
	return strings.IndexByte(s, c)
}

// FindLast returns the index of the last c in s, or NotFound.
func FindLast(s string, c byte) int {
	return strings.LastIndexByte(s, c)
}

// Repeat concatenates s count times. A non-positive count, or one whose
// result length would overflow int, yields "".
func Repeat(s string, count int) string {
	if count <= 0 || s == "" || count > math.MaxInt/len(s) {
		return ""
	}
	return strings.Repeat(s, count)
}

// IsIdent reports whether s is a non-empty identifier: a letter or underscore
// followed by letters, digits or underscores.
func IsIdent(s string) bool {
	if s == "" || IsDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsIdentByte(s[i]) {
			return false
		}
	}
	return true
}
