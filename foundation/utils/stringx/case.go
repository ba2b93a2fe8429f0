// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements byte-wise ASCII case conversion (ToUpper, ToLower,
//              Capitalize) and naming convention conversions (snake_case,
//              kebab-case, camelCase, PascalCase, Title Case) built on top.
//              Bytes outside ASCII letters pass through unchanged.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-03-02 v0.3.0: ASCII byte-wise conversion, acronym-aware word splitting

package stringx

// ToUpper converts ASCII lowercase letters to uppercase.
func ToUpper(s string) string {
	return mapBytes(s, upperByte)
}

// ToLower converts ASCII uppercase letters to lowercase.
func ToLower(s string) string {
	return mapBytes(s, lowerByte)
}

// Capitalize uppercases the first byte of s and leaves the rest unchanged.
func Capitalize(s string) string {
	if s == "" || !IsLower(s[0]) {
		return s
	}
	b := []byte(s)
	b[0] = upperByte(b[0])
	return string(b)
}

func upperByte(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

func lowerByte(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// mapBytes applies f to every byte, allocating only when something changes.
func mapBytes(s string, f func(byte) byte) string {
	for i := 0; i < len(s); i++ {
		if f(s[i]) == s[i] {
			continue
		}
		b := []byte(s)
		for j := i; j < len(b); j++ {
			b[j] = f(b[j])
		}
		return string(b)
	}
	return s
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name", "XMLHttpRequest" -> "xml_http_request"
func ToSnakeCase(s string) string {
	return joinWords(s, "_", ToLower)
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return joinWords(s, "-", ToLower)
}

// ToCamelCase converts a string to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	parts := words(s)
	for i, w := range parts {
		if i == 0 {
			parts[i] = ToLower(w)
			continue
		}
		parts[i] = Capitalize(ToLower(w))
	}
	return Join(parts, "")
}

// ToPascalCase converts a string to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	return joinWords(s, "", func(w string) string {
		return Capitalize(ToLower(w))
	})
}

// ToTitleCase capitalizes every space-separated word and lowercases the rest.
// Spacing is preserved. Example: "hello  WORLD" -> "Hello  World"
func ToTitleCase(s string) string {
	parts := SplitByte(s, ' ')
	for i, w := range parts {
		parts[i] = Capitalize(ToLower(w))
	}
	return Join(parts, " ")
}

func joinWords(s, sep string, f func(string) string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = f(w)
	}
	return Join(parts, sep)
}

// words splits s into naming-convention words. Any byte that is not an ASCII
// letter or digit (and not part of a multi-byte sequence) separates words.
// Case boundaries split too: "myVar" -> [my Var], "XMLHttp" -> [XML Http].
func words(s string) []string {
	isWordByte := func(c byte) bool { return IsAlnum(c) || c >= 0x80 }

	var out []string
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isWordByte(c) {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := s[i-1]
		if IsUpper(c) && (IsLower(prev) || IsDigit(prev)) ||
			IsUpper(c) && IsUpper(prev) && i+1 < len(s) && IsLower(s[i+1]) {
			out = append(out, s[start:i])
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
