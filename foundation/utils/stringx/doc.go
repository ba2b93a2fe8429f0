// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the text transformation library used by
//              easyfmt: byte-oriented, ASCII-only string operations that never
//              fail on boundary input.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-03-02 v0.3.0: Reworked around byte predicates and total functions

// Package stringx provides composable, pure string operations.
//
// Overview
//
// Every function takes its input by value and returns a new value; nothing is
// mutated and no function keeps state, so all of them are safe for concurrent
// use. Case handling is ASCII byte-wise only: bytes outside 'A'-'Z' and
// 'a'-'z' pass through untouched, including UTF-8 continuation bytes.
//
// The package is organized into functional groups:
//
//   - Trimming: TrimStart, TrimEnd, Trim over a Predicate (trim.go)
//   - Splitting: Split, SplitByte, Join (split.go)
//   - Case: ToUpper, ToLower, Capitalize and naming conventions (case.go)
//   - Search and edit: Contains, StartsWith, EndsWith, Replace, Remove,
//     SubstrSafe, FindFirst, FindLast, Repeat, IsIdent (stringx.go)
//   - Conversion: ToString, ToStringSpec (convert.go)
//
// Predicates
//
// The trimming family accepts a Predicate. Build one from a single byte, a
// byte set, or any classifier; nil means ASCII whitespace:
//
//	stringx.Trim("  hi  ", nil)                  // "hi"
//	stringx.Trim("--hi--", stringx.Byte('-'))    // "hi"
//	stringx.Trim("<[hi]>", stringx.AnyOf("<>[]")) // "hi"
//	stringx.Trim("42abc7", stringx.IsDigit)       // "abc"
//
// Composition
//
// Functions are meant to be chained by the caller:
//
//	parts := stringx.Split(stringx.TrimSpace(" a, b ,c "), ",")
//	for i, p := range parts {
//	    parts[i] = stringx.ToUpper(stringx.TrimSpace(p))
//	}
//	stringx.Join(parts, "|") // "A|B|C"
//
// Error Handling
//
// No function in this package returns an error or panics on boundary input:
//   - SubstrSafe clamps to the bounds of its input
//   - FindFirst and FindLast return NotFound when nothing matches
//   - Replace and Remove treat an empty needle as a no-op
//   - Split with an empty delimiter returns the input as the only piece
package stringx
