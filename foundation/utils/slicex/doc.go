// Package slicex provides generic slice helpers.
//
// Package: slicex
// Title: Extended Slice Utilities for Go
// Description: Functional helpers (Filter, Map, FlatMap) and list reshaping
//              (Unique, Reverse, Sort, Take, Drop) used by the pipeline list
//              steps. All functions return fresh slices; nil input gives nil.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2025-03-02 v0.2.0: Trimmed to the list helpers
//
// Usage:
//
//	words := slicex.FlatMap(lines, strings.Fields)
//	idents := slicex.Filter(words, stringx.IsIdent)
//	first := slicex.Take(slicex.Unique(idents), 3)
package slicex
