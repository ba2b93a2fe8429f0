// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     render
// Description: Modules: helper functions used while building a rendering
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package render

import (
	"strconv"

	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// Module converts a field value to text during rendering.
type Module[T any] func(T) string

// Integer is the constraint for enum-like values accepted by EnumModule.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// EnumModule returns a Module that looks values up in table and falls back
// to the decimal numeric value for unmapped ones. The table is copied.
func EnumModule[K Integer](table map[K]string) Module[K] {
	names := make(map[K]string, len(table))
	for k, v := range table {
		names[k] = v
	}

	return func(v K) string {
		if name, ok := names[v]; ok {
			return name
		}
		if v < 0 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatUint(uint64(v), 10)
	}
}

// String modules over the stringx helpers.
var (
	TrimStart  Module[string] = func(s string) string { return stringx.TrimStart(s, nil) }
	TrimEnd    Module[string] = func(s string) string { return stringx.TrimEnd(s, nil) }
	Trim       Module[string] = stringx.TrimSpace
	Upper      Module[string] = stringx.ToUpper
	Lower      Module[string] = stringx.ToLower
	Capitalize Module[string] = stringx.Capitalize
)

// Then returns a module applying m and then each of next to the result.
func (m Module[T]) Then(next ...Module[string]) Module[T] {
	return func(v T) string {
		s := m(v)
		for _, n := range next {
			s = n(s)
		}
		return s
	}
}
