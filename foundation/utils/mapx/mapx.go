// File: mapx.go
// Title: Core Map Utilities
// Description: Generic map helpers shared by log fields and configuration
//              tables. Helpers keep the named map type of their argument.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2025-03-02 v0.2.0: Generic over named map types, reduced helper set

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns a slice of all keys from the map in unspecified order
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys in ascending order. The result is never nil.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a shallow copy. A nil map stays nil.
func Clone[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}

	result := make(M, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Merge combines maps into a new one; later maps win on duplicate keys
func Merge[M ~map[K]V, K comparable, V any](maps ...M) M {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	result := make(M, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}
