// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic helpers for transforming string lists and other
//              slices. Every function returns a new slice and leaves its
//              input untouched.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2025-03-02 v0.2.0: Reduced to the helpers used by pipeline list steps

package slicex

import (
	"cmp"
	"slices"
)

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// FlatMap maps every element to a slice and concatenates the results
func FlatMap[T, R any](slice []T, mapper func(T) []R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, 0, len(slice))
	for _, item := range slice {
		result = append(result, mapper(item)...)
	}
	return result
}

// Unique removes duplicates, keeping the first occurrence of each element
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Reverse returns the elements in reverse order
func Reverse[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// Sort returns a sorted copy
func Sort[T cmp.Ordered](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := Clone(slice)
	slices.Sort(result)
	return result
}

// Take returns the first n elements. n below zero yields an empty slice.
func Take[T any](slice []T, n int) []T {
	if slice == nil {
		return nil
	}
	n = clamp(n, len(slice))
	return Clone(slice[:n])
}

// Drop returns everything after the first n elements
func Drop[T any](slice []T, n int) []T {
	if slice == nil {
		return nil
	}
	n = clamp(n, len(slice))
	return Clone(slice[n:])
}

// Clone returns a shallow copy. A nil slice stays nil.
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
