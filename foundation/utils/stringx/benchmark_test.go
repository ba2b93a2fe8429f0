// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the linear-scan helpers to catch accidental
//              quadratic behaviour or extra allocations.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2025-03-02 v0.3.0: Benchmarks for Trim, Split/Join, Replace, case helpers

package stringx

import (
	"testing"
)

const benchText = "   my::detail::ns::Widget(42), other::Gadget<int>, plain_value   "

func BenchmarkTrim(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Trim(benchText, nil)
	}
}

func BenchmarkTrimAnyOf(b *testing.B) {
	pred := AnyOf(" ,<>")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Trim(benchText, pred)
	}
}

func BenchmarkSplitJoin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Join(Split(benchText, "::"), "::")
	}
}

func BenchmarkReplace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Replace(benchText, "::", ".")
	}
}

func BenchmarkToUpper(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ToUpper(benchText)
	}
}

func BenchmarkToUpperNoChange(b *testing.B) {
	upper := ToUpper(benchText)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToUpper(upper)
	}
}

func BenchmarkToSnakeCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ToSnakeCase("XMLHttpRequestHandlerFactory")
	}
}
