// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Table-driven tests for trimming, splitting, search, replace and
//              extraction helpers, including the algebraic properties the
//              rendering layer relies on (idempotent trim, split/join round
//              trip, replace fixed point).
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-03-02 v0.3.0: Tests for predicate trimming, Split/Join, Replace family

package stringx

import (
	"math"
	"reflect"
	"testing"
)

func TestTrimFamily(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		pred      Predicate
		wantStart string
		wantEnd   string
		wantBoth  string
	}{
		{"empty", "", nil, "", "", ""},
		{"default whitespace", " \t\nhi there\r\v\f ", nil, "hi there\r\v\f ", " \t\nhi there", "hi there"},
		{"only whitespace", "   ", nil, "", "", ""},
		{"nothing to strip", "abc", nil, "abc", "abc", "abc"},
		{"single byte", "--a-b--", Byte('-'), "a-b--", "--a-b", "a-b"},
		{"byte set", "<[x]>", AnyOf("<>[]"), "x]>", "<[x", "x"},
		{"set of one", "xxaxx", AnyOf("x"), "axx", "xxa", "a"},
		{"empty set", "  a  ", AnyOf(""), "  a  ", "  a  ", "  a  "},
		{"classifier", "42abc7", Func(IsDigit), "abc7", "42abc", "abc"},
		{"all match", "1234", Func(IsDigit), "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimStart(tt.input, tt.pred); got != tt.wantStart {
				t.Errorf("TrimStart(%q) = %q; want %q", tt.input, got, tt.wantStart)
			}
			if got := TrimEnd(tt.input, tt.pred); got != tt.wantEnd {
				t.Errorf("TrimEnd(%q) = %q; want %q", tt.input, got, tt.wantEnd)
			}
			got := Trim(tt.input, tt.pred)
			if got != tt.wantBoth {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, got, tt.wantBoth)
			}
			if again := Trim(got, tt.pred); again != got {
				t.Errorf("Trim is not idempotent: %q -> %q", got, again)
			}
			if again := TrimStart(tt.wantStart, tt.pred); again != tt.wantStart {
				t.Errorf("TrimStart is not idempotent: %q -> %q", tt.wantStart, again)
			}
			if again := TrimEnd(tt.wantEnd, tt.pred); again != tt.wantEnd {
				t.Errorf("TrimEnd is not idempotent: %q -> %q", tt.wantEnd, again)
			}
		})
	}
}

func TestTrimHelpers(t *testing.T) {
	if got := TrimSpace("  x  "); got != "x" {
		t.Errorf("TrimSpace = %q; want %q", got, "x")
	}
	if got := TrimChars("..x,,", ".,"); got != "x" {
		t.Errorf("TrimChars = %q; want %q", got, "x")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		delim    string
		expected []string
	}{
		{"empty input", "", ",", []string{""}},
		{"no delimiter", "abc", ",", []string{"abc"}},
		{"empty pieces", "a,,b", ",", []string{"a", "", "b"}},
		{"leading and trailing", ",a,", ",", []string{"", "a", ""}},
		{"multi-byte", "a::b::c", "::", []string{"a", "b", "c"}},
		{"multi-byte trailing", "a::", "::", []string{"a", ""}},
		{"non-overlapping", "aaaa", "aa", []string{"", "", ""}},
		{"odd overlap", "aaa", "aa", []string{"", "a"}},
		{"empty delimiter", "abc", "", []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, tt.delim)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q, %q) = %q; want %q", tt.input, tt.delim, got, tt.expected)
			}
			if tt.delim != "" {
				if joined := Join(got, tt.delim); joined != tt.input {
					t.Errorf("Join(Split(%q)) = %q", tt.input, joined)
				}
			}
		})
	}
}

func TestSplitByte(t *testing.T) {
	got := SplitByte("a,,b", ',')
	want := []string{"a", "", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitByte = %q; want %q", got, want)
	}
	if got := SplitByte("", ','); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("SplitByte(\"\") = %q; want [\"\"]", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		pieces   []string
		sep      string
		expected string
	}{
		{"nil", nil, ",", ""},
		{"empty", []string{}, ",", ""},
		{"single", []string{"a"}, ",", "a"},
		{"several", []string{"a", "b", "c"}, ", ", "a, b, c"},
		{"empty pieces", []string{"", ""}, "-", "-"},
		{"empty separator", []string{"a", "b"}, "", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.pieces, tt.sep); got != tt.expected {
				t.Errorf("Join(%q, %q) = %q; want %q", tt.pieces, tt.sep, got, tt.expected)
			}
		})
	}
}

func TestContainsStartsEnds(t *testing.T) {
	tests := []struct {
		s, pattern                  string
		contains, starts, ends bool
	}{
		{"hello", "", true, true, true},
		{"", "", true, true, true},
		{"", "a", false, false, false},
		{"hello", "he", true, true, false},
		{"hello", "lo", true, false, true},
		{"hello", "ll", true, false, false},
		{"hi", "hi there", false, false, false},
		{"hello", "hello", true, true, true},
	}

	for _, tt := range tests {
		if got := Contains(tt.s, tt.pattern); got != tt.contains {
			t.Errorf("Contains(%q, %q) = %v; want %v", tt.s, tt.pattern, got, tt.contains)
		}
		if got := StartsWith(tt.s, tt.pattern); got != tt.starts {
			t.Errorf("StartsWith(%q, %q) = %v; want %v", tt.s, tt.pattern, got, tt.starts)
		}
		if got := EndsWith(tt.s, tt.pattern); got != tt.ends {
			t.Errorf("EndsWith(%q, %q) = %v; want %v", tt.s, tt.pattern, got, tt.ends)
		}
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		from     string
		to       string
		expected string
	}{
		{"simple", "a-b-c", "-", "+", "a+b+c"},
		{"no match", "abc", "x", "y", "abc"},
		{"empty from is no-op", "abc", "", "x", "abc"},
		{"empty input", "", "a", "b", ""},
		{"to contains from", "aa", "a", "aa", "aaaa"},
		{"non-overlapping", "aaa", "aa", "b", "ba"},
		{"growing", "x.y", ".", "::", "x::y"},
		{"remove", "a--b", "-", "", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replace(tt.s, tt.from, tt.to); got != tt.expected {
				t.Errorf("Replace(%q, %q, %q) = %q; want %q", tt.s, tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestReplaceFixedPoint(t *testing.T) {
	inputs := []string{"", "a.b.c", "...", "no dots"}
	for _, s := range inputs {
		once := Replace(s, ".", "_")
		if twice := Replace(once, ".", "_"); twice != once {
			t.Errorf("Replace not a fixed point for %q: %q vs %q", s, once, twice)
		}
	}
}

func TestRemove(t *testing.T) {
	cases := [][2]string{{"a::b::c", "::"}, {"abc", ""}, {"", "x"}, {"xxx", "x"}}
	for _, c := range cases {
		if got, want := Remove(c[0], c[1]), Replace(c[0], c[1], ""); got != want {
			t.Errorf("Remove(%q, %q) = %q; want %q", c[0], c[1], got, want)
		}
	}
}

func TestSubstrSafe(t *testing.T) {
	tests := []struct {
		name          string
		s             string
		start, length int
		expected      string
	}{
		{"inside", "hello", 1, 3, "ell"},
		{"clamped length", "hello", 3, 100, "lo"},
		{"start at end", "hello", 5, 1, ""},
		{"start beyond end", "hello", 50, 1, ""},
		{"zero length", "hello", 0, 0, ""},
		{"negative start", "hello", -1, 2, ""},
		{"negative length", "hello", 1, -2, ""},
		{"empty input", "", 0, 3, ""},
		{"whole", "hello", 0, 5, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstrSafe(tt.s, tt.start, tt.length); got != tt.expected {
				t.Errorf("SubstrSafe(%q, %d, %d) = %q; want %q", tt.s, tt.start, tt.length, got, tt.expected)
			}
		})
	}
}

func TestFindFirstLast(t *testing.T) {
	if got := FindFirst("a.b.c", '.'); got != 1 {
		t.Errorf("FindFirst = %d; want 1", got)
	}
	if got := FindLast("a.b.c", '.'); got != 3 {
		t.Errorf("FindLast = %d; want 3", got)
	}
	if got := FindFirst("abc", '.'); got != NotFound {
		t.Errorf("FindFirst = %d; want NotFound", got)
	}
	if got := FindLast("", '.'); got != NotFound {
		t.Errorf("FindLast = %d; want NotFound", got)
	}
}

func TestRepeat(t *testing.T) {
	tests := []struct {
		s        string
		count    int
		expected string
	}{
		{"ab", 3, "ababab"},
		{"ab", 0, ""},
		{"ab", -2, ""},
		{"", 5, ""},
		{"x", 1, "x"},
		{"ab", math.MaxInt/2 + 1, ""},
		{"abc", math.MaxInt, ""},
	}
	for _, tt := range tests {
		if got := Repeat(tt.s, tt.count); got != tt.expected {
			t.Errorf("Repeat(%q, %d) = %q; want %q", tt.s, tt.count, got, tt.expected)
		}
	}
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"9x", false},
		{"_x9", true},
		{"x", true},
		{"_", true},
		{"a-b", false},
		{"a b", false},
		{"Widget", true},
		{"né", false},
	}
	for _, tt := range tests {
		if got := IsIdent(tt.input); got != tt.expected {
			t.Errorf("IsIdent(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "", "b", "c"); got != "b" {
		t.Errorf("FirstNonEmpty = %q; want %q", got, "b")
	}
	if got := FirstNonEmpty(); got != "" {
		t.Errorf("FirstNonEmpty() = %q; want empty", got)
	}
}

type celsius float64

func (c celsius) String() string { return ToString(float64(c)) + "C" }

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"int", ToString(42), "42"},
		{"negative int8", ToString(int8(-3)), "-3"},
		{"uint64", ToString(uint64(7)), "7"},
		{"float", ToString(1.5), "1.5"},
		{"bool", ToString(true), "true"},
		{"string", ToString("x"), "x"},
		{"stringer", ToString(celsius(21.5)), "21.5C"},
		{"struct", ToString(struct{ A int }{1}), "{1}"},
		{"spec", ToStringSpec(3.14159, ".2f"), "3.14"},
		{"spec hex", ToStringSpec(255, "x"), "ff"},
		{"empty spec", ToStringSpec(9, ""), "9"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: got %q; want %q", tt.name, tt.got, tt.expected)
		}
	}
}
