// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     render
// Description: Display options and the format-spec mini-syntax
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package render

// NamespaceForm selects whether qualified names are printed in full or
// reduced to their last segment.
type NamespaceForm uint8

const (
	NamespaceFull NamespaceForm = iota
	NamespaceShort
)

// String returns the spec marker name of the form
func (f NamespaceForm) String() string {
	switch f {
	case NamespaceShort:
		return "short"
	default:
		return "full"
	}
}

// CaseForm selects the case folding applied after namespace shortening.
type CaseForm uint8

const (
	CaseDefault CaseForm = iota
	CaseLower
	CaseUpper
)

// String returns the name of the case form
func (c CaseForm) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	default:
		return "default"
	}
}

// Options holds the two display settings. They are independent; all six
// combinations are valid. The zero value is Full + Default.
type Options struct {
	Namespace NamespaceForm
	Case      CaseForm
}

// Spec returns the shortest format spec that parses back to o.
func (o Options) Spec() string {
	spec := ""
	if o.Namespace == NamespaceShort {
		spec += "s"
	}
	switch o.Case {
	case CaseLower:
		spec += "L"
	case CaseUpper:
		spec += "U"
	}
	return spec
}

// ParseOptions reads an optional namespace marker ('s' short, 'f' full)
// followed by an optional case marker ('L' lower, 'U' upper). The unconsumed
// remainder is returned untouched for the caller to handle.
func ParseOptions(spec string) (Options, string) {
	var opts Options
	i := 0

	if i < len(spec) {
		switch spec[i] {
		case 's':
			opts.Namespace = NamespaceShort
			i++
		case 'f':
			opts.Namespace = NamespaceFull
			i++
		}
	}

	if i < len(spec) {
		switch spec[i] {
		case 'L':
			opts.Case = CaseLower
			i++
		case 'U':
			opts.Case = CaseUpper
			i++
		}
	}

	return opts, spec[i:]
}
