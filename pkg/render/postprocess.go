// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     render
// Description: Namespace shortening and case folding of rendered text
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package render

import (
	"strings"

	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// NamespaceSeparator separates the segments of a qualified name.
const NamespaceSeparator = "::"

// ShortenNamespace drops everything up to and including the last "::".
// The identifier run that follows is the short name; whatever comes after
// it (a closing ")" or ">" from the enclosing text) is kept as a suffix.
// Text without a separator is returned unchanged.
func ShortenNamespace(s string) string {
	pos := strings.LastIndex(s, NamespaceSeparator)
	if pos == stringx.NotFound {
		return s
	}

	after := s[pos+len(NamespaceSeparator):]
	i := 0
	for i < len(after) && stringx.IsIdentByte(after[i]) {
		i++
	}
	name, suffix := after[:i], after[i:]

	return name + suffix
}

// FoldCase applies the ASCII case conversion selected by form.
func FoldCase(s string, form CaseForm) string {
	switch form {
	case CaseLower:
		return stringx.ToLower(s)
	case CaseUpper:
		return stringx.ToUpper(s)
	default:
		return s
	}
}

// PostProcess shortens namespaces (Short only), then folds case on the
// shortened text.
func PostProcess(rendered string, opts Options) string {
	if opts.Namespace == NamespaceShort {
		rendered = ShortenNamespace(rendered)
	}
	return FoldCase(rendered, opts.Case)
}
