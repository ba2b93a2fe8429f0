// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     render
// Description: Renderable values and the generic fmt decorator
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// Renderable is implemented by types that supply their default textual
// representation. Display options are applied on top of it.
type Renderable interface {
	Render() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// Render calls f.
func (f RenderFunc) Render() string { return f() }

type stringerRenderable struct{ s fmt.Stringer }

func (r stringerRenderable) Render() string { return r.s.String() }

// FromStringer uses the String method of s as its rendering.
func FromStringer(s fmt.Stringer) Renderable {
	return stringerRenderable{s: s}
}

// Text renders a fixed string.
type Text string

// Render returns t.
func (t Text) Render() string { return string(t) }

// Format renders v and post-processes it with the options parsed from spec.
// A spec with anything left over after the option markers is rejected with
// INVALID_FORMAT.
func Format(v Renderable, spec string) (string, error) {
	opts, rest := ParseOptions(spec)
	if rest != "" {
		return "", mdwerror.Newf("invalid format spec %q: unexpected %q", spec, rest).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("render.Format").
			WithDetail("spec", spec).
			WithDetail("remainder", rest)
	}
	return PostProcess(v.Render(), opts), nil
}

// MustFormat is like Format but panics on an invalid spec. Intended for
// specs that are literals in the calling code.
func MustFormat(v Renderable, spec string) string {
	s, err := Format(v, spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Decorated wraps a Renderable with fixed display options so it can be
// passed straight to the fmt package.
type Decorated[T Renderable] struct {
	Value   T
	Options Options
}

// Decorate binds opts to v.
func Decorate[T Renderable](v T, opts Options) Decorated[T] {
	return Decorated[T]{Value: v, Options: opts}
}

// DecorateSpec binds the options parsed from spec to v. Unknown trailing
// markers are reported as for Format.
func DecorateSpec[T Renderable](v T, spec string) (Decorated[T], error) {
	opts, rest := ParseOptions(spec)
	if rest != "" {
		return Decorated[T]{}, mdwerror.Newf("invalid format spec %q: unexpected %q", spec, rest).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("render.DecorateSpec").
			WithDetail("spec", spec).
			WithDetail("remainder", rest)
	}
	return Decorate(v, opts), nil
}

// String returns the post-processed rendering.
func (d Decorated[T]) String() string {
	return PostProcess(d.Value.Render(), d.Options)
}

// Format implements fmt.Formatter. %s, %v and %q honour width, precision
// and the '-' flag like they do for strings. Precision truncates before
// quoting.
func (d Decorated[T]) Format(f fmt.State, verb rune) {
	text := d.String()

	switch verb {
	case 's', 'v', 'q':
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(render.Decorated=%s)", verb, text)
		return
	}

	if prec, ok := f.Precision(); ok {
		text = truncateRunes(text, prec)
	}
	if verb == 'q' {
		text = strconv.Quote(text)
	}

	if width, ok := f.Width(); ok {
		if pad := width - utf8.RuneCountInString(text); pad > 0 {
			padding := stringx.Repeat(" ", pad)
			if f.Flag('-') {
				text += padding
			} else {
				text = padding + text
			}
		}
	}

	_, _ = f.Write([]byte(text))
}

func truncateRunes(s string, n int) string {
	if n < 0 {
		return s
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
