// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     pipeline
// Description: Values flowing between pipeline steps
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package pipeline

import (
	"github.com/msto63/easyfmt/foundation/utils/slicex"
	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// ListSeparator joins the items of a list that reaches the end of a pipeline.
const ListSeparator = "\n"

// Value is either a single string or a list of strings. The zero value is
// the empty scalar.
type Value struct {
	items []string
	list  bool
}

// Scalar returns a single-string value.
func Scalar(s string) Value {
	return Value{items: []string{s}}
}

// List returns a list value holding a copy of items.
func List(items ...string) Value {
	return Value{items: append([]string(nil), items...), list: true}
}

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.list }

// Len returns the number of items; a scalar has one.
func (v Value) Len() int {
	if !v.list {
		return 1
	}
	return len(v.items)
}

// Items returns a copy of the list items, or the scalar as a one-item slice.
func (v Value) Items() []string {
	if !v.list {
		return []string{v.String()}
	}
	return append([]string(nil), v.items...)
}

// String returns the scalar, or the list items joined with ListSeparator.
func (v Value) String() string {
	if v.list {
		return stringx.Join(v.items, ListSeparator)
	}
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// mapText applies f to a scalar or to every item of a list.
func mapText(f func(string) string) Func {
	return func(v Value) Value {
		if !v.list {
			return Scalar(f(v.String()))
		}
		return listOf(slicex.Map(v.items, f))
	}
}

// filter keeps the list items matching keep. A scalar is kept as is or
// replaced by the empty string.
func filter(keep func(string) bool) Func {
	return func(v Value) Value {
		if !v.list {
			if keep(v.String()) {
				return v
			}
			return Scalar("")
		}
		return listOf(slicex.Filter(v.items, keep))
	}
}

// reshape applies f to the items of a list, or to the scalar as a one-item
// list.
func reshape(f func([]string) []string) Func {
	return func(v Value) Value {
		return listOf(f(v.Items()))
	}
}

// listOf wraps items without copying them.
func listOf(items []string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{items: items, list: true}
}
