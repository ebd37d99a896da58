// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pretty

import (
	"unicode/utf8"
)

const (
	kindEmpty kind = iota //nolint:unused // The zero node is never allocated.

	kindText         // Literal text without line breaks.
	kindBreak        // An unconditional line break.
	kindAppend       // Ordered concatenation of two documents.
	kindIndent       // One extra level of indentation around the child.
	kindAlign        // A fixed number of extra spaces around the child.
	kindFlexGroup    // Candidate for compact, single-line layout.
	kindFlexAlt      // A compact/expanded pair of alternatives.
	kindAnnotate     // An annotation wrapped around the child.
	kindWithPosition // Deferred construction from the current position.
)

// kind discriminates the variants of a document node.
type kind byte

// Doc is an immutable description of how text should be laid out.
//
// Documents are built from [Text] and [Break] leaves and combined with
// [Doc.Append] and the wrapper methods. The zero value is the empty document,
// the identity under concatenation.
//
// Doc is generic over an annotation type A; annotations attach arbitrary
// values to subtrees and are reported to the [Printer] as the annotated
// region is entered and left. Code that does not use annotations can
// instantiate A as any type, conventionally struct{}.
//
// A Doc may be shared freely, including across goroutines; all operations
// return new documents.
type Doc[A any] struct {
	node *node[A]
}

// node is a single document tree node. A nil *node is the empty document,
// which lets the smart constructors collapse empties without allocating.
type node[A any] struct {
	kind kind

	// width is the rune count for kindText and the space count for
	// kindAlign.
	width int
	text  string
	ann   A

	// left is the only child for the wrapper kinds, the left operand of
	// kindAppend, and the compact side of kindFlexAlt. right is the right
	// operand of kindAppend and the expanded side of kindFlexAlt.
	left, right *node[A]

	with func(Position) Doc[A]
}

// Empty returns the empty document.
//
// This is the same as the zero value of [Doc]; it exists for call sites that
// read better with an explicit constructor.
func Empty[A any]() Doc[A] {
	return Doc[A]{}
}

// IsEmpty reports whether d is the empty document.
//
// Only structurally empty documents count: a document that happens to render
// to no output, such as a flex alternative of two empties, is not empty.
func (d Doc[A]) IsEmpty() bool {
	return d.node == nil
}

// Text returns a document containing the given literal text.
//
// The text must not contain line breaks; see the package documentation.
// Text("") is the empty document. The rendered width of the text is its
// rune count, computed once here.
func Text[A any](text string) Doc[A] {
	if text == "" {
		return Doc[A]{}
	}
	return Doc[A]{&node[A]{
		kind:  kindText,
		width: utf8.RuneCountInString(text),
		text:  text,
	}}
}

// Break returns an unconditional line break.
//
// Inside a flex group a Break forces the group to take its expanded form.
func Break[A any]() Doc[A] {
	return Doc[A]{&node[A]{kind: kindBreak}}
}

// Space returns a document containing a single space.
func Space[A any]() Doc[A] {
	return Text[A](" ")
}

// Append concatenates documents in order.
//
// Empty operands are elided, so Append is a monoid with [Empty] as its
// identity.
func (d Doc[A]) Append(docs ...Doc[A]) Doc[A] {
	for _, next := range docs {
		switch {
		case next.node == nil:
		case d.node == nil:
			d = next
		default:
			d = Doc[A]{&node[A]{kind: kindAppend, left: d.node, right: next.node}}
		}
	}
	return d
}

// Concat concatenates documents in order; it is [Doc.Append] in function
// form, convenient for building a document from a slice.
func Concat[A any](docs ...Doc[A]) Doc[A] {
	var d Doc[A]
	return d.Append(docs...)
}

// Indent increases the indentation level by one unit within d.
//
// The unit is determined by [PrintOptions]. Indentation is emitted at the
// start of each line that carries content; it takes effect on the next text
// laid out at column zero.
func (d Doc[A]) Indent() Doc[A] {
	if d.node == nil {
		return d
	}
	return Doc[A]{&node[A]{kind: kindIndent, left: d.node}}
}

// Align increases the indentation by exactly width spaces within d.
//
// A width of zero or less is ignored.
func (d Doc[A]) Align(width int) Doc[A] {
	if d.node == nil || width <= 0 {
		return d
	}
	return Doc[A]{&node[A]{kind: kindAlign, width: width, left: d.node}}
}

// FlexGroup marks d as a candidate for compact layout.
//
// While rendering a flex group, [FlexAlt] documents take their compact side
// and no line breaks may occur; if a [Break] is reached or the content would
// overflow the ribbon, the whole group is re-rendered with the expanded
// alternatives instead.
//
// FlexGroup is idempotent: grouping an already-grouped document returns it
// unchanged.
func (d Doc[A]) FlexGroup() Doc[A] {
	if d.node == nil || d.node.kind == kindFlexGroup {
		return d
	}
	return Doc[A]{&node[A]{kind: kindFlexGroup, left: d.node}}
}

// FlexAlt returns a document that renders as flex while inside a flex group
// attempting compact layout, and as expanded otherwise.
func FlexAlt[A any](flex, expanded Doc[A]) Doc[A] {
	return Doc[A]{&node[A]{kind: kindFlexAlt, left: flex.node, right: expanded.node}}
}

// Annotate wraps d with an annotation value.
//
// The [Printer] is informed when the annotated region is entered and left.
// Annotations nest; the printer callbacks receive the stack of enclosing
// annotations. Annotating the empty document is a no-op.
func (d Doc[A]) Annotate(ann A) Doc[A] {
	if d.node == nil {
		return d
	}
	return Doc[A]{&node[A]{kind: kindAnnotate, ann: ann, left: d.node}}
}

// WithPosition defers construction of a document until render time, when
// the callback receives the current [Position].
//
// The returned document must itself terminate; the engine does not guard
// against a callback that regenerates itself forever.
func WithPosition[A any](with func(Position) Doc[A]) Doc[A] {
	return Doc[A]{&node[A]{kind: kindWithPosition, with: with}}
}

// AlignCurrentColumn aligns the subsequent lines of d to the column at which
// d begins rendering.
func (d Doc[A]) AlignCurrentColumn() Doc[A] {
	if d.node == nil {
		return d
	}
	return WithPosition(func(pos Position) Doc[A] {
		return d.Align(pos.Column - pos.Indent)
	})
}
