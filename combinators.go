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
	"strings"
)

// SpaceBreak renders as a space inside a compact flex group and as a line
// break otherwise.
func SpaceBreak[A any]() Doc[A] {
	return FlexAlt(Space[A](), Break[A]())
}

// SoftBreak renders as nothing inside a compact flex group and as a line
// break otherwise.
func SoftBreak[A any]() Doc[A] {
	return FlexAlt(Empty[A](), Break[A]())
}

// AppendBreak concatenates with a line break in between.
//
// If either side is empty the break is skipped and the other side is
// returned as is.
func (d Doc[A]) AppendBreak(other Doc[A]) Doc[A] {
	if d.node == nil || other.node == nil {
		return d.Append(other)
	}
	return d.Append(Break[A](), other)
}

// AppendSpace concatenates with a space in between.
//
// If either side is empty the space is skipped.
func (d Doc[A]) AppendSpace(other Doc[A]) Doc[A] {
	if d.node == nil || other.node == nil {
		return d.Append(other)
	}
	return d.Append(Space[A](), other)
}

// AppendSpaceBreak concatenates with a flex-grouped [SpaceBreak] in between:
// the two sides are separated by a space when that fits and by a line break
// otherwise.
//
// If either side is empty the separator is skipped.
func (d Doc[A]) AppendSpaceBreak(other Doc[A]) Doc[A] {
	if d.node == nil || other.node == nil {
		return d.Append(other)
	}
	return d.Append(SpaceBreak[A]().Append(other).FlexGroup())
}

// FoldWith joins documents with a binary operator, right to left.
//
// Empty documents are skipped entirely: join is only ever applied to two
// non-empty operands.
func FoldWith[A any](join func(a, b Doc[A]) Doc[A], docs ...Doc[A]) Doc[A] {
	var acc Doc[A]
	for i := len(docs) - 1; i >= 0; i-- {
		switch {
		case docs[i].node == nil:
		case acc.node == nil:
			acc = docs[i]
		default:
			acc = join(docs[i], acc)
		}
	}
	return acc
}

// FoldWithSeparator joins non-empty documents with a separator document.
func FoldWithSeparator[A any](separator Doc[A], docs ...Doc[A]) Doc[A] {
	return FoldWith(func(a, b Doc[A]) Doc[A] {
		return a.Append(separator, b)
	}, docs...)
}

// Lines joins non-empty documents with line breaks.
func Lines[A any](docs ...Doc[A]) Doc[A] {
	return FoldWith(Doc[A].AppendBreak, docs...)
}

// Words joins non-empty documents with spaces.
func Words[A any](docs ...Doc[A]) Doc[A] {
	return FoldWith(Doc[A].AppendSpace, docs...)
}

// Paragraph joins non-empty documents with [Doc.AppendSpaceBreak].
//
// Each separator's group contains everything after it, so a separator is a
// space only when the whole rest of the paragraph fits on the current line.
// Lines are not filled greedily: once the rest does not fit, the paragraph
// breaks at every separator until the remainder fits on one line.
func Paragraph[A any](docs ...Doc[A]) Doc[A] {
	return FoldWith(Doc[A].AppendSpaceBreak, docs...)
}

// TextParagraph splits text on runs of whitespace (including newlines) and
// joins the words into a [Paragraph]. Leading and trailing whitespace is
// dropped.
func TextParagraph[A any](text string) Doc[A] {
	words := strings.Fields(text)
	docs := make([]Doc[A], len(words))
	for i, word := range words {
		docs[i] = Text[A](word)
	}
	return Paragraph(docs...)
}

// Enclose wraps a document in an opening and closing document.
func Enclose[A any](open, closing, inner Doc[A]) Doc[A] {
	return open.Append(inner, closing)
}

// EncloseEmptyAlt is like [Enclose], except that an empty inner document
// renders as the fallback instead of as open and closing with nothing in
// between.
func EncloseEmptyAlt[A any](open, closing, fallback, inner Doc[A]) Doc[A] {
	if inner.node == nil {
		return fallback
	}
	return Enclose(open, closing, inner)
}

// EncloseWithSeparator joins non-empty documents with a separator and wraps
// the result in an opening and closing document.
func EncloseWithSeparator[A any](open, closing, separator Doc[A], docs ...Doc[A]) Doc[A] {
	return Enclose(open, closing, FoldWithSeparator(separator, docs...))
}
