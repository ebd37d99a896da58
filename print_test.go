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

package pretty_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pretty"
)

// doc is shorthand for unannotated test documents.
type doc = pretty.Doc[struct{}]

func text(s string) doc { return pretty.Text[struct{}](s) }

func page(pageWidth int) pretty.PrintOptions {
	return pretty.PrintOptions{
		PageWidth:   pageWidth,
		RibbonRatio: 1.0,
		IndentUnit:  "  ",
		IndentWidth: 2,
	}
}

func TestPrintText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     doc
		options pretty.PrintOptions
		want    string
	}{
		{
			name:    "text at column zero",
			doc:     text("hello"),
			options: pretty.TwoSpaces,
			want:    "hello",
		},
		{
			name:    "append space",
			doc:     text("hello").AppendSpace(text("world")),
			options: pretty.TwoSpaces,
			want:    "hello world",
		},
		{
			name:    "flex group fits",
			doc:     pretty.Concat(text("a"), pretty.SpaceBreak[struct{}](), text("b")).FlexGroup(),
			options: pretty.TwoSpaces,
			want:    "a b",
		},
		{
			name:    "flex group fits exactly",
			doc:     pretty.Concat(text("a"), pretty.SpaceBreak[struct{}](), text("b")).FlexGroup(),
			options: page(3),
			want:    "a b",
		},
		{
			name:    "flex group spills",
			doc:     pretty.Concat(text("a"), pretty.SpaceBreak[struct{}](), text("b")).FlexGroup(),
			options: page(2),
			want:    "a\nb",
		},
		{
			name:    "indent",
			doc:     text("x").AppendBreak(text("y")).Indent(),
			options: pretty.TwoSpaces,
			want:    "  x\n  y",
		},
		{
			name:    "indent with tabs",
			doc:     text("x").AppendBreak(text("y")).Indent(),
			options: pretty.Tabs,
			want:    "\tx\n\ty",
		},
		{
			name:    "align current column",
			doc:     text("--- ").Append(text("foo").AppendBreak(text("bar")).AlignCurrentColumn()),
			options: pretty.TwoSpaces,
			want:    "--- foo\n    bar",
		},
		{
			name:    "negative align is ignored",
			doc:     text("a").AppendBreak(text("b")).Align(-3),
			options: pretty.TwoSpaces,
			want:    "a\nb",
		},
		{
			name:    "paragraph wide",
			doc:     pretty.TextParagraph[struct{}]("  hello\n  world  friends  "),
			options: pretty.TwoSpaces,
			want:    "hello world friends",
		},
		{
			name:    "paragraph narrow",
			doc:     pretty.TextParagraph[struct{}]("  hello\n  world  friends  "),
			options: page(6),
			want:    "hello\nworld\nfriends",
		},
		{
			name:    "blank line has no trailing indent",
			doc:     pretty.Concat(text("a"), pretty.Break[struct{}](), pretty.Break[struct{}](), text("b")).Indent(),
			options: pretty.TwoSpaces,
			want:    "  a\n\n  b",
		},
		{
			name:    "two breaks alone",
			doc:     pretty.Concat(pretty.Break[struct{}](), pretty.Break[struct{}]()),
			options: pretty.TwoSpaces,
			want:    "\n\n",
		},
		{
			name: "soft break",
			doc: pretty.Concat(
				text("{"),
				pretty.Concat(
					pretty.SoftBreak[struct{}](), text("body"),
				).Indent(),
				pretty.SoftBreak[struct{}](),
				text("}"),
			).FlexGroup(),
			options: page(6),
			want:    "{body}",
		},
		{
			name: "soft break spilled",
			doc: pretty.Concat(
				text("{"),
				pretty.Concat(
					pretty.SoftBreak[struct{}](), text("body"),
				).Indent(),
				pretty.SoftBreak[struct{}](),
				text("}"),
			).FlexGroup(),
			options: page(5),
			want:    "{\n  body\n}",
		},
		{
			name: "ribbon ratio limits fill",
			doc: pretty.Concat(
				text("abc"), pretty.SpaceBreak[struct{}](), text("de"),
			).FlexGroup(),
			options: pretty.PrintOptions{PageWidth: 10, RibbonRatio: 0.5, IndentUnit: "  ", IndentWidth: 2},
			want:    "abc\nde",
		},
		{
			name: "ribbon ratio above one is clamped",
			doc: pretty.Concat(
				text("abc"), pretty.SpaceBreak[struct{}](), text("de"),
			).FlexGroup(),
			options: pretty.PrintOptions{PageWidth: 6, RibbonRatio: 4.0, IndentUnit: "  ", IndentWidth: 2},
			want:    "abc de",
		},
		{
			name: "zero ribbon skips speculation",
			doc: pretty.Concat(
				text("a"), pretty.SpaceBreak[struct{}](), text("b"),
			).FlexGroup(),
			options: pretty.PrintOptions{PageWidth: 10, RibbonRatio: 0.0, IndentUnit: "  ", IndentWidth: 2},
			want:    "a\nb",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, pretty.PrintText(test.options, test.doc))
		})
	}
}

func TestFlexGroupRetriesFromGroupStart(t *testing.T) {
	t.Parallel()

	// Each separator's group holds the whole rest of the paragraph. The
	// group after "the" does not fit, so it breaks; every later group
	// restarts on its own line, breaking again until the remainder
	// "brown fox" fits.
	words := pretty.Paragraph(
		text("the"), text("quick"), text("brown"), text("fox"),
	)
	assert.Equal(t, "the quick brown fox", pretty.PrintText(pretty.TwoSpaces, words))
	assert.Equal(t, "the\nquick\nbrown fox", pretty.PrintText(page(13), words))
}

func TestNestedFlexGroupsShareOneSavepoint(t *testing.T) {
	t.Parallel()

	inner := pretty.Concat(text("bb"), pretty.SpaceBreak[struct{}](), text("cc")).FlexGroup()
	outer := pretty.Concat(text("aa"), pretty.SpaceBreak[struct{}](), inner).FlexGroup()

	// Wide enough for everything.
	assert.Equal(t, "aa bb cc", pretty.PrintText(pretty.TwoSpaces, outer))

	// The inner group alone would fit, but the overflow happens while the
	// outer speculation is active, so the abort rewinds to the outer
	// group's start; the inner group then gets its own attempt.
	assert.Equal(t, "aa\nbb cc", pretty.PrintText(page(6), outer))
}

func TestFlexFitMatchesUngrouped(t *testing.T) {
	t.Parallel()

	d := pretty.Words(text("one"), text("two"), text("three"))
	flat := pretty.PrintText(pretty.TwoSpaces, d)
	assert.NotContains(t, flat, "\n")
	assert.Equal(t, flat, pretty.PrintText(pretty.TwoSpaces, d.FlexGroup()))
}

func TestFlexSpillMatchesExpandedAlternatives(t *testing.T) {
	t.Parallel()

	long := text(strings.Repeat("x", 30))
	grouped := pretty.Concat(
		pretty.FlexAlt(text("compact"), text("expanded")),
		pretty.SpaceBreak[struct{}](),
		long,
	).FlexGroup()
	expanded := pretty.Concat(text("expanded"), pretty.Break[struct{}](), long)

	opts := page(10)
	assert.Equal(t,
		pretty.PrintText(opts, expanded),
		pretty.PrintText(opts, grouped),
	)
}

func TestWithPosition(t *testing.T) {
	t.Parallel()

	position := pretty.WithPosition(func(pos pretty.Position) doc {
		return text(fmt.Sprintf("@%d:%d+%d", pos.Line, pos.Column, pos.Indent))
	})

	t.Run("mid line", func(t *testing.T) {
		t.Parallel()
		got := pretty.PrintText(pretty.TwoSpaces, text("ab").Append(position))
		assert.Equal(t, "ab@0:2+0", got)
	})

	t.Run("pending indent is reported", func(t *testing.T) {
		t.Parallel()
		got := pretty.PrintText(pretty.TwoSpaces, position.Indent())
		assert.Equal(t, "  @0:2+2", got)
	})

	t.Run("after break", func(t *testing.T) {
		t.Parallel()
		got := pretty.PrintText(pretty.TwoSpaces, text("a").AppendBreak(position))
		assert.Equal(t, "a\n@1:0+0", got)
	})
}

func TestDeepDocumentDoesNotOverflowStack(t *testing.T) {
	t.Parallel()

	d := text("x")
	for range 100_000 {
		d = d.Indent()
	}
	assert.Equal(t, "x", pretty.PrintText(pretty.PrintOptions{
		PageWidth:   80,
		RibbonRatio: 1.0,
		IndentUnit:  "",
		IndentWidth: 0,
	}, d))
}
