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

// Package box composes rendered output two-dimensionally.
//
// A [Box] is a rectangle of text lines with a measured width. Boxes are
// built from strings or rendered documents and combined with [Vertical] and
// [Horizontal]. Unlike the layout engine, which counts runes, boxes measure
// display cells so that multi-cell runes line up in terminal output.
package box

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/pretty"
)

// Box is a rectangle of text lines.
//
// The zero Box is empty: zero lines, zero width.
type Box struct {
	lines []string
	width int
}

// Of builds a box from lines of text. The box is as wide as its widest
// line.
func Of(lines ...string) Box {
	b := Box{lines: lines}
	for _, line := range lines {
		b.width = max(b.width, uniseg.StringWidth(line))
	}
	return b
}

// FromString builds a box by splitting text on newlines.
func FromString(text string) Box {
	return Of(strings.Split(text, "\n")...)
}

// FromDoc renders a document with the plain-text sink and boxes the result.
func FromDoc[A any](options pretty.PrintOptions, doc pretty.Doc[A]) Box {
	return FromString(pretty.PrintText(options, doc))
}

// Width returns the width of the widest line, in display cells.
func (b Box) Width() int {
	return b.width
}

// Height returns the number of lines.
func (b Box) Height() int {
	return len(b.lines)
}

// Lines returns the box's lines. The returned slice must not be modified.
func (b Box) Lines() []string {
	return b.lines
}

// Pad returns a box at least width cells wide, with every line filled to
// the box's width with spaces. Lines never get truncated; a narrower width
// pads every line to the box's current width.
func (b Box) Pad(width int) Box {
	width = max(width, b.width)
	lines := make([]string, len(b.lines))
	for i, line := range b.lines {
		lines[i] = line + strings.Repeat(" ", width-uniseg.StringWidth(line))
	}
	return Box{lines: lines, width: width}
}

// Vertical stacks boxes top to bottom.
func Vertical(boxes ...Box) Box {
	var b Box
	for _, next := range boxes {
		b.lines = append(b.lines, next.lines...)
		b.width = max(b.width, next.width)
	}
	return b
}

// Horizontal joins boxes left to right, top-aligned. Every box but the
// last is padded to its full width so the columns stay ragged-free; boxes
// shorter than the tallest are padded with blank lines.
func Horizontal(boxes ...Box) Box {
	var height int
	for _, b := range boxes {
		height = max(height, len(b.lines))
	}

	lines := make([]string, height)
	for i, b := range boxes {
		if i < len(boxes)-1 {
			b = b.Pad(b.width)
		}
		for row := range height {
			switch {
			case row < len(b.lines):
				lines[row] += b.lines[row]
			case i < len(boxes)-1:
				lines[row] += strings.Repeat(" ", b.width)
			}
		}
	}
	return Of(lines...)
}

// String renders the box with lines joined by newlines.
func (b Box) String() string {
	return strings.Join(b.lines, "\n")
}
