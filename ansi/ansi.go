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

// Package ansi renders annotated documents as ANSI-styled terminal output.
//
// Documents are annotated with [Style] values; [Printer] translates them
// into SGR escape sequences. Styling never affects layout: escape sequences
// are emitted by the sink, outside the engine's column accounting.
package ansi

import (
	"strconv"

	"github.com/bufbuild/pretty"
)

const (
	ColorDefault Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Color is one of the sixteen basic terminal colors, or [ColorDefault] to
// leave the terminal's choice in place.
type Color byte

// foreground returns the SGR parameter selecting this color as the
// foreground, or -1 for the default color.
func (c Color) foreground() int {
	switch {
	case c == ColorDefault:
		return -1
	case c <= White:
		return 30 + int(c-Black)
	default:
		return 90 + int(c-BrightBlack)
	}
}

// Style is the annotation type understood by [Printer].
//
// The zero Style is unstyled text.
type Style struct {
	Foreground, Background Color

	Bold, Dim, Italic, Underline bool
}

// params appends the SGR parameters that select this style on top of a
// freshly reset terminal.
func (s Style) params(sgr []int) []int {
	if s.Bold {
		sgr = append(sgr, 1)
	}
	if s.Dim {
		sgr = append(sgr, 2)
	}
	if s.Italic {
		sgr = append(sgr, 3)
	}
	if s.Underline {
		sgr = append(sgr, 4)
	}
	if p := s.Foreground.foreground(); p >= 0 {
		sgr = append(sgr, p)
	}
	if p := s.Background.foreground(); p >= 0 {
		sgr = append(sgr, p+10)
	}
	return sgr
}

// escape appends the escape sequence for the given SGR parameters. No
// parameters means a full reset.
func escape(buf []byte, sgr []int) []byte {
	buf = append(buf, "\x1b["...)
	for i, p := range sgr {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = strconv.AppendInt(buf, int64(p), 10)
	}
	return append(buf, 'm')
}

// apply appends a reset followed by the selection of style, so that the
// result does not depend on what was active before.
func apply(buf []byte, style Style) []byte {
	buf = escape(buf, nil)
	if sgr := style.params(nil); len(sgr) > 0 {
		buf = escape(buf, sgr)
	}
	return buf
}

// Printer returns a sink that renders [Style] annotations as SGR escape
// sequences.
//
// Entering an annotation switches to its style; leaving restores the
// innermost enclosing style, or plain text at the top level. All effects
// are buffer writes, so the sink is safe to use with documents whose flex
// groups abort.
func Printer() pretty.Printer[[]byte, Style, string] {
	plain := pretty.PlainText[Style]()
	return pretty.Printer[[]byte, Style, string]{
		WriteText:   plain.WriteText,
		WriteIndent: plain.WriteIndent,
		WriteBreak:  plain.WriteBreak,
		EnterAnnotation: func(style Style, _ []Style, buf []byte) []byte {
			return apply(buf, style)
		},
		LeaveAnnotation: func(_ Style, remaining []Style, buf []byte) []byte {
			if len(remaining) > 0 {
				return apply(buf, remaining[0])
			}
			return escape(buf, nil)
		},
		FlushBuffer: plain.FlushBuffer,
	}
}

// Render renders a styled document to a string.
func Render(options pretty.PrintOptions, doc pretty.Doc[Style]) string {
	return pretty.Print(Printer(), options, doc)
}
