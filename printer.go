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

// Printer is a pluggable output sink for [Print].
//
// B is the buffer the callbacks accumulate into, A the annotation type of
// the documents being printed, and R the final result produced by
// FlushBuffer.
//
// Callbacks must be pure with respect to the buffer value: during a flex
// group attempt they are invoked against a speculative buffer that may be
// discarded wholesale, so any effect outside the returned buffer would
// survive a rollback it should not. Equivalent buffers in must produce
// equivalent buffers out. B itself needs value semantics; an append-only
// byte slice qualifies, a pointer to shared mutable state does not.
type Printer[B, A, R any] struct {
	// EmptyBuffer seeds the accumulator.
	EmptyBuffer B

	// WriteText appends literal text. width is the text's rune count,
	// supplied so sinks that track columns need not recount.
	WriteText func(width int, text string, buf B) B

	// WriteIndent appends the indentation prefix of a newly started line.
	// width is the column width the prefix is assumed to occupy.
	WriteIndent func(width int, indent string, buf B) B

	// WriteBreak appends a line terminator.
	WriteBreak func(buf B) B

	// EnterAnnotation is called as an annotated region opens. outer holds
	// the annotations surrounding this one, innermost first.
	EnterAnnotation func(ann A, outer []A, buf B) B

	// LeaveAnnotation is called as an annotated region closes. remaining
	// holds the annotations still open, innermost first.
	LeaveAnnotation func(ann A, remaining []A, buf B) B

	// FlushBuffer converts the final buffer into the caller's result.
	FlushBuffer func(buf B) R
}

// PlainText returns the built-in sink that renders to a plain string,
// ignoring annotations.
func PlainText[A any]() Printer[[]byte, A, string] {
	return Printer[[]byte, A, string]{
		WriteText: func(_ int, text string, buf []byte) []byte {
			return append(buf, text...)
		},
		WriteIndent: func(_ int, indent string, buf []byte) []byte {
			return append(buf, indent...)
		},
		WriteBreak: func(buf []byte) []byte {
			return append(buf, '\n')
		},
		EnterAnnotation: func(_ A, _ []A, buf []byte) []byte { return buf },
		LeaveAnnotation: func(_ A, _ []A, buf []byte) []byte { return buf },
		FlushBuffer: func(buf []byte) string {
			return string(buf)
		},
	}
}

// PrintText renders a document to a string with [PlainText].
func PrintText[A any](options PrintOptions, doc Doc[A]) string {
	return Print(PlainText[A](), options, doc)
}
