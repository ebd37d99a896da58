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
	"slices"
	"strings"

	"github.com/bufbuild/pretty/internal/ext/slicesx"
)

const (
	// cmdDoc processes a document node.
	cmdDoc cmdKind = iota
	// cmdDedent restores indentation after an Indent or Align.
	cmdDedent
	// cmdLeaveAnnotation closes an annotated region.
	cmdLeaveAnnotation
	// cmdLeaveFlexGroup finalizes a successful flex group attempt.
	cmdLeaveFlexGroup
)

// cmdKind discriminates the interpreter's work-queue frames.
type cmdKind byte

// command is one frame of the interpreter's explicit work stack.
//
// Document trees can be arbitrarily deep, so the interpreter never recurses;
// everything still to do is a command on the stack.
type command[A any] struct {
	kind cmdKind

	// doc is the node to process for cmdDoc. nil is the empty document.
	doc *node[A]

	// Saved indentation for cmdDedent.
	indent       int
	indentSpaces string

	// Closing annotation and the stack outside it for cmdLeaveAnnotation.
	ann   A
	outer []A
}

// docState is the interpreter's state for one [Print] call.
type docState[B, A any] struct {
	position Position
	buffer   buffer[B]

	// annotations currently open, innermost first.
	annotations []A

	// Pending indentation: the column the next line's content starts at and
	// the prefix that realizes it. Emitted lazily by the text case so blank
	// lines carry no trailing whitespace.
	indent       int
	indentSpaces string

	// flexGroup is the active speculation, if any. Only the outermost flex
	// group is tracked; this bounds lookahead to the end of the current
	// group and keeps rendering linear.
	flexGroup *flexGroupState[B, A]
}

// flexGroupState is the savepoint for an in-progress flex group attempt.
// On abort, the interpreter restores every field and resumes from stack.
type flexGroupState[B, A any] struct {
	position     Position
	buffer       buffer[B]
	annotations  []A
	indent       int
	indentSpaces string

	// stack is the continuation captured at group entry: the group's own
	// document on top, followed by everything after the group.
	stack []command[A]
}

// reset discards the current speculation and returns the continuation stack
// to resume from.
//
// The restored buffer predates [buffer.branch], so every write performed
// during the attempt is abandoned with the speculative slot, including any
// annotation callbacks that fired.
func (s *docState[B, A]) reset() []command[A] {
	saved := s.flexGroup
	s.position = saved.position
	s.buffer = saved.buffer
	s.annotations = saved.annotations
	s.indent = saved.indent
	s.indentSpaces = saved.indentSpaces
	s.flexGroup = nil
	return saved.stack
}

// Print renders a document to the given sink.
//
// Rendering is deterministic, runs entirely on the calling goroutine, and
// has no effects beyond the printer's callbacks.
func Print[B, A, R any](printer Printer[B, A, R], options PrintOptions, doc Doc[A]) R {
	ratio := min(max(options.RibbonRatio, 0.0), 1.0)

	state := docState[B, A]{
		position: Position{
			PageWidth:   options.PageWidth,
			RibbonWidth: ribbonWidth(ratio, options.PageWidth, 0),
		},
		buffer: newBuffer(printer.EmptyBuffer),
	}

	stack := []command[A]{{kind: cmdDoc, doc: doc.node}}
	for {
		cmd, ok := slicesx.Pop(&stack)
		if !ok {
			break
		}

		switch cmd.kind {
		case cmdDedent:
			state.indent = cmd.indent
			state.indentSpaces = cmd.indentSpaces
			continue

		case cmdLeaveAnnotation:
			state.annotations = cmd.outer
			state.buffer.modify(func(buf B) B {
				return printer.LeaveAnnotation(cmd.ann, cmd.outer, buf)
			})
			continue

		case cmdLeaveFlexGroup:
			state.flexGroup = nil
			state.buffer.commit()
			continue
		}

		n := cmd.doc
		if n == nil {
			continue // Empty.
		}

		switch n.kind {
		case kindText:
			if state.position.Column == 0 && state.indent > 0 {
				// First content on this line: realize the pending
				// indentation, then take another run at the same text.
				state.buffer.modify(func(buf B) B {
					return printer.WriteIndent(state.indent, state.indentSpaces, buf)
				})
				state.position.Column = state.indent
				state.position.Indent = state.indent
				state.position.RibbonWidth = ribbonWidth(ratio, state.position.PageWidth, state.indent)
				stack = append(stack, cmd)
				continue
			}

			next := state.position.Column + n.width
			if state.flexGroup != nil && next > state.position.Indent+state.position.RibbonWidth {
				stack = state.reset()
				continue
			}
			state.buffer.modify(func(buf B) B {
				return printer.WriteText(n.width, n.text, buf)
			})
			state.position.Column = next

		case kindBreak:
			if state.flexGroup != nil {
				stack = state.reset()
				continue
			}
			state.buffer.modify(printer.WriteBreak)
			state.position.Line++
			state.position.Column = 0
			state.position.Indent = state.indent
			state.position.RibbonWidth = ribbonWidth(ratio, state.position.PageWidth, state.indent)

		case kindAppend:
			stack = append(stack,
				command[A]{kind: cmdDoc, doc: n.right},
				command[A]{kind: cmdDoc, doc: n.left},
			)

		case kindIndent:
			if state.flexGroup != nil {
				// A compact attempt cannot break, so indentation can never
				// be emitted inside it; skip straight to the content.
				stack = append(stack, command[A]{kind: cmdDoc, doc: n.left})
				continue
			}
			stack = append(stack,
				command[A]{kind: cmdDedent, indent: state.indent, indentSpaces: state.indentSpaces},
				command[A]{kind: cmdDoc, doc: n.left},
			)
			state.indent += options.IndentWidth
			state.indentSpaces += options.IndentUnit

		case kindAlign:
			if state.flexGroup != nil {
				stack = append(stack, command[A]{kind: cmdDoc, doc: n.left})
				continue
			}
			stack = append(stack,
				command[A]{kind: cmdDedent, indent: state.indent, indentSpaces: state.indentSpaces},
				command[A]{kind: cmdDoc, doc: n.left},
			)
			state.indent += n.width
			state.indentSpaces += strings.Repeat(" ", n.width)

		case kindFlexGroup:
			if state.flexGroup != nil || state.position.RibbonWidth == 0 {
				// Nested groups ride the outer speculation rather than
				// opening a savepoint of their own; with no ribbon there is
				// nothing to attempt.
				stack = append(stack, command[A]{kind: cmdDoc, doc: n.left})
				continue
			}
			saved := &flexGroupState[B, A]{
				position:     state.position,
				buffer:       state.buffer,
				annotations:  state.annotations,
				indent:       state.indent,
				indentSpaces: state.indentSpaces,
				stack:        append(slices.Clone(stack), command[A]{kind: cmdDoc, doc: n.left}),
			}
			state.buffer.branch()
			state.flexGroup = saved
			stack = append(stack,
				command[A]{kind: cmdLeaveFlexGroup},
				command[A]{kind: cmdDoc, doc: n.left},
			)

		case kindFlexAlt:
			if state.flexGroup != nil {
				stack = append(stack, command[A]{kind: cmdDoc, doc: n.left})
			} else {
				stack = append(stack, command[A]{kind: cmdDoc, doc: n.right})
			}

		case kindAnnotate:
			outer := state.annotations
			stack = append(stack,
				command[A]{kind: cmdLeaveAnnotation, ann: n.ann, outer: outer},
				command[A]{kind: cmdDoc, doc: n.left},
			)
			state.buffer.modify(func(buf B) B {
				return printer.EnterAnnotation(n.ann, outer, buf)
			})
			annotations := make([]A, 0, len(outer)+1)
			state.annotations = append(append(annotations, n.ann), outer...)

		case kindWithPosition:
			pos := state.position
			if pos.Column == 0 && state.indent > pos.Indent {
				// Indentation is pending and would apply before the next
				// write; report the position that write will see.
				pos.Column = state.indent
				pos.Indent = state.indent
				pos.RibbonWidth = ribbonWidth(ratio, pos.PageWidth, state.indent)
			}
			stack = append(stack, command[A]{kind: cmdDoc, doc: n.with(pos).node})
		}
	}

	return printer.FlushBuffer(state.buffer.get())
}
