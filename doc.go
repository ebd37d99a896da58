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

// Package pretty is a declarative pretty-printing engine.
//
// A [Doc] is an immutable tree describing the intended layout of some text:
// literal text, line breaks, indentation, and groups that may be laid out
// either compactly on one line or expanded across several. [Print] walks a
// document and renders it, greedily choosing the compact form of each
// [Doc.FlexGroup] whenever it fits within the configured page and ribbon
// widths.
//
// The renderer is single-pass with bounded lookahead: at most one flex group
// is speculated at a time, and a failed speculation rewinds to the group's
// start and retries with the expanded alternatives. A speculation ends at the
// first hard break or at the first text that overflows the ribbon. A node can
// be processed more than once: once by each speculation that reaches it, and
// once more when it is finally laid out.
//
// Output is pluggable. A [Printer] is a bundle of callbacks that append text,
// indentation, and line breaks to a caller-defined buffer type, and that
// observe annotated regions (see [Doc.Annotate]). [PlainText] is the built-in
// sink that produces a plain string; package ansi in this module renders
// annotations as terminal styling.
//
// Text passed to [Text] must not contain line breaks; use [Break] or the
// flex alternatives instead. The engine does not guard against embedded
// newlines, and the output for such documents is unspecified.
package pretty
