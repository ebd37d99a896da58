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
	"math"
)

// Position is the renderer's location in the output, as observed by
// [WithPosition] callbacks.
type Position struct {
	// Line and Column are zero-based. Column counts runes, not bytes or
	// display cells.
	Line, Column int

	// Indent is the indentation at which content on the current line began.
	// While no text has been laid out on the line yet, this may lag behind
	// the indentation that will apply to the next write.
	Indent int

	// PageWidth is the soft maximum line length.
	PageWidth int

	// RibbonWidth is how much of the line past Indent may be filled before
	// a flex group overflows.
	RibbonWidth int
}

// ribbonWidth computes the printable width for a line starting at the given
// indentation: ceil(ratio * (pageWidth - indent)), clamped to [0, pageWidth].
func ribbonWidth(ratio float64, pageWidth, indent int) int {
	width := int(math.Ceil(ratio * float64(pageWidth-indent)))
	return min(max(width, 0), pageWidth)
}
