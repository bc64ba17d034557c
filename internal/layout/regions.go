// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import "github.com/pdiddy/deckgen/pkg/types"

// Template font defaults in points. Text runs start from these and styles
// override them.
const (
	DefaultFontName     = "Calibri"
	BodyFontSize        = 18
	TableHeaderFontSize = 14
	TOCFontSize         = 18
	SlideNumberFontSize = 12
)

// Fixed content regions. Positions never depend on content volume; text
// that does not fit overflows its box.
var (
	FullRegion  = Box{0.5, 1.5, 9, 5}
	LeftRegion  = Box{0.5, 1.5, 4.2, 5}
	RightRegion = Box{4.8, 1.5, 4.2, 5}

	TOCRegion      = Box{0.5, 1.5, 9, 5}
	SlideNumberBox = Box{8.5, 7, 1, 0.5}
)

// Table geometry: anchored at (1in, 2in), 8in wide, tableRowHeight per row.
const (
	tableLeft      = 1.0
	tableTop       = 2.0
	tableWidth     = 8.0
	tableRowHeight = 0.6
)

// ContentRegion returns the box for content at pos on a slide of the given
// layout. On the two-column layout only the left position gets the left
// column; everything else, plain content included, goes to the right
// column. Every other layout gets the full-width region.
func ContentRegion(layoutIndex int, pos types.Position) Box {
	if layoutIndex == TwoContent {
		if pos == types.PositionLeft {
			return LeftRegion
		}
		return RightRegion
	}
	return FullRegion
}

// TableBox returns the box for a table with the given number of rows.
func TableBox(rows int) Box {
	return Box{tableLeft, tableTop, tableWidth, tableRowHeight * float64(rows)}
}
