// ABOUTME: Region sizing for the two-column layout with an optional bottom ticker
// ABOUTME: Right width and section heights are derived from the layout, never stored

package render

import (
	"fmt"
	"math"

	"signage-app-api/core/domain"
)

// Sizing positions the regions of a layout
type Sizing struct {
	// LeftWidth and RightWidth are percentages of the screen width
	LeftWidth  int `json:"leftWidth"`
	RightWidth int `json:"rightWidth"`

	// SectionHeight is the percentage of the column each right section takes
	SectionHeight float64 `json:"sectionHeight"`

	// ColumnHeight is a CSS length; the bottom bar is subtracted when enabled
	ColumnHeight string `json:"columnHeight"`

	// BottomBarHeight is in px, 0 when the bar is disabled
	BottomBarHeight int `json:"bottomBarHeight"`
}

// Regions computes the sizing of l
func Regions(l domain.Layout) Sizing {
	s := Sizing{
		LeftWidth:    l.LeftColumn.Width,
		RightWidth:   l.RightColumnWidth(),
		ColumnHeight: "100%",
	}
	if n := l.RightColumn.Sections; n > 0 {
		s.SectionHeight = math.Round(100.0/float64(n)*1000) / 1000
	}
	if l.BottomBar.Enabled {
		s.BottomBarHeight = l.BottomBar.Height
		s.ColumnHeight = fmt.Sprintf("calc(100%% - %dpx)", l.BottomBar.Height)
	}
	return s
}
