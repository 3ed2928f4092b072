package specialtext

import "github.com/mattn/go-runewidth"

// CellMeasurer measures text on a monospace grid, counting East Asian wide
// characters as two cells. It needs no font data, which makes it useful for
// headless layout and tests.
type CellMeasurer struct {
	CellWidth  float64 // width of one cell at BaseSize
	LineHeight float64 // height of one line at BaseSize
	BaseSize   float64 // font size the metrics are given for; 0 disables scaling
}

// MeasureText returns the grid size of text scaled by style.FontSize/BaseSize.
// The stroke thickness is added to both dimensions, as an outline widens the
// glyphs on every side.
func (m CellMeasurer) MeasureText(text string, style Style) Size {
	scale := 1.0
	if m.BaseSize > 0 && style.FontSize > 0 {
		scale = style.FontSize / m.BaseSize
	}
	cells := runewidth.StringWidth(text)
	return Size{
		Width:  float64(cells)*m.CellWidth*scale + style.StrokeThickness,
		Height: m.LineHeight*scale + style.StrokeThickness,
	}
}
