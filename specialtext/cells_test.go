package specialtext

import "testing"

func TestCellMeasurer_WideRunes(t *testing.T) {
	m := CellMeasurer{CellWidth: 8, LineHeight: 16}
	if got := m.MeasureText("abc", DefaultStyle()); got.Width != 24 || got.Height != 16 {
		t.Errorf("abc = %+v, want {24 16}", got)
	}
	if got := m.MeasureText("日本", DefaultStyle()); got.Width != 32 {
		t.Errorf("wide width = %v, want 32", got.Width)
	}
}

func TestCellMeasurer_ScalesWithFontSize(t *testing.T) {
	m := CellMeasurer{CellWidth: 10, LineHeight: 20, BaseSize: 20}
	got := m.MeasureText("ab", DefaultStyle().WithPatch(FontSize(40)))
	if got.Width != 40 || got.Height != 40 {
		t.Errorf("size = %+v, want {40 40}", got)
	}
}

func TestCellMeasurer_StrokeWidens(t *testing.T) {
	m := CellMeasurer{CellWidth: 10, LineHeight: 20}
	got := m.MeasureText("a", DefaultStyle().WithPatch(Stroke(Hex(0xffffff), 4)))
	if got.Width != 14 || got.Height != 24 {
		t.Errorf("size = %+v, want {14 24}", got)
	}
}
