package specialtext

import "image/color"

// Style describes how text runs are drawn and measured. Style is a value:
// changing a component's style goes through WithPatch, so a caller holding a
// Style never sees it change underneath them.
type Style struct {
	FontFamily      string
	FontSize        float64
	Fill            color.RGBA
	Stroke          color.RGBA
	StrokeThickness float64
}

// DefaultStyle returns the base style: 26px Arial, black fill, no stroke.
func DefaultStyle() Style {
	return Style{
		FontFamily: "Arial",
		FontSize:   26,
		Fill:       color.RGBA{A: 0xff},
		Stroke:     color.RGBA{A: 0xff},
	}
}

// Patch changes selected fields of a Style copy.
type Patch func(*Style)

// WithPatch returns a copy of s with the patches applied in order.
func (s Style) WithPatch(patches ...Patch) Style {
	for _, p := range patches {
		if p != nil {
			p(&s)
		}
	}
	return s
}

// Patches combines several patches into one.
func Patches(patches ...Patch) Patch {
	return func(s *Style) {
		for _, p := range patches {
			if p != nil {
				p(s)
			}
		}
	}
}

// FontFamily sets the font family.
func FontFamily(name string) Patch {
	return func(s *Style) { s.FontFamily = name }
}

// FontSize sets the font size in pixels.
func FontSize(size float64) Patch {
	return func(s *Style) { s.FontSize = size }
}

// Fill sets the fill color.
func Fill(c color.RGBA) Patch {
	return func(s *Style) { s.Fill = c }
}

// Stroke sets the outline color and thickness. A thickness of 0 disables it.
func Stroke(c color.RGBA, thickness float64) Patch {
	return func(s *Style) {
		s.Stroke = c
		s.StrokeThickness = thickness
	}
}

// Hex converts a 0xRRGGBB value to an opaque color.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}
