package showcase

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is a straight-alpha RGBA color, each channel in [0, 1]. It is
// premultiplied only when a draw command is built.
type Color struct {
	R, G, B, A float64
}

// ColorWhite leaves images untinted.
var ColorWhite = Color{1, 1, 1, 1}

// RGB returns the opaque color for a 0xRRGGBB literal.
func RGB(hex uint32) Color {
	channel := func(shift uint) float64 { return float64(hex>>shift&0xff) / 255 }
	return Color{R: channel(16), G: channel(8), B: channel(0), A: 1}
}

// Lerp blends c toward to. t = 0 gives c and t = 1 gives to.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{lerp(c.R, to.R, t), lerp(c.G, to.G, t), lerp(c.B, to.B, t), lerp(c.A, to.A, t)}
}

func (c Color) toRGBA() colorRGBA {
	a := clamp01(c.A)
	byteOf := func(v float64) uint8 { return uint8(clamp01(v) * 255) }
	return colorRGBA{R: byteOf(c.R * c.A), G: byteOf(c.G * c.A), B: byteOf(c.B * c.A), A: byteOf(a)}
}

// colorRGBA is a premultiplied color.Color.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, uint32(c.A) * 0x101
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Vec2 is a point or offset.
type Vec2 struct {
	X, Y float64
}

var whitePixel *ebiten.Image

// WhitePixel returns a shared 1x1 white image. Sprites stretch it to draw
// solid rectangles.
func WhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Rect is an axis-aligned rectangle in a Y-down space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) is inside r or on its edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.Width && y <= r.Y+r.Height
}

// Intersects reports whether r and o overlap. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	return o.X <= r.X+r.Width && r.X <= o.X+o.Width &&
		o.Y <= r.Y+r.Height && r.Y <= o.Y+o.Height
}

// Range is a closed interval used for randomised emitter settings.
type Range struct {
	Min, Max float64
}

// Random picks a value in [Min, Max) from rng, or from the package-level
// generator when rng is nil.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Max == r.Min {
		return r.Min
	}
	f := rand.Float64
	if rng != nil {
		f = rng.Float64
	}
	return r.Lerp(f())
}

// Lerp maps t in [0, 1] onto the range.
func (r Range) Lerp(t float64) float64 {
	return lerp(r.Min, r.Max, t)
}

// BlendMode is how a sprite is composited onto what is already drawn.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source over
	BlendAdd                     // lighter, used by the fire particles
	BlendNone                    // copy, ignores the destination
)

var ebitenBlends = [...]ebiten.Blend{
	BlendNormal: ebiten.BlendSourceOver,
	BlendAdd:    ebiten.BlendLighter,
	BlendNone:   ebiten.BlendCopy,
}

// EbitenBlend returns the ebiten blend for b. Unknown modes draw as
// BlendNormal.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	if int(b) < len(ebitenBlends) {
		return ebitenBlends[b]
	}
	return ebiten.BlendSourceOver
}

// NodeType selects what a Node draws.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota
	NodeTypeSprite
	NodeTypeText
)

// MouseButton names the button behind a pointer event.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// TextAlign positions each line of a TextBlock inside its widest line.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)
