// Package art draws the placeholder images the showcase screens use when no
// asset directory is given: card faces, flame blobs and inline icons.
package art

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/cards"
)

// Bundle names, shared with the screens that need them.
const (
	CardBundle = "images/card-screen"
	FireBundle = "images/fire-screen"
	TextBundle = "images/special-text-screen"
)

// Card face size in pixels.
const (
	CardWidth  = 80
	CardHeight = 112
)

// FireImages and IconImages are the asset names registered by Register.
var (
	FireImages = []string{"fire1", "fire2", "fire3"}
	IconImages = []string{"img1", "img2", "img3", "img4"}
)

var (
	red   = color.RGBA{0xcc, 0x22, 0x22, 0xff}
	black = color.RGBA{0x22, 0x22, 0x22, 0xff}
)

// Register draws every placeholder image and adds it to store under the
// bundle its screen asks for.
func Register(store *showcase.AssetStore) {
	for i := range len(cards.Suits) * cards.RanksPerSuit {
		suit, rank := i/cards.RanksPerSuit, i%cards.RanksPerSuit+1
		store.Register(CardBundle, cards.CardName(i), CardFace(suit, rank))
	}
	for i, name := range FireImages {
		store.Register(FireBundle, name, FireBlob(i))
	}
	for i, name := range IconImages {
		store.Register(TextBundle, name, Icon(i))
	}
}

// CardFace draws the face for suit (index into cards.Suits) and rank 1-13.
func CardFace(suit, rank int) *ebiten.Image {
	img := ebiten.NewImage(CardWidth, CardHeight)
	fillRoundedRect(img, 0, 0, CardWidth, CardHeight, 8, color.RGBA{0x99, 0x99, 0x99, 0xff})
	fillRoundedRect(img, 1, 1, CardWidth-2, CardHeight-2, 7, color.White)

	c := black
	if suit == 1 || suit == 2 {
		c = red
	}
	drawSuit(img, suit, CardWidth/2, CardHeight/2+6, 36, c)
	drawLabel(img, rankLabel(rank), 6, 4, c)
	return img
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return fmt.Sprint(rank)
	}
}

// drawLabel prints s with the debug font, recoloured to c.
func drawLabel(dst *ebiten.Image, s string, x, y int, c color.RGBA) {
	label := ebiten.NewImage(len(s)*6+2, 16)
	ebitenutil.DebugPrintAt(label, s, 0, 0)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(label, op)
	label.Deallocate()
}

func drawSuit(dst *ebiten.Image, suit int, cx, cy, s float32, c color.RGBA) {
	switch suit {
	case 0: // clubs
		r := s / 4.5
		vector.DrawFilledCircle(dst, cx, cy-s/4, r, c, true)
		vector.DrawFilledCircle(dst, cx-s/4, cy+s/12, r, c, true)
		vector.DrawFilledCircle(dst, cx+s/4, cy+s/12, r, c, true)
		fillPolygon(dst, c, cx, cy, cx-s/6, cy+s/2, cx+s/6, cy+s/2)
	case 1: // diamonds
		fillPolygon(dst, c, cx, cy-s/2, cx+s/3, cy, cx, cy+s/2, cx-s/3, cy)
	case 2: // hearts
		vector.DrawFilledCircle(dst, cx-s/4, cy-s/6, s/4, c, true)
		vector.DrawFilledCircle(dst, cx+s/4, cy-s/6, s/4, c, true)
		fillPolygon(dst, c, cx-s/2, cy-s/8, cx+s/2, cy-s/8, cx, cy+s/2)
	default: // spades
		vector.DrawFilledCircle(dst, cx-s/4, cy+s/8, s/4, c, true)
		vector.DrawFilledCircle(dst, cx+s/4, cy+s/8, s/4, c, true)
		fillPolygon(dst, c, cx-s/2, cy+s/12, cx+s/2, cy+s/12, cx, cy-s/2)
		fillPolygon(dst, c, cx, cy+s/8, cx-s/6, cy+s/2, cx+s/6, cy+s/2)
	}
}

// FireBlob draws the i-th soft white flame blob. Particles tint it.
func FireBlob(i int) *ebiten.Image {
	size := 48 + 8*(i%3)
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	const steps = 12
	for s := range steps {
		r := c * float32(steps-s) / steps
		a := uint8(255 * (s + 1) / steps / 3)
		vector.DrawFilledCircle(img, c, c, r, color.NRGBA{0xff, 0xff, 0xff, a}, true)
	}
	return img
}

// Icon draws the i-th inline icon. Their sizes differ so text lines show
// bottom alignment.
func Icon(i int) *ebiten.Image {
	switch i % 4 {
	case 0: // coin
		img := ebiten.NewImage(40, 40)
		vector.DrawFilledCircle(img, 20, 20, 20, color.RGBA{0xb8, 0x86, 0x0b, 0xff}, true)
		vector.DrawFilledCircle(img, 20, 20, 15, color.RGBA{0xff, 0xd7, 0x00, 0xff}, true)
		return img
	case 1: // gem
		img := ebiten.NewImage(36, 48)
		fillPolygon(img, color.RGBA{0x20, 0xb2, 0xaa, 0xff}, 18, 0, 36, 16, 18, 48, 0, 16)
		fillPolygon(img, color.RGBA{0x7f, 0xff, 0xd4, 0xff}, 18, 4, 28, 16, 18, 24, 8, 16)
		return img
	case 2: // chest
		img := ebiten.NewImage(64, 32)
		fillRoundedRect(img, 0, 0, 64, 32, 6, color.RGBA{0x6a, 0x3d, 0x9a, 0xff})
		vector.DrawFilledRect(img, 28, 10, 8, 12, color.RGBA{0xff, 0xd7, 0x00, 0xff}, true)
		return img
	default: // star
		img := ebiten.NewImage(28, 28)
		fillStar(img, 14, 14, 14, 6, color.RGBA{0xff, 0x45, 0x00, 0xff})
		return img
	}
}

// RoundedBox returns a w×h image filled with a rounded rectangle.
func RoundedBox(w, h int, radius float32, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	fillRoundedRect(img, 0, 0, float32(w), float32(h), radius, c)
	return img
}

// --- Path filling ---

var whiteSub *ebiten.Image

// whiteSubImage returns the centre pixel of a 3x3 white image, so sampling
// never bleeds in transparent edges.
func whiteSubImage() *ebiten.Image {
	if whiteSub == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSub
}

func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, c color.Color) {
	r = min(r, w/2, h/2)
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.Close()
	fillPath(dst, &p, c)
}

// fillPolygon fills the polygon through the given x, y pairs.
func fillPolygon(dst *ebiten.Image, c color.Color, xy ...float32) {
	if len(xy) < 6 {
		return
	}
	var p vector.Path
	p.MoveTo(xy[0], xy[1])
	for i := 2; i+1 < len(xy); i += 2 {
		p.LineTo(xy[i], xy[i+1])
	}
	p.Close()
	fillPath(dst, &p, c)
}

func fillStar(dst *ebiten.Image, cx, cy, outer, inner float32, c color.Color) {
	pts := make([]float32, 0, 20)
	for i := range 10 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)))
	}
	fillPolygon(dst, c, pts...)
}

func fillPath(dst *ebiten.Image, p *vector.Path, c color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}
