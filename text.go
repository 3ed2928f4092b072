package showcase

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/showcase/specialtext"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("showcase: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- FontBook ---

type fontKey struct {
	family string
	size   float64
}

// FontBook resolves font family names to TrueType sources. Family names are
// case-insensitive; unknown families fall back to the default family, the
// way a browser substitutes a missing font.
type FontBook struct {
	sources  map[string]*text.GoTextFaceSource
	aliases  map[string]string
	fallback string
	fonts    map[fontKey]*TTFFont
}

// NewFontBook returns an empty FontBook.
func NewFontBook() *FontBook {
	return &FontBook{
		sources: make(map[string]*text.GoTextFaceSource),
		aliases: make(map[string]string),
		fonts:   make(map[fontKey]*TTFFont),
	}
}

// Register parses ttf and makes it available as family. The first family
// registered becomes the default.
func (b *FontBook) Register(family string, ttf []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("showcase: font %q: %w", family, err)
	}
	key := strings.ToLower(family)
	b.sources[key] = source
	if b.fallback == "" {
		b.fallback = key
	}
	for k := range b.fonts {
		if k.family == key {
			delete(b.fonts, k)
		}
	}
	return nil
}

// Alias makes alias resolve to an already registered family.
func (b *FontBook) Alias(alias, family string) {
	b.aliases[strings.ToLower(alias)] = strings.ToLower(family)
}

// SetDefault selects the family used for unknown names.
func (b *FontBook) SetDefault(family string) {
	b.fallback = strings.ToLower(family)
}

// Families returns the number of registered families.
func (b *FontBook) Families() int {
	return len(b.sources)
}

func (b *FontBook) resolve(family string) string {
	key := strings.ToLower(family)
	if a, ok := b.aliases[key]; ok {
		key = a
	}
	if _, ok := b.sources[key]; ok {
		return key
	}
	return b.fallback
}

// Font returns the font for family at size, or nil when the book is empty.
// Fonts are cached per family and size.
func (b *FontBook) Font(family string, size float64) *TTFFont {
	key := fontKey{family: b.resolve(family), size: size}
	if f, ok := b.fonts[key]; ok {
		return f
	}
	source, ok := b.sources[key.family]
	if !ok {
		return nil
	}
	f := newTTFFont(source, size)
	b.fonts[key] = f
	return f
}

// Face returns the ebiten face for family at size, or nil when the book is
// empty.
func (b *FontBook) Face(family string, size float64) *text.GoTextFace {
	if f := b.Font(family, size); f != nil {
		return f.face
	}
	return nil
}

// MeasureText measures a single-line run in style. The stroke thickness is
// added to both dimensions to match what TextBlock renders.
func (b *FontBook) MeasureText(s string, style specialtext.Style) specialtext.Size {
	f := b.Font(style.FontFamily, style.FontSize)
	if f == nil {
		return specialtext.Size{}
	}
	w, h := f.MeasureString(s)
	return specialtext.Size{
		Width:  w + style.StrokeThickness,
		Height: h + style.StrokeThickness,
	}
}

// LoadGoFonts registers the Go font family under the names "Go",
// "Go Medium", "Go Bold", "Go Italic" and "Go Mono", with "Go" as default.
func LoadGoFonts(b *FontBook) error {
	fonts := []struct {
		name string
		ttf  []byte
	}{
		{"Go", goregular.TTF},
		{"Go Medium", gomedium.TTF},
		{"Go Bold", gobold.TTF},
		{"Go Italic", goitalic.TTF},
		{"Go Mono", gomono.TTF},
	}
	for _, f := range fonts {
		if err := b.Register(f.name, f.ttf); err != nil {
			return err
		}
	}
	b.SetDefault("Go")
	return nil
}

// --- Outline ---

// Outline defines a text stroke rendered behind the fill. Thickness is the
// total stroke width; half of it extends outside the glyphs.
type Outline struct {
	Color     Color
	Thickness float64
}

// --- TextBlock ---

// TextBlock holds text content, formatting, and a cached rendering. The
// rendering is refreshed whenever any exported field changes.
type TextBlock struct {
	Content    string
	Font       Font
	Align      TextAlign
	Color      Color
	Outline    *Outline
	LineHeight float64 // override; 0 = use Font.LineHeight()

	dirty     bool
	key       textKey
	measuredW float64
	measuredH float64
	image     *ebiten.Image
}

// textKey captures every input of the cached rendering.
type textKey struct {
	content string
	font    Font
	align   TextAlign
	color   Color
	outline Outline
	lh      float64
}

func (tb *TextBlock) currentKey() textKey {
	k := textKey{content: tb.Content, font: tb.Font, align: tb.Align, color: tb.Color, lh: tb.LineHeight}
	if tb.Outline != nil {
		k.outline = *tb.Outline
	}
	return k
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.LineHeight > 0 {
		return tb.LineHeight
	}
	if tb.Font != nil {
		return tb.Font.LineHeight()
	}
	return 0
}

func (tb *TextBlock) stroke() float64 {
	if tb.Outline != nil && tb.Outline.Thickness > 0 {
		return tb.Outline.Thickness
	}
	return 0
}

// refresh re-measures the block if any input changed and reports whether it did.
func (tb *TextBlock) refresh() bool {
	k := tb.currentKey()
	if !tb.dirty && k == tb.key {
		return false
	}
	tb.key = k
	tb.dirty = false
	if tb.Font == nil || tb.Content == "" {
		tb.measuredW, tb.measuredH = 0, 0
		return true
	}
	w, h := tb.measure()
	st := tb.stroke()
	tb.measuredW = w + st
	tb.measuredH = h + st
	return true
}

func (tb *TextBlock) measure() (float64, float64) {
	if f, ok := tb.Font.(*TTFFont); ok {
		return text.Measure(tb.Content, f.face, tb.lineHeight())
	}
	return tb.Font.MeasureString(tb.Content)
}

// Size returns the rendered size including the outline.
func (tb *TextBlock) Size() (w, h float64) {
	tb.refresh()
	return tb.measuredW, tb.measuredH
}

// Invalidate forces the next draw to re-render the text.
func (tb *TextBlock) Invalidate() {
	tb.dirty = true
}

// outlineOffsets are the eight directions the outline pass is stamped in.
var outlineOffsets = [8][2]float64{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// rendered returns the cached image of the text, re-rendering it when the
// inputs changed. Returns nil for empty or fontless blocks.
func (tb *TextBlock) rendered() *ebiten.Image {
	changed := tb.refresh()
	if tb.measuredW == 0 || tb.measuredH == 0 {
		return nil
	}
	f, ok := tb.Font.(*TTFFont)
	if !ok {
		return nil
	}
	if !changed && tb.image != nil {
		return tb.image
	}

	w := int(math.Ceil(tb.measuredW)) + 1
	h := int(math.Ceil(tb.measuredH)) + 1
	if tb.image != nil {
		b := tb.image.Bounds()
		if b.Dx() != w || b.Dy() != h {
			tb.image.Deallocate()
			tb.image = ebiten.NewImage(w, h)
		} else {
			tb.image.Clear()
		}
	} else {
		tb.image = ebiten.NewImage(w, h)
	}

	st := tb.stroke()
	originX := st / 2
	align := text.AlignStart
	switch tb.Align {
	case TextAlignCenter:
		originX = tb.measuredW / 2
		align = text.AlignCenter
	case TextAlignRight:
		originX = tb.measuredW - st/2
		align = text.AlignEnd
	}

	draw := func(dx, dy float64, c Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(originX+dx, st/2+dy)
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		op.LineSpacing = tb.lineHeight()
		op.PrimaryAlign = align
		text.Draw(tb.image, tb.Content, f.face, op)
	}

	if st > 0 {
		r := st / 2
		for _, off := range outlineOffsets {
			draw(off[0]*r, off[1]*r, tb.Outline.Color)
		}
	}
	draw(0, 0, tb.Color)
	return tb.image
}

func (tb *TextBlock) release() {
	if tb.image != nil {
		tb.image.Deallocate()
		tb.image = nil
	}
}
