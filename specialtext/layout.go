package specialtext

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Measurer returns the rendered size of a text run in the given style.
type Measurer interface {
	MeasureText(text string, style Style) Size
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string, style Style) Size

// MeasureText calls f(text, style).
func (f MeasureFunc) MeasureText(text string, style Style) Size { return f(text, style) }

// ImageSizer returns the natural size of a named image. It returns an error
// when the name cannot be resolved.
type ImageSizer interface {
	ImageSize(name string) (Size, error)
}

// ImageSizeFunc adapts a function to the ImageSizer interface.
type ImageSizeFunc func(name string) (Size, error)

// ImageSize calls f(name).
func (f ImageSizeFunc) ImageSize(name string) (Size, error) { return f(name) }

// ItemKind distinguishes text items from image items.
type ItemKind uint8

const (
	ItemText ItemKind = iota
	ItemImage
)

// String returns a short name for the kind.
func (k ItemKind) String() string {
	if k == ItemImage {
		return "image"
	}
	return "text"
}

// Item is one positioned primitive. X is the left edge and Y the bottom edge;
// all items on a line share the same Y.
type Item struct {
	Kind    ItemKind
	Content string // text run, or image name
	X, Y    float64
	Width   float64
	Height  float64
	Line    int // zero-based line index
}

// Top returns the item's top edge.
func (it Item) Top() float64 {
	return it.Y - it.Height
}

// Layout is the result of one build pass.
type Layout struct {
	Items  []Item
	Width  float64 // widest line
	Height float64 // sum of all line heights
	Lines  int     // number of lines holding at least one item
}

// validMaxWidth reports whether w can be used as a wrap width.
func validMaxWidth(w float64) bool {
	return w > 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}

// Build lays out tokens inside maxWidth. Text runs are wrapped on spaces
// using m; image sizes come from images, which may be nil when tokens contain
// no image references.
//
// A fragment is flushed, and an item moved to the next line, only when it
// would extend past maxWidth; an item ending exactly at maxWidth still fits.
// An item wider than maxWidth is placed alone on its own line and never split.
func Build(tokens []Token, style Style, maxWidth float64, m Measurer, images ImageSizer) (Layout, error) {
	if !validMaxWidth(maxWidth) {
		return Layout{}, fmt.Errorf("%w: got %v", ErrInvalidMaxWidth, maxWidth)
	}
	if m == nil {
		return Layout{}, ErrNoMeasurer
	}

	b := builder{style: style, maxWidth: maxWidth, measure: m, images: images}
	for _, t := range tokens {
		switch t.Kind {
		case TokenImage:
			if err := b.addImage(t.Value); err != nil {
				return Layout{}, err
			}
		case TokenNewLine:
			b.closeLine()
		default:
			b.addText(t.Value)
		}
	}
	b.closeLine()

	return Layout{Items: b.items, Width: b.width, Height: b.y, Lines: b.lines}, nil
}

// builder holds the state of one build pass: the committed items, the open
// line and the cursor.
type builder struct {
	style    Style
	maxWidth float64
	measure  Measurer
	images   ImageSizer

	items []Item
	line  []int // indices into items for the open line

	x, y       float64
	lineHeight float64
	lines      int
	width      float64
}

func (b *builder) addImage(name string) error {
	if b.images == nil {
		return fmt.Errorf("%w: %q", ErrUnresolvedAsset, name)
	}
	sz, err := b.images.ImageSize(name)
	if err != nil {
		if errors.Is(err, ErrUnresolvedAsset) {
			return err
		}
		return fmt.Errorf("%w: %q: %w", ErrUnresolvedAsset, name, err)
	}
	b.addToLine(Item{Kind: ItemImage, Content: name, Width: sz.Width, Height: sz.Height})
	return nil
}

// addText splits run on spaces and commits as few text items as possible:
// words are gathered into one fragment until the next word would overflow
// the line, then the fragment becomes an item. Spaces leading the run are
// dropped; runs of spaces between or after words are kept.
func (b *builder) addText(run string) {
	words := strings.Split(run, " ")
	var frag string
	for i, w := range words {
		if w == "" && (frag == "" || i == len(words)-1) {
			continue
		}
		if i < len(words)-1 {
			w += " "
		}
		if frag != "" && b.x+b.measure.MeasureText(frag+w, b.style).Width > b.maxWidth {
			b.addFragment(frag)
			frag = ""
		}
		frag += w
	}
	if frag != "" {
		b.addFragment(frag)
	}
}

func (b *builder) addFragment(frag string) {
	sz := b.measure.MeasureText(frag, b.style)
	b.addToLine(Item{Kind: ItemText, Content: frag, Width: sz.Width, Height: sz.Height})
}

// addToLine places it on the open line, closing the line first when it
// would overflow.
func (b *builder) addToLine(it Item) {
	if len(b.line) > 0 && b.x+it.Width > b.maxWidth {
		b.closeLine()
	}
	it.X = b.x
	it.Line = b.lines
	b.x += it.Width
	if it.Height > b.lineHeight {
		b.lineHeight = it.Height
	}
	b.line = append(b.line, len(b.items))
	b.items = append(b.items, it)
}

// closeLine moves the cursor down by the line's height and bottom-aligns every
// item of the line on the new y.
func (b *builder) closeLine() {
	if len(b.line) > 0 {
		b.y += b.lineHeight
		for _, idx := range b.line {
			b.items[idx].Y = b.y
		}
		if b.x > b.width {
			b.width = b.x
		}
		b.lines++
	}
	b.line = b.line[:0]
	b.x = 0
	b.lineHeight = 0
}
