package showcase

import (
	"errors"
	"image/color"

	"github.com/phanxgames/showcase/specialtext"
)

// ErrNoFonts is returned by NewSpecialText for a FontBook with no families,
// which would measure every run as zero wide.
var ErrNoFonts = errors.New("showcase: font book has no fonts")

// SpecialText displays marked-up text with inline images. Text between
// brackets names an image in the AssetStore, so "fire [img1] hot" draws
// the img1 image between the two words. Each laid-out item becomes a child
// node of Node(), bottom-anchored at its line.
type SpecialText struct {
	node   *Node
	text   *specialtext.Text
	fonts  *FontBook
	assets *AssetStore
}

// NewSpecialText lays out content with style inside maxWidth using fonts
// for measurement and assets for images.
func NewSpecialText(name, content string, style specialtext.Style, maxWidth float64, fonts *FontBook, assets *AssetStore) (*SpecialText, error) {
	if fonts == nil || fonts.Families() == 0 {
		return nil, ErrNoFonts
	}
	env := specialtext.Env{Measurer: fonts}
	if assets != nil {
		env.Images = assets
	}
	t, err := specialtext.New(content, style, maxWidth, env)
	if err != nil {
		return nil, err
	}
	st := &SpecialText{
		node:   NewContainer(name),
		text:   t,
		fonts:  fonts,
		assets: assets,
	}
	st.realize()
	return st, nil
}

// Node returns the container holding the realized items.
func (st *SpecialText) Node() *Node {
	return st.node
}

// SetText replaces the content and rebuilds. On error the previous items
// stay on screen.
func (st *SpecialText) SetText(content string) error {
	if err := st.text.SetText(content); err != nil {
		return err
	}
	st.realize()
	return nil
}

// SetStyle applies patch. With rebuild false nothing on screen changes until
// the next SetText or SetMaxWidth.
func (st *SpecialText) SetStyle(patch specialtext.Patch, rebuild bool) error {
	if err := st.text.SetStyle(patch, rebuild); err != nil {
		return err
	}
	if rebuild {
		st.realize()
	}
	return nil
}

// SetMaxWidth changes the wrap width and rebuilds.
func (st *SpecialText) SetMaxWidth(w float64) error {
	if err := st.text.SetMaxWidth(w); err != nil {
		return err
	}
	st.realize()
	return nil
}

// Text returns the current content.
func (st *SpecialText) Text() string { return st.text.Text() }

// Style returns the current style.
func (st *SpecialText) Style() specialtext.Style { return st.text.Style() }

// Width returns the width of the widest line.
func (st *SpecialText) Width() float64 { return st.text.Width() }

// Height returns the total height of the lines.
func (st *SpecialText) Height() float64 { return st.text.Height() }

// Layout returns the committed layout.
func (st *SpecialText) Layout() specialtext.Layout { return st.text.Layout() }

// Items returns a copy of the laid-out items.
func (st *SpecialText) Items() []specialtext.Item { return st.text.Items() }

// Issues returns the stray brackets found in the current content.
func (st *SpecialText) Issues() []specialtext.MarkupIssue { return st.text.Issues() }

// realize replaces the container's children with one node per item.
func (st *SpecialText) realize() {
	for len(st.node.children) > 0 {
		st.node.children[len(st.node.children)-1].Dispose()
	}
	style := st.text.Style()
	for _, it := range st.text.Layout().Items {
		var n *Node
		switch it.Kind {
		case specialtext.ItemText:
			n = NewText("item", it.Content, st.fonts.Font(style.FontFamily, style.FontSize))
			n.TextBlock.Color = colorOf(style.Fill)
			if style.StrokeThickness > 0 {
				n.TextBlock.Outline = &Outline{Color: colorOf(style.Stroke), Thickness: style.StrokeThickness}
			}
		case specialtext.ItemImage:
			img, err := st.assets.Image(it.Content)
			if err != nil {
				// Build already resolved every image.
				continue
			}
			n = NewSprite(it.Content, img)
		default:
			continue
		}
		n.SetPosition(it.X, it.Y)
		n.SetAnchor(0, 1)
		st.node.AddChild(n)
	}
}

// colorOf converts a straight-alpha 8-bit color.
func colorOf(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
