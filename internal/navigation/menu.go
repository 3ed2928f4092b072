package navigation

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/showcase"
)

// Menu button colours.
var (
	ActiveColor   = showcase.RGB(0xffff00)
	InactiveColor = showcase.RGB(0xeeeeee)
)

const (
	menuSpacing = 10
	menuTop     = 50
)

// Option is one menu entry.
type Option struct {
	Name string
	Spec Spec
}

// Menu is a row of text buttons, one per Option, centred at the top of the
// window. The button for the active screen is yellow and not clickable.
type Menu struct {
	// OnNavigate is called with the option's Spec when a button is clicked.
	OnNavigate func(Spec)

	node    *showcase.Node
	font    showcase.Font
	options []Option
	buttons []*showcase.Node
	active  string
	width   float64
}

// NewMenu returns an empty menu whose buttons use font.
func NewMenu(font showcase.Font) *Menu {
	return &Menu{
		node: showcase.NewContainer("menu"),
		font: font,
	}
}

// Node returns the menu's container.
func (m *Menu) Node() *showcase.Node {
	return m.node
}

// Add appends an option. Call Draw or SetActive to show it.
func (m *Menu) Add(name string, spec Spec) {
	m.options = append(m.options, Option{Name: name, Spec: spec})
}

// Options returns the menu entries in order.
func (m *Menu) Options() []Option {
	return m.options
}

// Buttons returns the button nodes from the last Draw.
func (m *Menu) Buttons() []*showcase.Node {
	return m.buttons
}

// SetActive marks the option for spec as active and redraws.
func (m *Menu) SetActive(spec Spec) {
	m.active = spec.ID
	m.Draw()
}

// Active returns the ID of the active screen.
func (m *Menu) Active() string {
	return m.active
}

// Draw rebuilds the buttons left to right and recentres the menu.
func (m *Menu) Draw() {
	for _, b := range m.buttons {
		b.Dispose()
	}
	m.buttons = m.buttons[:0]

	x := 0.0
	total := 0.0
	for _, opt := range m.options {
		b := m.button(opt)
		b.SetPosition(x, 0)
		m.node.AddChild(b)
		w, _ := b.Size()
		total = x + w
		x += w + menuSpacing
		m.buttons = append(m.buttons, b)
	}
	m.node.SetPivot(total/2, 0)
	m.node.SetPosition(m.width/2, menuTop)
}

func (m *Menu) button(opt Option) *showcase.Node {
	b := showcase.NewText("menu-"+opt.Name, opt.Name, m.font)
	if opt.Spec.ID == m.active {
		b.TextBlock.Color = ActiveColor
		return b
	}
	b.TextBlock.Color = InactiveColor
	b.Interactable = true
	b.Cursor = ebiten.CursorShapePointer
	spec := opt.Spec
	b.OnClick = func(showcase.PointerContext) {
		if m.OnNavigate != nil {
			m.OnNavigate(spec)
		}
	}
	return b
}

// Resize recentres the menu for a window of width w.
func (m *Menu) Resize(w, _ float64) {
	m.width = w
	m.node.SetPosition(w/2, menuTop)
}
