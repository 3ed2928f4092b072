package screens

import (
	"math/rand/v2"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/art"
	"github.com/phanxgames/showcase/internal/navigation"
	"github.com/phanxgames/showcase/specialtext"
)

// TextID identifies the rich text screen.
const TextID = "special-text"

const (
	textMaxWidth    = 900
	textTop         = 150
	newTextInterval = 2.0
	maxRandomWords  = 45
	boxRadius       = 10
	boxColor        = 0x2222ff
	initialText     = "Special Text Component\n\ncan contain text and graphics"
)

var (
	randomFamilies = []string{"Arial", "helvetica", "verdana", "Bungee regular"}
	randomWords    = []string{
		"Lorem", "ipsum", "dolor", "sit", "amet", "game", "images", "fun", "text",
		"[img1]", "[img2]", "[img3]", "[img4]", "some more text", "i am not a text! just kidding",
	}
)

// Text rebuilds a SpecialText with a random family, size and content every
// two seconds. A rounded box behind it shows the component's size.
type Text struct {
	base
	special *showcase.SpecialText
	box     *showcase.Node
	boxImg  *ebiten.Image
	ticker  *showcase.Timer
	w       float64
}

// TextSpec describes the rich text screen.
func TextSpec(env *Env) navigation.Spec {
	return navigation.Spec{
		ID:      TextID,
		Bundles: []string{art.TextBundle},
		New:     func() navigation.Screen { return NewText(env) },
	}
}

// NewText builds the rich text screen. The component is created on Show.
func NewText(env *Env) *Text {
	return &Text{base: newBase(env, TextID, "Text with images"), w: env.DesignWidth}
}

// Show creates the component with the initial text and starts the ticker
// once the fade completes.
func (s *Text) Show() {
	style := specialtext.DefaultStyle().WithPatch(specialtext.Fill(specialtext.Hex(0xffffff)))
	st, err := showcase.NewSpecialText("special-text", initialText, style, textMaxWidth, s.env.Fonts, s.env.Assets)
	if err != nil {
		s.env.logf("text: %v", err)
		return
	}
	s.special = st
	s.box = showcase.NewSprite("special-text-box", nil)
	s.node.AddChild(s.box)
	s.node.AddChild(st.Node())
	s.place()
	s.drawBox()

	fade := s.fadeIn()
	fade.OnComplete = func() {
		s.ticker = s.anim.Every(newTextInterval, s.randomize)
	}
}

// randomize picks a new family and size without rebuilding, then sets
// random text, which rebuilds once.
func (s *Text) randomize() {
	if s.special == nil {
		return
	}
	family := randomFamilies[intN(s.env.Rand, len(randomFamilies))]
	size := float64N(s.env.Rand)*50 + 10
	if err := s.special.SetStyle(specialtext.Patches(specialtext.FontFamily(family), specialtext.FontSize(size)), false); err != nil {
		s.env.logf("text: %v", err)
	}
	if err := s.special.SetText(RandomText(s.env.Rand)); err != nil {
		s.env.logf("text: %v", err)
	}
	s.drawBox()
}

// drawBox redraws the box to the component's current height.
func (s *Text) drawBox() {
	if s.box == nil {
		return
	}
	if s.boxImg != nil {
		s.boxImg.Deallocate()
	}
	s.boxImg = art.RoundedBox(textMaxWidth, int(s.special.Height()), boxRadius, specialtext.Hex(boxColor))
	s.box.SetImage(s.boxImg)
}

func (s *Text) place() {
	x := (s.w - textMaxWidth) / 2
	if s.special != nil {
		s.special.Node().SetPosition(x, textTop)
	}
	if s.box != nil {
		s.box.SetPosition(x, textTop)
	}
}

// Hide stops the ticker and removes the component and its box.
func (s *Text) Hide() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.anim.Kill(s.node)
	if s.box != nil {
		s.box.Dispose()
		s.box = nil
	}
	if s.boxImg != nil {
		s.boxImg.Deallocate()
		s.boxImg = nil
	}
	if s.special != nil {
		s.special.Node().Dispose()
		s.special = nil
	}
}

// Resize centres the heading, the component and its box.
func (s *Text) Resize(w, _ float64) {
	s.w = w
	s.resizeTitle(w)
	s.place()
}

// Special returns the component while the screen is shown.
func (s *Text) Special() *showcase.SpecialText { return s.special }

// RandomText joins between 1 and 45 random words and image markups.
func RandomText(rng *rand.Rand) string {
	n := intN(rng, maxRandomWords) + 1
	var b strings.Builder
	for range n {
		b.WriteString(randomWords[intN(rng, len(randomWords))])
		b.WriteByte(' ')
	}
	return b.String()
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}

func float64N(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}
