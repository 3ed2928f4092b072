package screens

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/art"
	"github.com/phanxgames/showcase/internal/navigation"
)

const (
	testW = 1031
	testH = 580
)

func newTestEnv(t *testing.T) *Env {
	t.Helper()
	fonts := showcase.NewFontBook()
	if err := showcase.LoadGoFonts(fonts); err != nil {
		t.Fatalf("LoadGoFonts: %v", err)
	}
	fonts.Alias(HeadingFamily, "Go Bold")
	fonts.Alias(BodyFamily, "Go Italic")
	assets := showcase.NewAssetStore()
	art.Register(assets)
	return &Env{
		DesignWidth:  testW,
		DesignHeight: testH,
		Fonts:        fonts,
		Assets:       assets,
		Rand:         rand.New(rand.NewPCG(1, 2)),
	}
}

// run ticks u for the given seconds at 60 fps.
func run(u navigation.Updater, seconds float64) {
	const dt = 1.0 / 60
	for i := 0; i < int(math.Round(seconds/dt)); i++ {
		u.Update(dt)
	}
}

func TestSpecs(t *testing.T) {
	specs := Specs(newTestEnv(t))
	want := map[string]string{
		TitleID: "",
		CardsID: art.CardBundle,
		TextID:  art.TextBundle,
		FireID:  art.FireBundle,
		LoadID:  "",
	}
	if len(specs) != len(want) {
		t.Fatalf("len(specs) = %d, want %d", len(specs), len(want))
	}
	for id, bundle := range want {
		s, ok := specs[id]
		if !ok {
			t.Errorf("missing spec %q", id)
			continue
		}
		if bundle == "" && len(s.Bundles) != 0 {
			t.Errorf("%s bundles = %v, want none", id, s.Bundles)
		}
		if bundle != "" && (len(s.Bundles) != 1 || s.Bundles[0] != bundle) {
			t.Errorf("%s bundles = %v, want [%s]", id, s.Bundles, bundle)
		}
		if s.New == nil || s.New() == nil {
			t.Errorf("%s has no constructor", id)
		}
	}
}

func TestFadeIn(t *testing.T) {
	s := NewTitle(newTestEnv(t))
	s.Show()
	if s.Node().Alpha != 0 {
		t.Fatalf("Alpha after Show = %v, want 0", s.Node().Alpha)
	}
	run(s, 0.15)
	if s.Node().Alpha != 0 {
		t.Errorf("Alpha during delay = %v, want 0", s.Node().Alpha)
	}
	run(s, 0.5)
	if s.Node().Alpha != 1 {
		t.Errorf("Alpha after fade = %v, want 1", s.Node().Alpha)
	}
}

func TestTitleResize(t *testing.T) {
	s := NewTitle(newTestEnv(t))
	s.Resize(1200, 700)
	if s.title.X != 600 || s.title.Y != 0 {
		t.Errorf("title at (%v, %v), want (600, 0)", s.title.X, s.title.Y)
	}
	if s.intro == nil {
		t.Fatal("intro was not built")
	}
	if s.intro.Width() > testW-50 {
		t.Errorf("intro width = %v, exceeds %v", s.intro.Width(), testW-50)
	}
	wantX := (1200 - s.intro.Width()) / 2
	if n := s.intro.Node(); math.Abs(n.X-wantX) > 1e-9 || n.Y != 120 {
		t.Errorf("intro at (%v, %v), want (%v, 120)", n.X, n.Y, wantX)
	}
}

func TestCardsShowDealsLeftStack(t *testing.T) {
	s := NewCards(newTestEnv(t))
	s.Show()
	left, right := s.Stacks()
	if left.Len() != totalCards || right.Len() != 0 {
		t.Fatalf("stacks = %d/%d, want %d/0", left.Len(), right.Len(), totalCards)
	}
	if left.Node().X != stackMargin || left.Node().Y != testH-80 {
		t.Errorf("left stack at (%v, %v)", left.Node().X, left.Node().Y)
	}
	if right.Node().X != testW-stackMargin {
		t.Errorf("right stack X = %v, want %v", right.Node().X, testW-stackMargin)
	}
	if !s.Node().CacheAsBitmap() {
		t.Error("screen should be cached while fading in")
	}
	top := left.Node().ChildAt(left.Node().NumChildren() - 1)
	if top.Y != -totalCards {
		t.Errorf("top card Y = %v, want %d", top.Y, -totalCards)
	}
}

func TestCardsMoveAfterFade(t *testing.T) {
	s := NewCards(newTestEnv(t))
	s.Show()
	run(s, 0.5)
	if s.Node().CacheAsBitmap() {
		t.Error("cache should be released after the fade")
	}
	left, right := s.Stacks()
	if right.Len() != 0 {
		t.Fatalf("card moved before the first interval")
	}
	run(s, 1.0)
	if right.Len() != 1 || left.Len() != totalCards-1 {
		t.Errorf("stacks = %d/%d, want %d/1", left.Len(), right.Len(), totalCards-1)
	}
}

func TestCardsFlightLandsOnRightStack(t *testing.T) {
	s := NewCards(newTestEnv(t))
	s.Show()
	left, right := s.Stacks()
	card := left.Node().ChildAt(left.Node().NumChildren() - 1)
	startY := left.Node().Y - totalCards
	s.moveCard()
	if card.Parent != s.container {
		t.Fatal("flying card should be a child of the container")
	}

	peak := math.Inf(1)
	const dt = 1.0 / 60
	for range 126 {
		s.Update(dt)
		peak = min(peak, card.Y)
	}
	wantX, wantY := right.Node().X, right.Node().Y-1
	if math.Abs(card.X-wantX) > 1e-6 || math.Abs(card.Y-wantY) > 1e-6 {
		t.Errorf("card at (%v, %v), want (%v, %v)", card.X, card.Y, wantX, wantY)
	}
	if wantPeak := min(startY, wantY) - archHeight; math.Abs(peak-wantPeak) > 1 {
		t.Errorf("arc peak = %v, want about %v", peak, wantPeak)
	}
}

func TestCardsHide(t *testing.T) {
	s := NewCards(newTestEnv(t))
	s.Show()
	run(s, 1.5)
	s.Hide()
	if s.container.NumChildren() != 0 {
		t.Errorf("container children = %d, want 0", s.container.NumChildren())
	}
	if s.anim.Len() != 0 {
		t.Errorf("animator len = %d, want 0", s.anim.Len())
	}

	// Showing again deals a fresh deck.
	s.Show()
	left, _ := s.Stacks()
	if left.Len() != totalCards {
		t.Errorf("left stack = %d after reshow, want %d", left.Len(), totalCards)
	}
}

func TestCardsResizeCentresContainer(t *testing.T) {
	s := NewCards(newTestEnv(t))
	s.Resize(1231, 600)
	if s.container.X != 100 {
		t.Errorf("container X = %v, want 100", s.container.X)
	}
}

func TestTextShow(t *testing.T) {
	s := NewText(newTestEnv(t))
	s.Resize(1100, 600)
	s.Show()
	st := s.Special()
	if st == nil {
		t.Fatal("component was not created")
	}
	if st.Text() != initialText {
		t.Errorf("Text = %q", st.Text())
	}
	if n := st.Node(); n.X != 100 || n.Y != textTop {
		t.Errorf("component at (%v, %v), want (100, %d)", n.X, n.Y, textTop)
	}
	if s.box.X != 100 || s.box.Y != textTop {
		t.Errorf("box at (%v, %v), want (100, %d)", s.box.X, s.box.Y, textTop)
	}
	b := s.box.Image.Bounds()
	if b.Dx() != textMaxWidth || b.Dy() != int(st.Height()) {
		t.Errorf("box = %dx%d, want %dx%d", b.Dx(), b.Dy(), textMaxWidth, int(st.Height()))
	}
}

func TestTextRandomizes(t *testing.T) {
	s := NewText(newTestEnv(t))
	s.Show()
	run(s, 0.5+newTextInterval)
	st := s.Special()
	if st.Text() == initialText {
		t.Fatal("text was not randomized")
	}
	style := st.Style()
	found := false
	for _, f := range randomFamilies {
		found = found || f == style.FontFamily
	}
	if !found {
		t.Errorf("family = %q, not one of %v", style.FontFamily, randomFamilies)
	}
	if style.FontSize < 10 || style.FontSize >= 60 {
		t.Errorf("size = %v, want [10, 60)", style.FontSize)
	}
	if w := st.Width(); w > textMaxWidth {
		t.Errorf("width = %v, exceeds %d", w, textMaxWidth)
	}
	if b := s.box.Image.Bounds(); b.Dy() != max(int(st.Height()), 1) {
		t.Errorf("box height = %d, want %d", b.Dy(), int(st.Height()))
	}
}

func TestTextHide(t *testing.T) {
	s := NewText(newTestEnv(t))
	s.Show()
	st := s.Special()
	s.Hide()
	if s.Special() != nil || s.box != nil {
		t.Error("component should be released on hide")
	}
	if !st.Node().IsDisposed() {
		t.Error("component node should be disposed")
	}
	run(s, 5)
}

func TestRandomText(t *testing.T) {
	a := RandomText(rand.New(rand.NewPCG(7, 7)))
	b := RandomText(rand.New(rand.NewPCG(7, 7)))
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
	for i := range 50 {
		s := RandomText(rand.New(rand.NewPCG(uint64(i), 0)))
		if s == "" || !strings.HasSuffix(s, " ") {
			t.Errorf("RandomText = %q", s)
		}
	}
}

func TestFireShow(t *testing.T) {
	s := NewFire(newTestEnv(t))
	s.Show()
	e := s.Effect()
	if e == nil || e.Len() != particleCount {
		t.Fatalf("effect = %v, want %d particles", e, particleCount)
	}
	if e.Node().Alpha != 0 {
		t.Errorf("effect alpha = %v, want 0", e.Node().Alpha)
	}
	run(s, 2)
	if e.Node().Alpha != 1 {
		t.Errorf("effect alpha after fade = %v, want 1", e.Node().Alpha)
	}
}

func TestFireEmitterSwings(t *testing.T) {
	s := NewFire(newTestEnv(t))
	s.Resize(800, 400)
	s.Show()
	const dt = 1.0 / 60
	s.Update(dt)
	x, y := s.Effect().EmitterPosition()
	wantX := math.Cos(dt*framesPerSec*emitterSpeed)*emitterSwing + 400
	if math.Abs(x-wantX) > 1e-9 || y != 200 {
		t.Errorf("emitter = (%v, %v), want (%v, 200)", x, y, wantX)
	}
}

func TestFireHide(t *testing.T) {
	s := NewFire(newTestEnv(t))
	s.Show()
	e := s.Effect()
	s.Hide()
	if !e.Node().IsDisposed() || s.Effect() != nil {
		t.Error("effect should be disposed on hide")
	}
	s.Update(1.0 / 60)
}

func TestLoadPrepare(t *testing.T) {
	s := NewLoad(newTestEnv(t))
	s.Show()
	s.Prepare(navigation.Progress{Value: 0.5})
	if s.label.TextBlock.Content != "Loading 50%" {
		t.Errorf("label = %q", s.label.TextBlock.Content)
	}
	if s.Progress() != 0.5 {
		t.Errorf("Progress = %v, want 0.5", s.Progress())
	}
	s.Prepare("ignored")
	if s.Progress() != 0.5 {
		t.Errorf("Progress changed on non-progress data")
	}
	s.Show()
	if s.label.TextBlock.Content != "Loading" {
		t.Errorf("label after reshow = %q", s.label.TextBlock.Content)
	}
}

func TestLoadResize(t *testing.T) {
	s := NewLoad(newTestEnv(t))
	s.Resize(800, 600)
	if s.label.X != 400 || s.label.Y != 300 {
		t.Errorf("label at (%v, %v), want (400, 300)", s.label.X, s.label.Y)
	}
}
