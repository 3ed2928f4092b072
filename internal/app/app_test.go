package app

import (
	"flag"
	"testing"

	"github.com/phanxgames/showcase/internal/screens"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-width", "800", "-seed", "7", "-screen", "fire", "-fps=false", "-debug"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != DesignHeight {
		t.Errorf("size = %dx%d, want 800x%d", cfg.Width, cfg.Height, DesignHeight)
	}
	if cfg.Seed != 7 || cfg.Screen != "fire" || cfg.FPS || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want 60", cfg.TPS)
	}
}

func TestLogicalSize(t *testing.T) {
	cases := []struct {
		ow, oh, w, h int
	}{
		{DesignWidth, DesignHeight, DesignWidth, DesignHeight},
		{2062, 1160, DesignWidth, DesignHeight},
		{2062, 580, 2062, 580},
		{1031, 1160, 1031, 1160},
		{500, 290, DesignWidth, 598},
	}
	for _, c := range cases {
		w, h := LogicalSize(c.ow, c.oh)
		if w != c.w || h != c.h {
			t.Errorf("LogicalSize(%d, %d) = %dx%d, want %dx%d", c.ow, c.oh, w, h, c.w, c.h)
		}
	}
}

func newTestGame(t *testing.T, screen string) *Game {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = 1
	cfg.FPS = false
	cfg.Screen = screen
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewShowsFirstScreen(t *testing.T) {
	g := newTestGame(t, screens.TitleID)
	if _, ok := g.Navigator().Current().(*screens.Title); !ok {
		t.Fatalf("current = %T, want *screens.Title", g.Navigator().Current())
	}
	if g.Menu().Active() != screens.TitleID {
		t.Errorf("active = %q, want %q", g.Menu().Active(), screens.TitleID)
	}
	if n := len(g.Menu().Buttons()); n != len(menuEntries) {
		t.Errorf("buttons = %d, want %d", n, len(menuEntries))
	}
}

func TestNewUnknownScreen(t *testing.T) {
	cfg := NewConfig()
	cfg.Screen = "nope"
	if _, err := New(cfg); err == nil {
		t.Error("expected an error for an unknown screen")
	}
	cfg.Screen = screens.LoadID
	if _, err := New(cfg); err == nil {
		t.Error("the load screen should not be a valid first screen")
	}
}

func TestMenuNavigates(t *testing.T) {
	g := newTestGame(t, screens.TitleID)
	g.Menu().OnNavigate(g.specs[screens.CardsID])
	if _, ok := g.Navigator().Current().(*screens.Cards); !ok {
		t.Fatalf("current = %T, want *screens.Cards", g.Navigator().Current())
	}
	if g.Menu().Active() != screens.CardsID {
		t.Errorf("active = %q, want %q", g.Menu().Active(), screens.CardsID)
	}
	for _, b := range g.Menu().Buttons() {
		if want := b.Name != "menu-Cards"; b.Interactable != want {
			t.Errorf("%s Interactable = %v, want %v", b.Name, b.Interactable, want)
		}
	}
}

func TestLayoutForwardsLogicalSize(t *testing.T) {
	g := newTestGame(t, screens.FireID)
	w, h := g.Layout(2062, 580)
	if w != 2062 || h != 580 {
		t.Fatalf("Layout = %dx%d, want 2062x580", w, h)
	}
	if nw, nh := g.Navigator().Size(); nw != 2062 || nh != 580 {
		t.Errorf("navigator size = %vx%v", nw, nh)
	}
	if x := g.Menu().Node().X; x != 1031 {
		t.Errorf("menu X = %v, want 1031", x)
	}
	if w, h := g.Layout(0, 0); w != 2062 || h != 580 {
		t.Errorf("Layout(0, 0) = %dx%d, want the last size", w, h)
	}
}
