// Package app wires the scene, navigation, menu and screens into an
// ebiten.Game.
package app

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/art"
	"github.com/phanxgames/showcase/internal/navigation"
	"github.com/phanxgames/showcase/internal/screens"
)

// Families the screens and the text demo ask for, mapped to the embedded
// Go fonts.
var fontAliases = map[string]string{
	"Arial":               "Go",
	"helvetica":           "Go Medium",
	"verdana":             "Go Italic",
	screens.BodyFamily:    "Go Italic",
	screens.HeadingFamily: "Go Bold",
}

// menuEntries are the menu buttons, left to right.
var menuEntries = []struct{ name, id string }{
	{"Title", screens.TitleID},
	{"Cards", screens.CardsID},
	{"Text", screens.TextID},
	{"Fire", screens.FireID},
}

// Game adapts the showcase scene to the ebiten.Game interface.
type Game struct {
	cfg   *Config
	scene *showcase.Scene
	nav   *navigation.Navigator
	menu  *navigation.Menu
	env   *screens.Env
	specs map[string]navigation.Spec

	outsideW, outsideH int
	w, h               int
}

// New builds the game and shows cfg.Screen.
func New(cfg *Config) (*Game, error) {
	fonts := showcase.NewFontBook()
	if err := showcase.LoadGoFonts(fonts); err != nil {
		return nil, fmt.Errorf("app: fonts: %w", err)
	}
	for alias, family := range fontAliases {
		fonts.Alias(alias, family)
	}

	assets := showcase.NewAssetStore()
	if cfg.Assets != "" {
		if err := assets.LoadManifest(os.DirFS(cfg.Assets), ManifestName); err != nil {
			return nil, fmt.Errorf("app: assets: %w", err)
		}
	} else {
		art.Register(assets)
	}

	var logger *log.Logger
	if cfg.Debug {
		logger = log.New(os.Stderr, "[showcase] ", 0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	g := &Game{
		cfg:   cfg,
		scene: showcase.NewScene(),
		w:     DesignWidth,
		h:     DesignHeight,
		env: &screens.Env{
			DesignWidth:  DesignWidth,
			DesignHeight: DesignHeight,
			Fonts:        fonts,
			Assets:       assets,
			Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
			Logger:       logger,
		},
	}
	g.scene.ClearColor = showcase.RGB(0x000000)
	g.scene.SetDebugMode(cfg.Debug)
	g.specs = screens.Specs(g.env)

	g.nav = navigation.New(assets)
	g.nav.Logger = logger
	if err := g.nav.SetLoadScreen(g.specs[screens.LoadID]); err != nil {
		return nil, err
	}
	g.nav.Resize(DesignWidth, DesignHeight)

	g.menu = navigation.NewMenu(fonts.Font(screens.HeadingFamily, 20))
	for _, e := range menuEntries {
		g.menu.Add(e.name, g.specs[e.id])
	}
	g.menu.OnNavigate = func(spec navigation.Spec) {
		if err := g.navigateTo(spec); err != nil {
			log.Printf("showcase: %v", err)
		}
	}
	g.menu.Resize(DesignWidth, DesignHeight)

	root := g.scene.Root()
	root.AddChild(g.nav.Node())
	root.AddChild(g.menu.Node())
	if cfg.FPS {
		root.AddChild(showcase.NewFPSWidget())
	}

	first, ok := g.specs[cfg.Screen]
	if !ok || first.ID == screens.LoadID {
		return nil, fmt.Errorf("app: unknown screen %q", cfg.Screen)
	}
	if err := g.navigateTo(first); err != nil {
		return nil, err
	}
	return g, nil
}

// navigateTo shows spec and marks it active in the menu.
func (g *Game) navigateTo(spec navigation.Spec) error {
	if err := g.nav.GoToScreen(spec, nil); err != nil {
		return err
	}
	g.menu.SetActive(spec)
	return nil
}

// Update ticks the attached screens and then the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	dt := 1 / float64(max(g.cfg.TPS, 1))
	g.nav.Update(dt)
	g.scene.Step(dt)
	return nil
}

// Draw renders the scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout returns the logical screen size. The view keeps the window's
// aspect ratio and is scaled so it is never smaller than the design size in
// either direction.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.w, g.h
	}
	if outsideWidth == g.outsideW && outsideHeight == g.outsideH {
		return g.w, g.h
	}
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	w, h := LogicalSize(outsideWidth, outsideHeight)
	g.w, g.h = w, h
	g.nav.Resize(float64(w), float64(h))
	g.menu.Resize(float64(w), float64(h))
	return w, h
}

// LogicalSize scales a window size so it covers the design size.
func LogicalSize(outsideWidth, outsideHeight int) (int, int) {
	ow, oh := float64(outsideWidth), float64(outsideHeight)
	scale := max(DesignWidth/ow, DesignHeight/oh)
	return int(math.Round(ow * scale)), int(math.Round(oh * scale))
}

// Navigator returns the game's navigator.
func (g *Game) Navigator() *navigation.Navigator { return g.nav }

// Menu returns the navigation menu.
func (g *Game) Menu() *navigation.Menu { return g.menu }

// Scene returns the scene drawn by the game.
func (g *Game) Scene() *showcase.Scene { return g.scene }
