// Package screens holds the showcase's screens: a title page, the card
// stacks, the rich text demo, the fire effect and the loading screen.
package screens

import (
	"log"
	"math/rand/v2"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/navigation"
)

// Font families the screens ask for. The app aliases them to the fonts it
// actually loads.
const (
	HeadingFamily = "Bungee regular"
	BodyFamily    = "Verdana"
)

// Env is shared by every screen.
type Env struct {
	DesignWidth  float64
	DesignHeight float64
	Fonts        *showcase.FontBook
	Assets       *showcase.AssetStore
	Rand         *rand.Rand
	// Logger receives non-fatal screen errors when non-nil.
	Logger *log.Logger
}

func (e *Env) logf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// base carries what every screen has: a root node, a heading and an
// animator ticked from Update.
type base struct {
	env   *Env
	node  *showcase.Node
	title *showcase.Node
	anim  *showcase.Animator
}

func newBase(env *Env, name, heading string) base {
	b := base{
		env:  env,
		node: showcase.NewContainer(name),
		anim: showcase.NewAnimator(),
	}
	if heading != "" {
		b.title = newHeading(env, name+"-title", heading, 30)
		b.title.SetAnchor(0.5, 0)
		b.node.AddChild(b.title)
	}
	return b
}

// newHeading is white text with a thin black outline.
func newHeading(env *Env, name, content string, size float64) *showcase.Node {
	n := showcase.NewText(name, content, env.Fonts.Font(HeadingFamily, size))
	n.TextBlock.Color = showcase.ColorWhite
	n.TextBlock.Outline = &showcase.Outline{Color: showcase.RGB(0x000000), Thickness: 2}
	return n
}

func (b *base) Node() *showcase.Node { return b.node }

func (b *base) Update(dt float64) { b.anim.Update(dt) }

// fadeIn kills running tweens on the screen and fades it in from
// transparent after a short delay.
func (b *base) fadeIn() *showcase.TweenGroup {
	b.anim.Kill(b.node)
	b.node.SetAlpha(0)
	g := showcase.TweenAlpha(b.node, 1, 0.2, ease.Linear)
	g.Delay = 0.2
	return b.anim.Add(g)
}

func (b *base) resizeTitle(w float64) {
	if b.title != nil {
		b.title.SetPosition(w/2, 0)
	}
}

// Specs returns the navigation specs for every screen, keyed by ID.
func Specs(env *Env) map[string]navigation.Spec {
	specs := []navigation.Spec{
		TitleSpec(env),
		CardsSpec(env),
		TextSpec(env),
		FireSpec(env),
		LoadSpec(env),
	}
	m := make(map[string]navigation.Spec, len(specs))
	for _, s := range specs {
		m[s.ID] = s
	}
	return m
}
