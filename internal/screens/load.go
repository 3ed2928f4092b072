package screens

import (
	"fmt"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/navigation"
)

// LoadID identifies the load screen.
const LoadID = "load"

// Load is shown while a screen's bundles load.
type Load struct {
	base
	label    *showcase.Node
	progress float64
}

// LoadSpec describes the load screen.
func LoadSpec(env *Env) navigation.Spec {
	return navigation.Spec{ID: LoadID, New: func() navigation.Screen { return NewLoad(env) }}
}

// NewLoad builds the load screen.
func NewLoad(env *Env) *Load {
	s := &Load{base: newBase(env, LoadID, "")}
	s.label = newHeading(env, "loading", "Loading", 30)
	s.label.SetAnchor(0.5, 0.5)
	s.node.AddChild(s.label)
	return s
}

// Show fades the screen in.
func (s *Load) Show() {
	s.progress = 0
	s.label.TextBlock.Content = "Loading"
	s.label.MarkDirty()
	s.fadeIn()
}

// Hide stops the fade.
func (s *Load) Hide() {
	s.anim.Kill(s.node)
}

// Prepare receives navigation.Progress while bundles load.
func (s *Load) Prepare(data any) {
	p, ok := data.(navigation.Progress)
	if !ok {
		return
	}
	s.progress = p.Value
	s.label.TextBlock.Content = fmt.Sprintf("Loading %d%%", int(p.Value*100))
	s.label.MarkDirty()
}

// Progress returns the last reported load progress.
func (s *Load) Progress() float64 { return s.progress }

// Resize centres the label.
func (s *Load) Resize(w, h float64) {
	s.label.SetPosition(w/2, h/2)
}
