package screens

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/art"
	"github.com/phanxgames/showcase/internal/fire"
	"github.com/phanxgames/showcase/internal/navigation"
)

// FireID identifies the fire screen.
const FireID = "fire"

const (
	particleCount = 10
	emitterSwing  = 140
	emitterSpeed  = 0.02
	framesPerSec  = 60
)

// Fire shows a particle flame whose emitter swings left and right.
type Fire struct {
	base
	effect *fire.Effect
	age    float64 // frames since Show
	w, h   float64
}

// FireSpec describes the fire screen.
func FireSpec(env *Env) navigation.Spec {
	return navigation.Spec{
		ID:      FireID,
		Bundles: []string{art.FireBundle},
		New:     func() navigation.Screen { return NewFire(env) },
	}
}

// NewFire builds the fire screen. The effect is created on Show.
func NewFire(env *Env) *Fire {
	return &Fire{base: newBase(env, FireID, "Fire effect"), w: env.DesignWidth, h: env.DesignHeight}
}

// Show creates the effect and fades it in after the screen.
func (s *Fire) Show() {
	s.fadeIn()

	images := make([]*ebiten.Image, 0, len(art.FireImages))
	for _, name := range art.FireImages {
		img, err := s.env.Assets.Image(name)
		if err != nil {
			s.env.logf("fire: %v", err)
			continue
		}
		images = append(images, img)
	}
	s.age = 0
	s.effect = fire.New(particleCount, images, s.env.Rand)
	s.effect.SetEmitterPosition(s.env.DesignWidth/2, 200)
	s.node.AddChild(s.effect.Node())

	s.effect.Node().SetAlpha(0)
	g := showcase.TweenAlpha(s.effect.Node(), 1, 1, ease.Linear)
	g.Delay = 0.5
	s.anim.Add(g)
}

// Update advances the flame and swings the emitter.
func (s *Fire) Update(dt float64) {
	s.base.Update(dt)
	if s.effect == nil {
		return
	}
	delta := dt * framesPerSec
	s.age += delta
	s.effect.Update(delta)
	s.effect.SetEmitterPosition(math.Cos(s.age*emitterSpeed)*emitterSwing+s.w/2, s.h/2)
}

// Hide removes the effect.
func (s *Fire) Hide() {
	s.anim.Clear()
	if s.effect != nil {
		s.effect.Node().Dispose()
		s.effect = nil
	}
}

// Resize centres the heading and records the size the emitter swings in.
func (s *Fire) Resize(w, h float64) {
	s.w, s.h = w, h
	s.resizeTitle(w)
}

// Effect returns the flame while the screen is shown.
func (s *Fire) Effect() *fire.Effect { return s.effect }
