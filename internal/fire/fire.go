// Package fire is a small flame effect: a fixed set of additive sprites that
// rise from an emitter, drift back toward where they spawned and shift from
// red to yellow as they age.
package fire

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/showcase"
)

const (
	// MaxAge is the longest a particle lives, in 60 fps frames.
	MaxAge = 30
	// Spread is the horizontal width of the spawn area.
	Spread = 20

	rise  = 0.012
	steer = 0.02
)

var (
	startTint = showcase.RGB(0xff0000)
	endTint   = showcase.RGB(0xeebb00)
)

// particle is one flame sprite plus its motion state.
type particle struct {
	node       *showcase.Node
	dirX, dirY float64
	originX    float64
	age        float64
	maxAge     float64
}

// Effect owns its particles. Particles are reused in place when they expire.
type Effect struct {
	node      *showcase.Node
	particles []particle
	rng       *rand.Rand

	emitterX, emitterY float64
}

// New creates an effect with count particles, each showing one of images
// picked at random. A nil rng uses the global source.
func New(count int, images []*ebiten.Image, rng *rand.Rand) *Effect {
	e := &Effect{
		node:      showcase.NewContainer("fire"),
		particles: make([]particle, count),
		rng:       rng,
	}
	for i := range e.particles {
		var img *ebiten.Image
		if len(images) > 0 {
			img = images[e.intN(len(images))]
		}
		p := &e.particles[i]
		p.node = showcase.NewSprite("flame", img)
		p.node.SetAnchor(0.5, 0.5)
		p.node.BlendMode = showcase.BlendAdd
		e.node.AddChild(p.node)
		e.reset(p)
		// Prewarm so the particles do not start as one clump.
		p.age = float64(e.intN(MaxAge + 1))
	}
	return e
}

// Node returns the container holding the particle sprites.
func (e *Effect) Node() *showcase.Node { return e.node }

// Len returns the number of particles.
func (e *Effect) Len() int { return len(e.particles) }

// SetEmitterPosition moves the spawn point. Live particles keep steering
// toward the point they spawned at.
func (e *Effect) SetEmitterPosition(x, y float64) {
	e.emitterX, e.emitterY = x, y
}

// EmitterPosition returns the spawn point.
func (e *Effect) EmitterPosition() (x, y float64) {
	return e.emitterX, e.emitterY
}

// Update advances the effect by delta frames at 60 fps.
func (e *Effect) Update(delta float64) {
	for i := range e.particles {
		p := &e.particles[i]
		p.age += delta
		if p.age >= p.maxAge {
			e.reset(p)
			continue
		}
		n := p.node
		progress := p.age / p.maxAge

		// Ease toward the target alpha so reset particles fade in.
		n.Alpha += ((1 - progress) - n.Alpha) / 2
		n.SetScale(n.Alpha, n.Alpha)

		p.dirY -= rise
		p.dirX -= (n.X - p.originX) * steer
		n.SetRotation(math.Atan2(p.dirY, p.dirX) + math.Pi/2)
		n.Color = startTint.Lerp(endTint, progress*0.8+0.2)

		n.SetPosition(n.X+p.dirX, n.Y+p.dirY)
	}
}

func (e *Effect) reset(p *particle) {
	p.age = 0
	p.maxAge = showcase.Range{Min: MaxAge / 2, Max: MaxAge}.Random(e.rng)
	p.originX = e.emitterX
	p.dirX = showcase.Range{Min: -1, Max: 1}.Random(e.rng)
	p.dirY = showcase.Range{Min: -3, Max: -1}.Random(e.rng)

	n := p.node
	n.SetPosition(e.emitterX+showcase.Range{Min: -Spread / 2, Max: Spread / 2}.Random(e.rng), e.emitterY)
	s := showcase.Range{Min: 0, Max: 1}.Random(e.rng)
	n.SetScale(s, s)
	n.Alpha = 0
}

func (e *Effect) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}
