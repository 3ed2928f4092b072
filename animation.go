package showcase

import (
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha, ...) and either call Update(dt) each frame or hand it to an
// Animator. The group auto-applies values and marks the node dirty. If the
// target node is disposed, the group stops immediately.
//
// Start values are read from the node when the group starts, after Delay,
// so groups queued in a Sequence continue from wherever the previous one
// left the node.
type TweenGroup struct {
	// Delay is the number of seconds to wait before the tween starts.
	Delay float64
	// OnComplete runs once when every field reaches its target. It does
	// not run when the group is killed or its node is disposed.
	OnComplete func()
	Done       bool

	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	to       [4]float64
	duration float32
	fn       ease.TweenFunc
	target   *Node
	waited   float64
	started  bool
}

func newTweenGroup(node *Node, duration float64, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenGroup{target: node, duration: float32(duration), fn: fn}
}

func (g *TweenGroup) field(p *float64, to float64) {
	g.fields[g.count] = p
	g.to[g.count] = to
	g.count++
}

// Target returns the node being animated.
func (g *TweenGroup) Target() *Node {
	return g.target
}

// Kill stops the group where it is without running OnComplete.
func (g *TweenGroup) Kill() {
	g.Done = true
}

func (g *TweenGroup) start() {
	for i := 0; i < g.count; i++ {
		g.tweens[i] = gween.New(float32(*g.fields[i]), float32(g.to[i]), g.duration, g.fn)
	}
	g.started = true
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	if !g.started {
		g.waited += dt
		if g.waited < g.Delay {
			return
		}
		dt = g.waited - g.Delay
		g.start()
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		if finished {
			*g.fields[i] = g.to[i]
		} else {
			*g.fields[i] = float64(val)
			allDone = false
		}
	}

	if g.target != nil {
		g.target.MarkDirty()
	}
	if allDone {
		g.Done = true
		if g.OnComplete != nil {
			g.OnComplete()
		}
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.field(&node.X, toX)
	g.field(&node.Y, toY)
	return g
}

// TweenX animates node.X only.
func TweenX(node *Node, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.field(&node.X, to)
	return g
}

// TweenY animates node.Y only.
func TweenY(node *Node, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.field(&node.Y, to)
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.field(&node.ScaleX, toSX)
	g.field(&node.ScaleY, toSY)
	return g
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(node *Node, to Color, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.field(&node.Color.R, to.R)
	g.field(&node.Color.G, to.G)
	g.field(&node.Color.B, to.B)
	g.field(&node.Color.A, to.A)
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.field(&node.Alpha, to)
	return g
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	g.field(&node.Rotation, to)
	return g
}

// --- Sequence ---

// Sequence runs tween groups one after another.
type Sequence struct {
	groups []*TweenGroup
	index  int
	// OnComplete runs once after the last group completes.
	OnComplete func()
	Done       bool
}

// NewSequence returns a sequence of groups. Groups must not be updated
// elsewhere.
func NewSequence(groups ...*TweenGroup) *Sequence {
	return &Sequence{groups: groups, Done: len(groups) == 0}
}

// Update advances the current group by dt seconds.
func (s *Sequence) Update(dt float64) {
	if s.Done {
		return
	}
	g := s.groups[s.index]
	g.Update(dt)
	if !g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		s.Done = true
		return
	}
	s.index++
	if s.index == len(s.groups) {
		s.Done = true
		if s.OnComplete != nil {
			s.OnComplete()
		}
	}
}

// Kill stops the sequence without running OnComplete.
func (s *Sequence) Kill() {
	s.Done = true
}

func (s *Sequence) targets(n *Node) bool {
	for _, g := range s.groups {
		if g.target == n {
			return true
		}
	}
	return false
}

// --- Timer ---

// Timer calls a function after a delay, once or repeatedly.
type Timer struct {
	interval float64
	elapsed  float64
	repeat   bool
	fn       func()
	stopped  bool
}

// Stop cancels the timer. Safe to call from inside its own callback.
func (t *Timer) Stop() {
	t.stopped = true
}

// Stopped reports whether the timer has been stopped or has fired its
// only call.
func (t *Timer) Stopped() bool {
	return t.stopped
}

func (t *Timer) update(dt float64) {
	if t.stopped {
		return
	}
	t.elapsed += dt
	for !t.stopped && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		if !t.repeat {
			t.stopped = true
		}
		t.fn()
		if t.interval <= 0 {
			break
		}
	}
}

// --- Animator ---

// Animator owns the running tweens, sequences and timers of one screen.
// Callbacks may add new work or call Kill and Clear while the Animator is
// updating; work added during an Update first runs on the next one.
type Animator struct {
	tweens []*TweenGroup
	seqs   []*Sequence
	timers []*Timer
}

// NewAnimator returns an empty Animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Add starts g and returns it.
func (a *Animator) Add(g *TweenGroup) *TweenGroup {
	a.tweens = append(a.tweens, g)
	return g
}

// Sequence starts groups one after another and returns the sequence.
func (a *Animator) Sequence(groups ...*TweenGroup) *Sequence {
	s := NewSequence(groups...)
	a.seqs = append(a.seqs, s)
	return s
}

// Every calls fn each interval seconds until the returned timer is stopped.
func (a *Animator) Every(interval float64, fn func()) *Timer {
	t := &Timer{interval: interval, repeat: true, fn: fn}
	a.timers = append(a.timers, t)
	return t
}

// After calls fn once after delay seconds.
func (a *Animator) After(delay float64, fn func()) *Timer {
	t := &Timer{interval: delay, fn: fn}
	a.timers = append(a.timers, t)
	return t
}

// Kill stops every tween and sequence animating node. Timers are kept.
func (a *Animator) Kill(node *Node) {
	for _, g := range a.tweens {
		if g.target == node {
			g.Done = true
		}
	}
	for _, s := range a.seqs {
		if s.targets(node) {
			s.Done = true
		}
	}
}

// Clear stops everything.
func (a *Animator) Clear() {
	for _, g := range a.tweens {
		g.Done = true
	}
	for _, s := range a.seqs {
		s.Done = true
	}
	for _, t := range a.timers {
		t.stopped = true
	}
	a.tweens = nil
	a.seqs = nil
	a.timers = nil
}

// Len returns the number of live tweens, sequences and timers.
func (a *Animator) Len() int {
	return len(a.tweens) + len(a.seqs) + len(a.timers)
}

// Update advances everything by dt seconds and drops what finished.
func (a *Animator) Update(dt float64) {
	n := len(a.tweens)
	for i := 0; i < n && i < len(a.tweens); i++ {
		a.tweens[i].Update(dt)
	}
	n = len(a.seqs)
	for i := 0; i < n && i < len(a.seqs); i++ {
		a.seqs[i].Update(dt)
	}
	n = len(a.timers)
	for i := 0; i < n && i < len(a.timers); i++ {
		a.timers[i].update(dt)
	}

	a.tweens = slices.DeleteFunc(a.tweens, func(g *TweenGroup) bool { return g.Done })
	a.seqs = slices.DeleteFunc(a.seqs, func(s *Sequence) bool { return s.Done })
	a.timers = slices.DeleteFunc(a.timers, func(t *Timer) bool { return t.stopped })
}
