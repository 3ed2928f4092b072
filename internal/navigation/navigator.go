// Package navigation switches between full-window screens and overlays,
// loading each screen's asset bundles before it is shown.
package navigation

import (
	"errors"
	"fmt"
	"log"

	"github.com/phanxgames/showcase"
)

// ErrNoConstructor is returned when a Spec has no New function.
var ErrNoConstructor = errors.New("navigation: screen has no constructor")

// Screen is anything the navigator can put on stage. The optional
// Preparer, Shower, Hider, Updater and Resizer interfaces add lifecycle hooks.
type Screen interface {
	Node() *showcase.Node
}

// Preparer receives data before a screen is shown. The load screen
// receives Progress values while bundles load.
type Preparer interface {
	Prepare(data any)
}

// Shower is called after the screen is attached and resized.
type Shower interface {
	Show()
}

// Hider is called before the screen is detached.
type Hider interface {
	Hide()
}

// Updater is ticked by Navigator.Update while the screen is attached.
type Updater interface {
	Update(dt float64)
}

// Resizer is told the logical window size on attach and on every resize.
type Resizer interface {
	Resize(w, h float64)
}

// Spec describes a screen: a unique ID, the bundles it needs and a
// constructor. Screens are constructed once per ID and reused.
type Spec struct {
	ID      string
	Bundles []string
	New     func() Screen
}

// Progress is sent to the load screen's Prepare while bundles load.
// Value runs from 0 to 1.
type Progress struct {
	Value float64
}

// BundleLoader loads named asset bundles. *showcase.AssetStore implements it.
type BundleLoader interface {
	BundlesLoaded(names []string) bool
	LoadBundles(names []string, progress func(float64)) error
}

// Navigator owns a screen view and an overlay view drawn above it. At most
// one screen and one overlay are attached at a time.
type Navigator struct {
	// Logger receives navigation traces when non-nil.
	Logger *log.Logger

	root        *showcase.Node
	screenView  *showcase.Node
	overlayView *showcase.Node

	loader     BundleLoader
	screens    map[string]Screen
	loadScreen Screen
	current    Screen
	overlay    Screen

	w, h float64
}

// New returns a navigator that loads bundles through loader.
func New(loader BundleLoader) *Navigator {
	n := &Navigator{
		root:        showcase.NewContainer("navigation"),
		screenView:  showcase.NewContainer("screens"),
		overlayView: showcase.NewContainer("overlays"),
		loader:      loader,
		screens:     make(map[string]Screen),
	}
	n.root.AddChild(n.screenView)
	n.root.AddChild(n.overlayView)
	return n
}

// Node returns the container holding the screen and overlay views.
func (n *Navigator) Node() *showcase.Node {
	return n.root
}

// Current returns the attached screen, or nil.
func (n *Navigator) Current() Screen {
	return n.current
}

// Overlay returns the attached overlay, or nil.
func (n *Navigator) Overlay() Screen {
	return n.overlay
}

// SetLoadScreen sets the screen shown while bundles load.
func (n *Navigator) SetLoadScreen(spec Spec) error {
	s, err := n.screen(spec)
	if err != nil {
		return err
	}
	n.loadScreen = s
	return nil
}

// GoToScreen detaches the current screen and shows the one described by
// spec, loading its bundles first. data is passed to the screen's Prepare.
// When loading fails the error is returned and no screen is attached.
func (n *Navigator) GoToScreen(spec Spec, data any) error {
	n.logf("go to screen %s", spec.ID)
	if s, ok := n.screens[spec.ID]; ok && n.attached(s) {
		n.remove(s)
		if s == n.overlay {
			n.overlay = nil
		}
	}
	return n.show(spec, false, data)
}

// ShowOverlay shows a screen above the current one, replacing any overlay.
func (n *Navigator) ShowOverlay(spec Spec, data any) error {
	n.logf("show overlay %s", spec.ID)
	return n.show(spec, true, data)
}

// HideOverlay detaches the current overlay, if any.
func (n *Navigator) HideOverlay() {
	if n.overlay == nil {
		return
	}
	n.remove(n.overlay)
	n.overlay = nil
}

// Resize records the logical window size and forwards it to the attached
// screen and overlay.
func (n *Navigator) Resize(w, h float64) {
	n.w, n.h = w, h
	for _, s := range []Screen{n.current, n.overlay} {
		if r, ok := s.(Resizer); ok {
			r.Resize(w, h)
		}
	}
}

// Size returns the last size passed to Resize.
func (n *Navigator) Size() (w, h float64) {
	return n.w, n.h
}

// Update ticks the attached screen and overlay.
func (n *Navigator) Update(dt float64) {
	if u, ok := n.current.(Updater); ok {
		u.Update(dt)
	}
	if u, ok := n.overlay.(Updater); ok {
		u.Update(dt)
	}
}

func (n *Navigator) show(spec Spec, isOverlay bool, data any) error {
	if current := n.slot(isOverlay); *current != nil {
		if n.attached(*current) {
			n.remove(*current)
		}
		*current = nil
	}

	if len(spec.Bundles) > 0 && !n.loader.BundlesLoaded(spec.Bundles) {
		if err := n.load(spec, isOverlay); err != nil {
			return err
		}
	}

	s, err := n.screen(spec)
	if err != nil {
		return err
	}
	if p, ok := s.(Preparer); ok {
		p.Prepare(data)
	}
	n.add(s, isOverlay)
	*n.slot(isOverlay) = s
	return nil
}

// load shows the load screen while the bundles of spec load.
func (n *Navigator) load(spec Spec, isOverlay bool) error {
	ls := n.loadScreen
	if ls != nil {
		n.add(ls, isOverlay)
	}
	err := n.loader.LoadBundles(spec.Bundles, func(p float64) {
		n.logf("load progress %.2f", p)
		if pr, ok := ls.(Preparer); ok {
			pr.Prepare(Progress{Value: p})
		}
	})
	if ls != nil {
		n.remove(ls)
	}
	if err != nil {
		return fmt.Errorf("navigation: load %s: %w", spec.ID, err)
	}
	return nil
}

// screen returns the cached instance for spec, constructing it on first use.
func (n *Navigator) screen(spec Spec) (Screen, error) {
	if s, ok := n.screens[spec.ID]; ok {
		return s, nil
	}
	if spec.New == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoConstructor, spec.ID)
	}
	s := spec.New()
	n.screens[spec.ID] = s
	return s, nil
}

func (n *Navigator) add(s Screen, isOverlay bool) {
	n.logf("add screen %s", s.Node().Name)
	view := n.screenView
	if isOverlay {
		view = n.overlayView
	}
	view.AddChild(s.Node())
	if r, ok := s.(Resizer); ok {
		r.Resize(n.w, n.h)
	}
	if sh, ok := s.(Shower); ok {
		sh.Show()
	}
}

func (n *Navigator) remove(s Screen) {
	n.logf("remove screen %s", s.Node().Name)
	if h, ok := s.(Hider); ok {
		h.Hide()
	}
	s.Node().RemoveFromParent()
}

func (n *Navigator) attached(s Screen) bool {
	return s.Node().Parent != nil
}

func (n *Navigator) slot(isOverlay bool) *Screen {
	if isOverlay {
		return &n.overlay
	}
	return &n.current
}

func (n *Navigator) logf(format string, args ...any) {
	if n.Logger != nil {
		n.Logger.Printf(format, args...)
	}
}
