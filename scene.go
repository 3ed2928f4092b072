package showcase

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 1024

// Scene owns a node tree and everything needed to run it for one window:
// command buffers, offscreen textures and pointer tracking.
type Scene struct {
	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	root       *Node
	debug      bool
	debugFrame int

	commands      []RenderCommand
	sortBuf       []RenderCommand
	offscreenCmds []RenderCommand
	rtPool        renderTexturePool

	pointers [maxPointers]pointerState
	hitBuf   []*Node
	touchIDs []ebiten.TouchID
	touches  [maxPointers]touchSlot
	cursor   ebiten.CursorShapeType
}

// NewScene returns a scene with an empty root container.
func NewScene() *Scene {
	return &Scene{
		root:     NewContainer("root"),
		commands: make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:  make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the node everything else is attached under.
func (s *Scene) Root() *Node {
	return s.root
}

// Update is Step with the length of one ebiten tick.
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step runs one frame of logic: OnUpdate callbacks with dt, then pointer
// dispatch against the positions those callbacks produced.
func (s *Scene) Step(dt float64) {
	updateWorldTransform(s.root, identityTransform, 1, false)
	updateNodes(s.root, dt)
	updateWorldTransform(s.root, identityTransform, 1, false)
	s.processInput()
}

// updateNodes runs OnUpdate depth first. A child that removes itself does
// not make its next sibling miss the frame.
func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for i := 0; i < len(n.children); i++ {
		child := n.children[i]
		updateNodes(child, dt)
		if i < len(n.children) && n.children[i] != child {
			i--
		}
	}
}

// Draw renders the tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.commands = s.commands[:0]

	var f frameStats
	if s.debug {
		f.mark = time.Now()
	}

	updateWorldTransform(s.root, identityTransform, 1, false)
	order := 0
	s.traverse(s.root, &order)
	if s.debug {
		f.traverse = f.lap()
	}

	s.mergeSort()
	if s.debug {
		f.sort = f.lap()
		f.commands = len(s.commands)
	}

	s.submit(screen)
	if s.debug {
		f.submit = f.lap()
		s.logFrame(&f)
	}
}

// SetDebugMode turns on extra checks: tree operations on disposed nodes
// panic, oversized trees are reported and Draw logs its timings once a
// second.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug is the flag of the last SetDebugMode call. Nodes do not know
// their scene, so tree operations read this instead.
var globalDebug bool
