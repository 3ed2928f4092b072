package showcase

import "github.com/hajimehoshi/ebiten/v2"

// Pointer 0 is the mouse; touches take slots 1 and up.
const maxPointers = 10

// HitRect is a rectangular HitShape.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) is inside r or on its edge.
func (r HitRect) Contains(x, y float64) bool {
	return Rect(r).Contains(x, y)
}

// HitCircle is a round HitShape.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

func (c HitCircle) Contains(x, y float64) bool {
	dx, dy := x-c.CenterX, y-c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

type pointerState struct {
	down    bool
	button  MouseButton
	pressed *Node // hit when the button went down
	hover   *Node
}

type touchSlot struct {
	id   ebiten.TouchID
	used bool
	last Vec2
}

// nodeContainsLocal hit-tests a point in n's local space against its
// HitShape, or its own size when it has none. A container with no HitShape
// is never hit.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	switch {
	case n.HitShape != nil:
		return n.HitShape.Contains(lx, ly)
	case n.Type == NodeTypeContainer:
		return false
	}
	w, h := n.Size()
	return (w != 0 || h != 0) && Rect{Width: w, Height: h}.Contains(lx, ly)
}

// collectInteractable appends the interactable nodes under n in draw order.
// Hidden subtrees are skipped entirely.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable && (n.HitShape != nil || n.Type != NodeTypeContainer) {
		buf = append(buf, n)
	}
	for _, c := range sortedChildrenOf(n) {
		buf = collectInteractable(c, buf)
	}
	return buf
}

// hitTest returns the topmost interactable node under the scene point, or
// nil.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if lx, ly := n.WorldToLocal(x, y); nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

func (s *Scene) processInput() {
	s.pollMouse()
	s.pollTouches()
	if shape := s.hoverCursor(); shape != s.cursor {
		s.cursor = shape
		ebiten.SetCursorShape(shape)
	}
}

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	mb MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

func (s *Scene) pollMouse() {
	x, y := ebiten.CursorPosition()
	pressed, button := false, MouseButtonLeft
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.eb) {
			pressed, button = true, b.mb
			break
		}
	}
	s.processPointer(0, float64(x), float64(y), pressed, button)
}

func (s *Scene) pollTouches() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	var seen [maxPointers]bool
	for _, id := range s.touchIDs {
		slot := s.slotFor(id)
		if slot < 0 {
			continue
		}
		seen[slot] = true
		x, y := ebiten.TouchPosition(id)
		s.touches[slot].last = Vec2{float64(x), float64(y)}
		s.processPointer(slot, float64(x), float64(y), true, MouseButtonLeft)
	}

	// A lifted finger releases at its last position and stops hovering.
	for i := 1; i < maxPointers; i++ {
		t := &s.touches[i]
		if !t.used || seen[i] {
			continue
		}
		s.processPointer(i, t.last.X, t.last.Y, false, MouseButtonLeft)
		if h := s.pointers[i].hover; h != nil && !h.IsDisposed() {
			s.dispatch(h.OnPointerLeave, h, i, t.last.X, t.last.Y, MouseButtonLeft)
		}
		s.pointers[i].hover = nil
		t.used = false
	}
}

// slotFor returns the pointer slot tracking id, claiming a free one for a
// new touch. It returns -1 when all slots are busy.
func (s *Scene) slotFor(id ebiten.TouchID) int {
	free := -1
	for i := 1; i < maxPointers; i++ {
		t := &s.touches[i]
		if t.used && t.id == id {
			return i
		}
		if !t.used && free < 0 {
			free = i
		}
	}
	if free > 0 {
		s.touches[free] = touchSlot{id: id, used: true}
	}
	return free
}

// processPointer advances one pointer given its position and whether a
// button is held. Enter and leave fire as the hovered node changes; a click
// needs the press and the release on the same live node.
func (s *Scene) processPointer(id int, x, y float64, pressed bool, button MouseButton) {
	p := &s.pointers[id]
	under := s.hitTest(x, y)

	if under != p.hover {
		if old := p.hover; old != nil && !old.IsDisposed() {
			s.dispatch(old.OnPointerLeave, old, id, x, y, button)
		}
		p.hover = under
		if under != nil {
			s.dispatch(under.OnPointerEnter, under, id, x, y, button)
		}
	}

	if pressed == p.down {
		return
	}
	if pressed {
		p.down, p.button, p.pressed = true, button, under
		if under != nil {
			s.dispatch(under.OnPointerDown, under, id, x, y, button)
		}
		return
	}
	start := p.pressed
	p.down, p.pressed = false, nil
	if under == nil {
		return
	}
	s.dispatch(under.OnPointerUp, under, id, x, y, p.button)
	if start == under && !under.IsDisposed() {
		s.dispatch(under.OnClick, under, id, x, y, p.button)
	}
}

func (s *Scene) dispatch(fn func(PointerContext), n *Node, id int, x, y float64, button MouseButton) {
	if fn == nil {
		return
	}
	lx, ly := n.WorldToLocal(x, y)
	fn(PointerContext{
		Node:      n,
		UserData:  n.UserData,
		GlobalX:   x,
		GlobalY:   y,
		LocalX:    lx,
		LocalY:    ly,
		Button:    button,
		PointerID: id,
	})
}

// hoverCursor is the Cursor of the interactable node under the mouse.
func (s *Scene) hoverCursor() ebiten.CursorShapeType {
	if n := s.pointers[0].hover; n != nil && n.Interactable && !n.IsDisposed() {
		return n.Cursor
	}
	return ebiten.CursorShapeDefault
}
