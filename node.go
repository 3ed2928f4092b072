package showcase

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape replaces a node's bounding box for hit testing. Points are in
// the node's local space.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext is passed to pointer callbacks.
type PointerContext struct {
	Node      *Node
	UserData  any // Node.UserData at dispatch time
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int // 0 for the mouse, touch ID otherwise
}

var lastNodeID uint32

// Node is one element of the scene tree. Containers, sprites and text all
// share this struct; Type selects what, if anything, it draws.
type Node struct {
	ID   uint32
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	// Local transform. PivotX/PivotY are pixels; AnchorX/AnchorY are a
	// fraction of the node's own size added on top of the pivot.
	X, Y             float64
	ScaleX, ScaleY   float64
	Rotation         float64
	PivotX, PivotY   float64
	AnchorX, AnchorY float64

	Alpha        float64
	Visible      bool
	Interactable bool
	Cursor       ebiten.CursorShapeType // shown while hovered; CursorShapeDefault leaves it alone

	// ZIndex orders siblings. RenderLayer then GlobalOrder order the whole
	// frame, ahead of tree order.
	ZIndex      int
	RenderLayer uint8
	GlobalOrder int

	UserData any

	// Sprite
	Image         *ebiten.Image
	BlendMode     BlendMode
	Color         Color
	width, height float64 // stretch size; zero keeps the image size

	// Text
	TextBlock *TextBlock

	HitShape HitShape

	OnUpdate       func(dt float64)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnClick        func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	cacheEnabled bool
	cacheDirty   bool
	cacheTexture *ebiten.Image
	cacheBounds  Rect

	disposed bool
	zOrder   []*Node // children by ZIndex
	zStale   bool
}

func newNode(name string, typ NodeType) *Node {
	lastNodeID++
	return &Node{
		ID:             lastNodeID,
		Name:           name,
		Type:           typ,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Color:          ColorWhite,
		Visible:        true,
		transformDirty: true,
	}
}

// NewContainer creates a node that only groups its children.
func NewContainer(name string) *Node {
	return newNode(name, NodeTypeContainer)
}

// NewSprite creates a node drawing img. A nil img draws nothing until
// SetImage is called.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := newNode(name, NodeTypeSprite)
	n.Image = img
	return n
}

// NewRect creates a w×h rectangle filled with c.
func NewRect(name string, w, h float64, c Color) *Node {
	n := NewSprite(name, WhitePixel())
	n.Color = c
	n.width, n.height = w, h
	return n
}

// NewText creates a white text node.
func NewText(name string, content string, font Font) *Node {
	n := newNode(name, NodeTypeText)
	n.TextBlock = &TextBlock{Content: content, Font: font, Color: ColorWhite, dirty: true}
	return n
}

// Size returns the node's own size before its transform. Containers are 0×0.
func (n *Node) Size() (w, h float64) {
	switch {
	case n.Type == NodeTypeSprite && (n.width > 0 || n.height > 0):
		return n.width, n.height
	case n.Type == NodeTypeSprite && n.Image != nil:
		b := n.Image.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	case n.Type == NodeTypeText && n.TextBlock != nil:
		return n.TextBlock.Size()
	}
	return 0, 0
}

// SetSize stretches a sprite to w×h. SetSize(0, 0) goes back to the image
// size.
func (n *Node) SetSize(w, h float64) {
	n.width, n.height = w, h
	n.transformDirty = true
}

// SetImage swaps a sprite's image. The anchor follows the new size.
func (n *Node) SetImage(img *ebiten.Image) {
	n.Image = img
	n.transformDirty = true
}

// --- Tree ---

// AddChild appends child, taking it from its current parent if it has one.
// It panics on a nil child or when child is n or one of n's ancestors.
func (n *Node) AddChild(child *Node) {
	n.insert(child, -1)
	if globalDebug {
		debugCheckTree(n, child)
	}
}

// AddChildAt is AddChild at position index of the child list. The index is
// checked after child has left its old parent.
func (n *Node) AddChildAt(child *Node, index int) {
	n.insert(child, index)
}

func (n *Node) insert(child *Node, index int) {
	if child == nil {
		panic("showcase: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	for p := n; p != nil; p = p.Parent {
		if p == child {
			panic("showcase: adding child would create a cycle")
		}
	}
	if child.Parent != nil {
		child.Parent.unlink(child)
	}
	if index < 0 {
		index = len(n.children)
	} else if index > len(n.children) {
		panic("showcase: child index out of range")
	}
	n.children = slices.Insert(n.children, index, child)
	child.Parent = n
	n.zStale = true
	child.invalidateSubtree()
}

// RemoveChild detaches child. It panics if n is not child's parent.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("showcase: child's parent is not this node")
	}
	n.unlink(child)
	child.invalidateSubtree()
}

// RemoveFromParent detaches n. It does nothing for a root.
func (n *Node) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// RemoveChildren detaches every child without disposing them.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.Parent = nil
		c.invalidateSubtree()
	}
	clear(n.children)
	n.children = n.children[:0]
	n.zStale = true
}

// Children returns the child list in insertion order. Do not modify it.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns len(Children()).
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the child at index.
func (n *Node) ChildAt(index int) *Node { return n.children[index] }

// SetZIndex moves n among its siblings. Higher values draw later.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.zStale = true
	}
}

// unlink drops child from n's list and clears its parent.
func (n *Node) unlink(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
	child.Parent = nil
	n.zStale = true
}

func (n *Node) invalidateSubtree() {
	n.transformDirty = true
	for _, c := range n.children {
		c.invalidateSubtree()
	}
}

// sortedChildrenOf returns n's children ordered by ZIndex, ties in
// insertion order. The result is cached until the children or a ZIndex
// change.
func sortedChildrenOf(n *Node) []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if !n.zStale && len(n.zOrder) == len(n.children) {
		return n.zOrder
	}
	n.zOrder = append(n.zOrder[:0], n.children...)
	slices.SortStableFunc(n.zOrder, func(a, b *Node) int { return a.ZIndex - b.ZIndex })
	n.zStale = false
	return n.zOrder
}

// --- Disposal ---

// Dispose detaches n and releases it and all its descendants. Disposed
// nodes must not be reused.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.release()
}

func (n *Node) release() {
	for _, c := range n.children {
		c.Parent = nil
		c.release()
	}
	if n.cacheTexture != nil {
		n.cacheTexture.Deallocate()
	}
	if n.TextBlock != nil {
		n.TextBlock.release()
	}
	*n = Node{Name: n.Name, Type: n.Type, disposed: true}
}

// IsDisposed reports whether Dispose has been called on n or an ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
