package showcase

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// family returns a container named parent holding one container per name.
func family(parent string, names ...string) (*Node, []*Node) {
	p := NewContainer(parent)
	kids := make([]*Node, len(names))
	for i, name := range names {
		kids[i] = NewContainer(name)
		p.AddChild(kids[i])
	}
	return p, kids
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", what)
		}
	}()
	fn()
}

func TestConstructors(t *testing.T) {
	img := ebiten.NewImage(32, 16)
	cases := []struct {
		node   *Node
		typ    NodeType
		w, h   float64
		tinted bool
	}{
		{NewContainer("group"), NodeTypeContainer, 0, 0, false},
		{NewSprite("card", img), NodeTypeSprite, 32, 16, false},
		{NewRect("box", 120, 40, RGB(0x2222ff)), NodeTypeSprite, 120, 40, true},
		{NewText("label", "hello", nil), NodeTypeText, 0, 0, false},
	}
	seen := make(map[uint32]bool)
	for _, c := range cases {
		n := c.node
		if n.ID == 0 || seen[n.ID] {
			t.Errorf("%s: ID %d is zero or reused", n.Name, n.ID)
		}
		seen[n.ID] = true
		if n.Type != c.typ {
			t.Errorf("%s: Type = %d, want %d", n.Name, n.Type, c.typ)
		}
		if w, h := n.Size(); w != c.w || h != c.h {
			t.Errorf("%s: Size = %vx%v, want %vx%v", n.Name, w, h, c.w, c.h)
		}
		if n.ScaleX != 1 || n.ScaleY != 1 || n.Alpha != 1 || !n.Visible || !n.transformDirty {
			t.Errorf("%s: bad defaults %+v", n.Name, n)
		}
		if !c.tinted && n.Color != ColorWhite {
			t.Errorf("%s: Color = %v, want white", n.Name, n.Color)
		}
	}
	if got := cases[2].node.Color; got != RGB(0x2222ff) {
		t.Errorf("rect Color = %v", got)
	}
}

func TestSetSizeOverridesImage(t *testing.T) {
	n := NewSprite("s", ebiten.NewImage(10, 10))
	n.SetSize(40, 5)
	if w, h := n.Size(); w != 40 || h != 5 {
		t.Errorf("Size = %vx%v, want 40x5", w, h)
	}
	n.SetSize(0, 0)
	if w, h := n.Size(); w != 10 || h != 10 {
		t.Errorf("Size after reset = %vx%v, want 10x10", w, h)
	}
}

func TestAddChildOrderAndReparent(t *testing.T) {
	left, kids := family("left", "a", "b")
	right, _ := family("right", "z")

	right.AddChild(kids[0])
	if kids[0].Parent != right {
		t.Fatal("a should now belong to right")
	}
	if got := names(left.Children()); !slices.Equal(got, []string{"b"}) {
		t.Errorf("left = %v, want [b]", got)
	}
	if got := names(right.Children()); !slices.Equal(got, []string{"z", "a"}) {
		t.Errorf("right = %v, want [z a]", got)
	}
}

func TestAddChildAt(t *testing.T) {
	p, kids := family("p", "a", "c")
	b := NewContainer("b")
	p.AddChildAt(b, 1)
	if got := names(p.Children()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("children = %v", got)
	}

	// Moving within the same parent uses the index after removal.
	p.AddChildAt(kids[1], 0)
	if got := names(p.Children()); !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Errorf("after move = %v", got)
	}
	expectPanic(t, "index past end", func() { p.AddChildAt(NewContainer("x"), 9) })
}

func TestTreePanics(t *testing.T) {
	p, kids := family("p", "a")
	other := NewContainer("other")
	expectPanic(t, "nil child", func() { p.AddChild(nil) })
	expectPanic(t, "cycle", func() { kids[0].AddChild(p) })
	expectPanic(t, "self", func() { p.AddChild(p) })
	expectPanic(t, "wrong parent", func() { other.RemoveChild(kids[0]) })
}

func TestRemoveChildren(t *testing.T) {
	p, kids := family("p", "a", "b", "c")
	p.RemoveChildren()
	if p.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", p.NumChildren())
	}
	for _, k := range kids {
		if k.Parent != nil || k.IsDisposed() {
			t.Errorf("%s: Parent = %v, disposed = %v", k.Name, k.Parent, k.IsDisposed())
		}
	}
	NewContainer("root").RemoveFromParent()
}

func TestSortedChildrenOf(t *testing.T) {
	p, kids := family("p", "a", "b", "c", "d")
	kids[0].SetZIndex(2)
	kids[2].SetZIndex(-1)
	if got := names(sortedChildrenOf(p)); !slices.Equal(got, []string{"c", "b", "d", "a"}) {
		t.Errorf("sorted = %v, want [c b d a]", got)
	}
	if got := names(p.Children()); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("insertion order changed: %v", got)
	}

	p.RemoveChild(kids[2])
	if got := names(sortedChildrenOf(p)); !slices.Equal(got, []string{"b", "d", "a"}) {
		t.Errorf("after removal = %v", got)
	}
}

func TestSortedChildrenCachedWithoutAllocs(t *testing.T) {
	p, kids := family("p", "a", "b", "c")
	kids[1].SetZIndex(5)
	sortedChildrenOf(p)
	allocs := testing.AllocsPerRun(100, func() {
		sortedChildrenOf(p)
	})
	if allocs != 0 {
		t.Errorf("allocs = %v, want 0", allocs)
	}
	allocs = testing.AllocsPerRun(100, func() {
		kids[0].SetZIndex(kids[0].ZIndex + 1)
		sortedChildrenOf(p)
	})
	if allocs != 0 {
		t.Errorf("resort allocs = %v, want 0", allocs)
	}
}

func TestDispose(t *testing.T) {
	root, _ := family("root")
	branch, kids := family("branch", "leaf")
	root.AddChild(branch)
	branch.OnClick = func(PointerContext) {}
	label := NewText("label", "x", nil)
	kids[0].AddChild(label)

	branch.Dispose()
	for _, n := range []*Node{branch, kids[0], label} {
		if !n.IsDisposed() || n.ID != 0 || n.Parent != nil {
			t.Errorf("%s: disposed = %v, ID = %d", n.Name, n.IsDisposed(), n.ID)
		}
	}
	if branch.OnClick != nil || label.TextBlock != nil {
		t.Error("callbacks and text should be released")
	}
	if root.NumChildren() != 0 {
		t.Errorf("root children = %d, want 0", root.NumChildren())
	}
	branch.Dispose()
}

func TestTreeChangesDirtyTransforms(t *testing.T) {
	p := NewContainer("p")
	child, kids := family("child", "grandchild")
	child.transformDirty, kids[0].transformDirty = false, false

	p.AddChild(child)
	if !child.transformDirty || !kids[0].transformDirty {
		t.Error("AddChild should dirty the whole subtree")
	}

	child.transformDirty, kids[0].transformDirty = false, false
	p.RemoveChild(child)
	if !child.transformDirty || !kids[0].transformDirty {
		t.Error("RemoveChild should dirty the whole subtree")
	}
}
