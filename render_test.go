package showcase

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// emit runs the transform and traverse passes and returns the unsorted
// commands.
func emit(s *Scene) []RenderCommand {
	s.commands = s.commands[:0]
	updateWorldTransform(s.root, identityTransform, 1, false)
	order := 0
	s.traverse(s.root, &order)
	return s.commands
}

func TestEmitCounts(t *testing.T) {
	book := loadTestBook(t)
	cases := []struct {
		name  string
		build func() *Node
		want  int
	}{
		{"sprite", func() *Node { return NewSprite("s", ebiten.NewImage(32, 32)) }, 1},
		{"nil image", func() *Node { return NewSprite("s", nil) }, 0},
		{"container", func() *Node { return NewContainer("c") }, 0},
		{"text", func() *Node { return NewText("t", "hello", book.Font("Go", 16)) }, 1},
		{"empty text", func() *Node { return NewText("t", "", book.Font("Go", 16)) }, 0},
		{"hidden subtree", func() *Node {
			p := NewContainer("p")
			p.Visible = false
			p.AddChild(NewRect("c", 10, 10, ColorWhite))
			return p
		}, 0},
		{"clear tint keeps children", func() *Node {
			p := NewRect("p", 10, 10, Color{1, 1, 1, 0})
			p.AddChild(NewRect("c", 5, 5, ColorWhite))
			return p
		}, 1},
		{"zero alpha subtree", func() *Node {
			p := NewRect("p", 10, 10, ColorWhite)
			p.Alpha = 0
			p.AddChild(NewRect("c", 5, 5, ColorWhite))
			return p
		}, 0},
	}
	for _, c := range cases {
		s := NewScene()
		s.Root().AddChild(c.build())
		if got := len(emit(s)); got != c.want {
			t.Errorf("%s: %d commands, want %d", c.name, got, c.want)
		}
	}
}

func TestEmitTreeOrderIncreases(t *testing.T) {
	s := NewScene()
	for _, name := range []string{"a", "b", "c"} {
		s.Root().AddChild(NewRect(name, 1, 1, ColorWhite))
	}
	cmds := emit(s)
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3", len(cmds))
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i].treeOrder <= cmds[i-1].treeOrder {
			t.Errorf("treeOrder %d then %d", cmds[i-1].treeOrder, cmds[i].treeOrder)
		}
	}
}

func TestEmitFoldsWorldAlpha(t *testing.T) {
	s := NewScene()
	p := NewContainer("p")
	p.Alpha = 0.5
	p.AddChild(NewRect("c", 4, 4, Color{1, 0, 0, 0.8}))
	s.Root().AddChild(p)

	cmds := emit(s)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	if c := cmds[0].Color; math.Abs(c.A-0.4) > 1e-9 || c.R != 1 {
		t.Errorf("color = %+v, want red at 0.4", c)
	}
}

func TestEmitStretchesSprite(t *testing.T) {
	s := NewScene()
	r := NewRect("r", 40, 20, ColorWhite)
	r.SetPosition(10, 5)
	s.Root().AddChild(r)

	m := emit(s)[0].Transform
	if want := [6]float64{40, 0, 0, 20, 10, 5}; !sameMatrix(m, want) {
		t.Errorf("transform = %v, want %v", m, want)
	}
}

func TestMergeSortKeys(t *testing.T) {
	s := NewScene()
	s.commands = []RenderCommand{
		{RenderLayer: 2, GlobalOrder: 0, treeOrder: 1},
		{RenderLayer: 1, GlobalOrder: 5, treeOrder: 2},
		{RenderLayer: 1, GlobalOrder: 1, treeOrder: 3},
		{RenderLayer: 0, GlobalOrder: 9, treeOrder: 4},
	}
	s.mergeSort()
	for i, want := range []int{4, 3, 2, 1} {
		if got := s.commands[i].treeOrder; got != want {
			t.Errorf("position %d holds %d, want %d", i, got, want)
		}
	}
}

func TestMergeSortStable(t *testing.T) {
	for _, n := range []int{2, 3, 8, 37} {
		s := NewScene()
		for i := range n {
			s.commands = append(s.commands, RenderCommand{RenderLayer: uint8(i % 3), treeOrder: i})
		}
		s.mergeSort()
		for i := 1; i < n; i++ {
			a, b := s.commands[i-1], s.commands[i]
			if a.RenderLayer > b.RenderLayer || (a.RenderLayer == b.RenderLayer && a.treeOrder > b.treeOrder) {
				t.Fatalf("n=%d: %+v before %+v", n, a, b)
			}
		}
	}
}

func TestSortedDrawOrder(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 1, 1, ColorWhite)
	b := NewRect("b", 2, 2, ColorWhite)
	top := NewRect("top", 3, 3, ColorWhite)
	top.RenderLayer = 1
	s.Root().AddChild(top)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	a.SetZIndex(1)

	emit(s)
	s.mergeSort()
	var widths []float64
	for _, c := range s.commands {
		widths = append(widths, c.Transform[0])
	}
	if len(widths) != 3 || widths[0] != 2 || widths[1] != 1 || widths[2] != 3 {
		t.Errorf("draw order by width = %v, want [2 1 3]", widths)
	}
}

func TestMergeSortZeroAlloc(t *testing.T) {
	s := NewScene()
	for i := range 100 {
		s.commands = append(s.commands, RenderCommand{GlobalOrder: 100 - i, treeOrder: i})
	}
	s.mergeSort()
	allocs := testing.AllocsPerRun(100, func() {
		for i := range s.commands {
			s.commands[i].GlobalOrder = 100 - i
		}
		s.mergeSort()
	})
	if allocs > 0 {
		t.Errorf("allocs = %v, want 0", allocs)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 17: 32, 64: 64, 1000: 1024} {
		if got := nextPowerOfTwo(in); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestRenderTexturePoolReuse(t *testing.T) {
	var p renderTexturePool
	img := p.Acquire(30, 20)
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("size = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
	p.Release(img)
	p.Release(nil)
	if got := p.Acquire(17, 31); got != img {
		t.Error("a request in the same bucket should reuse the image")
	}
	if got := p.Acquire(17, 31); got == img {
		t.Error("an image was handed out twice")
	}
}

// cachedGroup returns a cached container of 10x10 rects, one per x offset.
func cachedGroup(xs ...float64) *Node {
	g := NewContainer("group")
	for _, x := range xs {
		r := NewRect("r", 10, 10, ColorWhite)
		r.SetPosition(x, 0)
		g.AddChild(r)
	}
	g.SetCacheAsBitmap(true)
	return g
}

func TestCacheAsBitmap(t *testing.T) {
	s := NewScene()
	g := cachedGroup(0, 12, 24, 36, 48)
	s.Root().AddChild(g)

	cmds := emit(s)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1 for a cached subtree", len(cmds))
	}
	if b := cmds[0].Image.Bounds(); b.Dx() != 58 || b.Dy() != 10 {
		t.Errorf("cached image = %dx%d, want 58x10", b.Dx(), b.Dy())
	}

	first := g.cacheTexture
	emit(s)
	if g.cacheTexture != first {
		t.Error("cache redrawn while still valid")
	}

	g.AddChild(NewRect("wide", 100, 10, ColorWhite))
	g.InvalidateCache()
	emit(s)
	if w := g.cacheBounds.Width; w != 100 {
		t.Errorf("bounds width = %v after invalidate, want 100", w)
	}

	g.SetCacheAsBitmap(false)
	if g.cacheTexture != nil {
		t.Error("texture kept after disabling the cache")
	}
	if got := len(emit(s)); got != 6 {
		t.Errorf("commands = %d, want 6 drawn directly", got)
	}
}

func TestCacheOffsetByBounds(t *testing.T) {
	s := NewScene()
	g := cachedGroup(-5)
	g.ChildAt(0).SetPosition(-5, 20)
	g.SetPosition(100, 100)
	s.Root().AddChild(g)

	m := emit(s)[0].Transform
	if !near(m[4], 95) || !near(m[5], 120) {
		t.Errorf("translation = (%v, %v), want (95, 120)", m[4], m[5])
	}
}

func TestNestedCaches(t *testing.T) {
	s := NewScene()
	outer := cachedGroup(0)
	inner := cachedGroup(0, 20)
	inner.SetPosition(50, 0)
	outer.AddChild(inner)
	s.Root().AddChild(outer)

	cmds := emit(s)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	if inner.cacheTexture == nil {
		t.Error("inner cache not rendered")
	}
	if w := outer.cacheBounds.Width; w != 80 {
		t.Errorf("outer width = %v, want 80", w)
	}
}

func TestSubtreeBoundsSkipsInvisible(t *testing.T) {
	g := NewContainer("g")
	g.AddChild(NewRect("a", 10, 10, ColorWhite))
	hidden := NewRect("b", 10, 10, ColorWhite)
	hidden.SetPosition(50, 50)
	hidden.Visible = false
	g.AddChild(hidden)

	if r := subtreeBounds(g); r != (Rect{0, 0, 10, 10}) {
		t.Errorf("bounds = %+v, want 10x10 at the origin", r)
	}
}

func TestTransformedAABBRotated(t *testing.T) {
	r := transformedAABB([6]float64{0, 1, -1, 0, 0, 0}, 10, 20)
	if !near(r.X, -20) || !near(r.Y, 0) || !near(r.Width, 20) || !near(r.Height, 10) {
		t.Errorf("aabb = %+v, want {-20 0 20 10}", r)
	}
}

func TestSceneDraw(t *testing.T) {
	s := NewScene()
	s.ClearColor = RGB(0x202020)
	s.Root().AddChild(NewRect("r", 10, 10, ColorWhite))
	s.Draw(ebiten.NewImage(64, 64))
	if len(s.commands) != 1 {
		t.Errorf("commands = %d, want 1", len(s.commands))
	}
}

func BenchmarkTraverseAndSort(b *testing.B) {
	s := NewScene()
	for i := range 1000 {
		r := NewRect("r", 4, 4, ColorWhite)
		r.GlobalOrder = i % 7
		s.Root().AddChild(r)
	}
	for b.Loop() {
		emit(s)
		s.mergeSort()
	}
}
