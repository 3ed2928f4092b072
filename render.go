package showcase

import (
	"image"
	"math"
	"math/bits"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderCommand draws one image. Commands are built by walking the tree and
// then ordered by RenderLayer, GlobalOrder and finally tree position.
type RenderCommand struct {
	Image       *ebiten.Image
	Transform   [6]float64 // image space to target space
	Color       Color      // straight alpha, world alpha folded in
	BlendMode   BlendMode
	RenderLayer uint8
	GlobalOrder int
	treeOrder   int
}

// traverse emits commands for n and its visible descendants using the world
// transforms computed by updateWorldTransform.
func (s *Scene) traverse(n *Node, order *int) {
	if !n.Visible {
		return
	}
	if n.cacheEnabled {
		s.emitCached(n, n.worldTransform, n.worldAlpha, order)
		return
	}
	s.emitNode(n, n.worldTransform, n.worldAlpha, order)
	for _, c := range sortedChildrenOf(n) {
		s.traverse(c, order)
	}
}

// traverseLocal is traverse for offscreen passes: transforms are composed
// on the way down from m instead of read from the world cache.
func (s *Scene) traverseLocal(n *Node, m [6]float64, alpha float64, order *int) {
	if !n.Visible {
		return
	}
	m = multiplyAffine(m, computeLocalTransform(n))
	alpha *= n.Alpha
	if n.cacheEnabled {
		s.emitCached(n, m, alpha, order)
		return
	}
	s.emitNode(n, m, alpha, order)
	for _, c := range sortedChildrenOf(n) {
		s.traverseLocal(c, m, alpha, order)
	}
}

// emitNode queues n's own image, if it has one and can be seen.
func (s *Scene) emitNode(n *Node, m [6]float64, alpha float64, order *int) {
	var img *ebiten.Image
	switch {
	case n.Type == NodeTypeSprite && n.Image != nil:
		img = n.Image
		b := img.Bounds()
		iw, ih := float64(b.Dx()), float64(b.Dy())
		if w, h := n.Size(); iw > 0 && ih > 0 && (w != iw || h != ih) {
			m = multiplyAffine(m, [6]float64{w / iw, 0, 0, h / ih, 0, 0})
		}
	case n.Type == NodeTypeText && n.TextBlock != nil:
		img = n.TextBlock.rendered()
	}
	if img == nil || alpha <= 0 || n.Color.A <= 0 {
		return
	}
	tint := n.Color
	tint.A *= alpha
	s.push(n, img, m, tint, order)
}

func (s *Scene) push(n *Node, img *ebiten.Image, m [6]float64, c Color, order *int) {
	*order++
	s.commands = append(s.commands, RenderCommand{
		Image:       img,
		Transform:   m,
		Color:       c,
		BlendMode:   n.BlendMode,
		RenderLayer: n.RenderLayer,
		GlobalOrder: n.GlobalOrder,
		treeOrder:   *order,
	})
}

// drawsBefore reports whether a belongs at or before b. Equal keys keep tree
// order, which makes the merge stable.
func drawsBefore(a, b *RenderCommand) bool {
	switch {
	case a.RenderLayer != b.RenderLayer:
		return a.RenderLayer < b.RenderLayer
	case a.GlobalOrder != b.GlobalOrder:
		return a.GlobalOrder < b.GlobalOrder
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort orders s.commands with a bottom-up merge through s.sortBuf. It
// allocates only when the buffer has to grow.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n < 2 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]RenderCommand, n)
	}
	src, dst := s.commands, s.sortBuf[:n]
	for run := 1; run < n; run *= 2 {
		for lo := 0; lo < n; lo += 2 * run {
			merge(dst, src, lo, min(lo+run, n), min(lo+2*run, n))
		}
		src, dst = dst, src
	}
	// src holds the result after the final swap.
	if &src[0] != &s.commands[0] {
		copy(s.commands, src)
	}
}

// merge writes the union of the sorted runs src[lo:mid] and src[mid:hi]
// into dst[lo:hi].
func merge(dst, src []RenderCommand, lo, mid, hi int) {
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		if j >= hi || (i < mid && drawsBefore(&src[i], &src[j])) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
	}
}

// submit draws the queued commands onto target in order.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	for i := range s.commands {
		cmd := &s.commands[i]
		m := cmd.Transform
		op.GeoM.Reset()
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])
		c := cmd.Color
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		op.Blend = cmd.BlendMode.EbitenBlend()
		target.DrawImage(cmd.Image, &op)
	}
}

// renderTexturePool recycles offscreen images. Sizes are rounded up to
// powers of two so that nearby requests share a bucket.
type renderTexturePool struct {
	free map[image.Point][]*ebiten.Image
}

// Acquire returns a cleared image at least w×h pixels.
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	size := image.Pt(nextPowerOfTwo(w), nextPowerOfTwo(h))
	if list := p.free[size]; len(list) > 0 {
		img := list[len(list)-1]
		p.free[size] = list[:len(list)-1]
		img.Clear()
		return img
	}
	return ebiten.NewImageWithOptions(image.Rectangle{Max: size}, &ebiten.NewImageOptions{Unmanaged: true})
}

// Release hands img back for a later Acquire.
func (p *renderTexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	if p.free == nil {
		p.free = make(map[image.Point][]*ebiten.Image)
	}
	size := img.Bounds().Size()
	p.free[size] = append(p.free[size], img)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// SetCacheAsBitmap draws n's subtree once into an offscreen texture and
// reuses it every frame after. n's own transform and alpha still apply to
// the texture; changes below n show only after InvalidateCache.
func (n *Node) SetCacheAsBitmap(enabled bool) {
	if n.cacheEnabled == enabled {
		return
	}
	n.cacheEnabled, n.cacheDirty = enabled, enabled
	if !enabled && n.cacheTexture != nil {
		n.cacheTexture.Deallocate()
		n.cacheTexture = nil
	}
}

// CacheAsBitmap reports whether SetCacheAsBitmap is on.
func (n *Node) CacheAsBitmap() bool {
	return n.cacheEnabled
}

// InvalidateCache redraws the cached texture next frame.
func (n *Node) InvalidateCache() {
	if n.cacheEnabled {
		n.cacheDirty = true
	}
}

func (s *Scene) emitCached(n *Node, m [6]float64, alpha float64, order *int) {
	if n.cacheTexture == nil || n.cacheDirty {
		s.renderCache(n)
	}
	if n.cacheTexture == nil || alpha <= 0 {
		return
	}
	// The texture starts at the top-left of the cached bounds.
	b := n.cacheBounds
	m[4], m[5] = transformPoint(m, b.X, b.Y)
	visible := image.Rect(0, 0, int(math.Ceil(b.Width)), int(math.Ceil(b.Height)))
	s.push(n, n.cacheTexture.SubImage(visible).(*ebiten.Image), m, Color{1, 1, 1, alpha}, order)
}

// renderCache redraws n's subtree into a pooled texture. n contributes its
// content but not its own transform or alpha.
func (s *Scene) renderCache(n *Node) {
	s.rtPool.Release(n.cacheTexture)
	n.cacheTexture = nil
	n.cacheDirty = false

	b := subtreeBounds(n)
	n.cacheBounds = b
	w, h := int(math.Ceil(b.Width)), int(math.Ceil(b.Height))
	if w <= 0 || h <= 0 {
		return
	}
	target := s.rtPool.Acquire(w, h)

	// Nested caches get their own buffer while this one is in use.
	saved := s.commands
	s.commands, s.offscreenCmds = s.offscreenCmds[:0], nil
	shift := [6]float64{1, 0, 0, 1, -b.X, -b.Y}
	order := 0
	s.emitNode(n, shift, 1, &order)
	for _, c := range sortedChildrenOf(n) {
		s.traverseLocal(c, shift, 1, &order)
	}
	s.mergeSort()
	s.submit(target)
	s.offscreenCmds, s.commands = s.commands[:0], saved

	n.cacheTexture = target
}

// subtreeBounds returns the box around everything n and its visible
// descendants draw, in n's local space.
func subtreeBounds(n *Node) Rect {
	var (
		r     Rect
		found bool
	)
	var walk func(*Node, [6]float64)
	walk = func(n *Node, m [6]float64) {
		if w, h := n.Size(); n.Type != NodeTypeContainer && w > 0 && h > 0 {
			box := transformedAABB(m, w, h)
			if found {
				box = rectUnion(r, box)
			}
			r, found = box, true
		}
		for _, c := range n.children {
			if c.Visible {
				walk(c, multiplyAffine(m, computeLocalTransform(c)))
			}
		}
	}
	walk(n, identityTransform)
	return r
}

// transformedAABB bounds the w×h rectangle at the origin once m is applied.
func transformedAABB(m [6]float64, w, h float64) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}} {
		x, y := transformPoint(m, p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func rectUnion(a, b Rect) Rect {
	x, y := math.Min(a.X, b.X), math.Min(a.Y, b.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(a.X+a.Width, b.X+b.Width) - x,
		Height: math.Max(a.Y+a.Height, b.Y+b.Height) - y,
	}
}
