package showcase

import "math"

// Affine matrices are stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0  1  |
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform maps n's local space into its parent's: move the
// origin (pivot plus anchor times size) to zero, scale, rotate, then move
// to (X, Y).
func computeLocalTransform(n *Node) [6]float64 {
	ox, oy := n.origin()
	s, c := math.Sincos(n.Rotation)
	a, b := c*n.ScaleX, s*n.ScaleX
	cc, d := -s*n.ScaleY, c*n.ScaleY
	return [6]float64{a, b, cc, d, n.X - a*ox - cc*oy, n.Y - b*ox - d*oy}
}

// origin is the local point that sits at (X, Y) and that scale and
// rotation turn around.
func (n *Node) origin() (float64, float64) {
	if n.AnchorX == 0 && n.AnchorY == 0 {
		return n.PivotX, n.PivotY
	}
	w, h := n.Size()
	return n.PivotX + n.AnchorX*w, n.PivotY + n.AnchorY*h
}

// multiplyAffine returns p applied after c.
func multiplyAffine(p, c [6]float64) [6]float64 {
	var m [6]float64
	m[0] = p[0]*c[0] + p[2]*c[1]
	m[1] = p[1]*c[0] + p[3]*c[1]
	m[2] = p[0]*c[2] + p[2]*c[3]
	m[3] = p[1]*c[2] + p[3]*c[3]
	m[4], m[5] = transformPoint(p, c[4], c[5])
	return m
}

// invertAffine returns the inverse of m, or the identity when m collapses
// space to a line or a point.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	a, b := m[3]/det, -m[1]/det
	c, d := -m[2]/det, m[0]/det
	return [6]float64{a, b, c, d, -a*m[4] - c*m[5], -b*m[4] - d*m[5]}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform refreshes the world matrix of n and its subtree.
// Matrices are recomputed for dirty nodes and everything below them; world
// alpha is recomputed on every call so writes to Alpha need no flag.
func updateWorldTransform(n *Node, parent [6]float64, parentAlpha float64, parentChanged bool) {
	changed := parentChanged || n.transformDirty
	if changed {
		n.worldTransform = multiplyAffine(parent, computeLocalTransform(n))
		n.transformDirty = false
	}
	n.worldAlpha = n.Alpha * parentAlpha
	for _, c := range n.children {
		updateWorldTransform(c, n.worldTransform, n.worldAlpha, changed)
	}
}

// SetPosition moves n within its parent.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.transformDirty = true
}

// SetScale sets both scale factors.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.transformDirty = true
}

// SetRotation sets the clockwise rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the origin offset in pixels.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX, n.PivotY = px, py
	n.transformDirty = true
}

// SetAnchor sets the origin as a fraction of n's size: (0, 0) is the
// top-left corner, (0.5, 0.5) the centre and (0, 1) the bottom-left. It is
// added to the pivot.
func (n *Node) SetAnchor(ax, ay float64) {
	n.AnchorX, n.AnchorY = ax, ay
	n.transformDirty = true
}

// SetAlpha sets n's opacity. It multiplies with the parents' alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}

// MarkDirty forces n's matrix to be recomputed next frame. Call it after
// writing transform fields directly or after a change of size moves the
// anchor.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// computeWorld builds n's world matrix from the local transforms of n and
// its ancestors, ignoring the per-frame cache.
func (n *Node) computeWorld() [6]float64 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(computeLocalTransform(p), m)
	}
	return m
}

// WorldToLocal converts a scene point into n's local space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.computeWorld()), wx, wy)
}

// LocalToWorld converts a point in n's local space into scene space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.computeWorld(), lx, ly)
}

// LocalToNode converts a point in n's local space to other's local space.
func (n *Node) LocalToNode(other *Node, lx, ly float64) (float64, float64) {
	wx, wy := n.LocalToWorld(lx, ly)
	return other.WorldToLocal(wx, wy)
}
