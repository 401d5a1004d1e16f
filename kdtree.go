package contour

import (
	"log/slog"
	"sort"
)

// IndexedPoint pairs a point reference with the position it was indexed at.
type IndexedPoint struct {
	Ref PointRef
	Pos Point
}

// PointIndexTree is a 2-D kd-tree over every editable point of a glyph. It is
// a derived cache: after any geometry mutation the tree must be rebuilt
// before the next query, and the [Editor] treats the rebuild as part of the
// mutation's completion. Stale results are a correctness bug, not a
// performance trade-off.
type PointIndexTree struct {
	root   *kdNode
	size   int
	radius float64
}

type kdNode struct {
	pt    IndexedPoint
	left  *kdNode
	right *kdNode
}

// NewPointIndexTree returns an empty index with [DefaultQueryRadius].
func NewPointIndexTree() *PointIndexTree {
	return &PointIndexTree{radius: DefaultQueryRadius}
}

// SetQueryRadius overrides the radius bounding [PointIndexTree.QueryPoint].
func (t *PointIndexTree) SetQueryRadius(r float64) {
	if r > 0 {
		t.radius = r
	}
}

// Len returns the number of indexed points.
func (t *PointIndexTree) Len() int {
	return t.size
}

// Rebuild re-indexes all points of the glyph, discarding previous contents.
func (t *PointIndexTree) Rebuild(g *Glyph) {
	pts := g.Points()
	t.root = buildKd(pts, 0)
	t.size = len(pts)
	logger().Debug("rebuilt point index", slog.Int("points", t.size))
}

func buildKd(pts []IndexedPoint, depth int) *kdNode {
	if len(pts) == 0 {
		return nil
	}
	axis := depth % 2
	sort.Slice(pts, func(i, j int) bool {
		if axis == 0 {
			return pts[i].Pos.X < pts[j].Pos.X
		}
		return pts[i].Pos.Y < pts[j].Pos.Y
	})
	mid := len(pts) / 2
	return &kdNode{
		pt:    pts[mid],
		left:  buildKd(pts[:mid], depth+1),
		right: buildKd(pts[mid+1:], depth+1),
	}
}

// QueryPoint returns the indexed points within the configured radius of
// position, nearest first, at most maxCandidates of them. A non-positive
// maxCandidates returns all points in range.
func (t *PointIndexTree) QueryPoint(position Point, maxCandidates int) []IndexedPoint {
	type hit struct {
		d2 float64
		ip IndexedPoint
	}
	r2 := t.radius * t.radius
	var hits []hit
	var walk func(n *kdNode, depth int)
	walk = func(n *kdNode, depth int) {
		if n == nil {
			return
		}
		if d2 := n.pt.Pos.DistanceSquared(position); d2 <= r2 {
			hits = append(hits, hit{d2, n.pt})
		}
		var delta float64
		if depth%2 == 0 {
			delta = position.X - n.pt.Pos.X
		} else {
			delta = position.Y - n.pt.Pos.Y
		}
		near, far := n.left, n.right
		if delta > 0 {
			near, far = far, near
		}
		walk(near, depth+1)
		if delta*delta <= r2 {
			walk(far, depth+1)
		}
	}
	walk(t.root, 0)
	sort.Slice(hits, func(i, j int) bool { return hits[i].d2 < hits[j].d2 })
	if maxCandidates > 0 && len(hits) > maxCandidates {
		hits = hits[:maxCandidates]
	}
	out := make([]IndexedPoint, len(hits))
	for i, h := range hits {
		out[i] = h.ip
	}
	return out
}

// QueryRegion returns all indexed points inside the rectangle spanned by the
// two corners, in no particular order. The corners may be given in any
// orientation.
func (t *PointIndexTree) QueryRegion(cornerA, cornerB Point) []IndexedPoint {
	rect := NewRectFromPoints(cornerA, cornerB)
	var out []IndexedPoint
	var walk func(n *kdNode, depth int)
	walk = func(n *kdNode, depth int) {
		if n == nil {
			return
		}
		if rect.Contains(n.pt.Pos) {
			out = append(out, n.pt)
		}
		var lo, hi, v float64
		if depth%2 == 0 {
			lo, hi, v = rect.X0, rect.X1, n.pt.Pos.X
		} else {
			lo, hi, v = rect.Y0, rect.Y1, n.pt.Pos.Y
		}
		if lo <= v {
			walk(n.left, depth+1)
		}
		if hi >= v {
			walk(n.right, depth+1)
		}
	}
	walk(t.root, 0)
	return out
}
