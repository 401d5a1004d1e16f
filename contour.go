package contour

import (
	"log/slog"

	"github.com/google/uuid"
)

// Contour is one open or closed path made of ordered Bézier segments. It
// carries one [Continuity] per join: len(curves)-1 joins while open, one per
// segment once closed (the wraparound join included).
//
// Invariant: the last point of segment i and the first point of segment i+1
// hold equal coordinates. Edits go through [Contour.TransformPoints], which
// keeps both copies of every joint synchronized atomically.
type Contour struct {
	curves       []*Bezier
	continuities []Continuity
	open         bool
	betaTol      float64
}

// NewContour returns an empty, open contour.
func NewContour() *Contour {
	return &Contour{open: true, betaTol: DefaultBetaTolerance}
}

// SetBetaTolerance overrides [DefaultBetaTolerance] for future
// classifications on this contour.
func (c *Contour) SetBetaTolerance(tol float64) {
	if tol > 0 {
		c.betaTol = tol
	}
}

// Open reports whether the contour is still open.
func (c *Contour) Open() bool {
	return c.open
}

// Len returns the number of segments.
func (c *Contour) Len() int {
	return len(c.curves)
}

// Curve returns the i'th segment.
func (c *Contour) Curve(i int) *Bezier {
	return c.curves[i]
}

// Curves returns the contour's segments. The slice is owned by the contour.
func (c *Contour) Curves() []*Bezier {
	return c.curves
}

// Continuities returns the per-join classifications, in join order.
func (c *Contour) Continuities() []Continuity {
	return c.continuities
}

// Push appends a segment, classifying the continuity of the new join against
// the current last segment. Empty segments are ignored.
func (c *Contour) Push(b *Bezier) {
	if b == nil || len(b.points) == 0 {
		return
	}
	if len(c.curves) == 0 {
		c.curves = append(c.curves, b)
		return
	}
	prev := c.curves[len(c.curves)-1]
	c.continuities = append(c.continuities, classifyContinuity(prev, b, c.betaTol))
	c.curves = append(c.curves, b)
}

// Close marks the contour closed and classifies the wraparound join between
// the last and first segments. Closing an already closed contour is a no-op.
func (c *Contour) Close() {
	if !c.open {
		return
	}
	c.open = false
	if len(c.curves) == 0 {
		return
	}
	last := c.curves[len(c.curves)-1]
	first := c.curves[0]
	c.continuities = append(c.continuities, classifyContinuity(last, first, c.betaTol))
}

// ReverseDirection flips the winding of the contour: segment order, point
// order within each segment, and join order all reverse. Applying it twice
// restores the original contour exactly.
func (c *Contour) ReverseDirection() {
	for i, j := 0, len(c.curves)-1; i < j; i, j = i+1, j-1 {
		c.curves[i], c.curves[j] = c.curves[j], c.curves[i]
	}
	for i, j := 0, len(c.continuities)-1; i < j; i, j = i+1, j-1 {
		c.continuities[i], c.continuities[j] = c.continuities[j], c.continuities[i]
	}
	for _, b := range c.curves {
		b.Reverse()
	}
}

// joinAfter returns the continuity of the join between segment i and its
// successor, if that join exists.
func (c *Contour) joinAfter(i int) (Continuity, bool) {
	if i < len(c.continuities) {
		return c.continuities[i], true
	}
	return Continuity{}, false
}

// joinBefore returns the continuity of the join between segment i and its
// predecessor, if that join exists. For a closed contour the predecessor of
// segment 0 is the last segment.
func (c *Contour) joinBefore(i int) (Continuity, bool) {
	if i > 0 {
		if i-1 < len(c.continuities) {
			return c.continuities[i-1], true
		}
		return Continuity{}, false
	}
	if c.open || len(c.continuities) == 0 {
		return Continuity{}, false
	}
	return c.continuities[len(c.continuities)-1], true
}

// PointUpdate names a point that moved and its new position.
type PointUpdate struct {
	Ref PointRef
	Pos Point
}

type curvePointKey struct {
	curve int
	id    uuid.UUID
}

// TransformPoints applies m to the points of this contour named by refs,
// plus every other point whose position is constrained to move in lock-step:
// moving an endpoint drags its adjacent handles and the mirror copy of the
// joint on the neighboring segment; moving a handle re-positions the paired
// handle across the join as the join's classified continuity demands.
//
// contourIndex is this contour's index in its glyph; refs naming other
// contours, out-of-range segments, or identities no longer present are
// skipped. The returned slice holds every point that actually changed, for
// spatial-index refresh and undo diffing. Each point is transformed at most
// once per call.
func (c *Contour) TransformPoints(contourIndex int, refs []PointRef, m Affine) []PointUpdate {
	targets := make(map[curvePointKey]bool)
	targetCurves := make(map[int]bool)
	for _, r := range refs {
		if r.Contour != contourIndex {
			continue
		}
		if r.Curve < 0 || r.Curve >= len(c.curves) {
			logger().Debug("skipping stale point reference", slog.Int("curve", r.Curve))
			continue
		}
		targets[curvePointKey{r.Curve, r.ID}] = true
		targetCurves[r.Curve] = true
	}
	if len(targets) == 0 {
		return nil
	}

	// Everything in the updated set has its final position; a point reachable
	// both as a target and as a propagated neighbor is transformed once.
	updated := make(map[curvePointKey]bool, len(targets))
	for k := range targets {
		updated[k] = true
	}

	var out []PointUpdate
	set := func(curve int, b *Bezier, i int, pos Point) {
		b.points[i].Point = pos
		updated[curvePointKey{curve, b.points[i].ID}] = true
		out = append(out, PointUpdate{
			Ref: PointRef{Contour: contourIndex, Curve: curve, ID: b.points[i].ID},
			Pos: pos,
		})
	}
	apply := func(curve int, b *Bezier, i int) {
		set(curve, b, i, b.points[i].Point.Transform(m))
	}

	n := len(c.curves)
	closed := !c.open
	for curr := 0; curr < n; curr++ {
		if !targetCurves[curr] {
			continue
		}
		b := c.curves[curr]
		prevIdx := (curr - 1 + n) % n
		nextIdx := (curr + 1) % n
		prev := c.curves[prevIdx]
		next := c.curves[nextIdx]

		// Collect the targeted indices up front; neighbor writes change
		// positions, never the membership of this segment's point list.
		var hits []int
		for i := range b.points {
			if targets[curvePointKey{curr, b.points[i].ID}] {
				hits = append(hits, i)
			}
		}
		for _, i := range hits {
			apply(curr, b, i)
			last := len(b.points) - 1
			switch {
			case i == 0:
				// First on-curve point: drag this segment's leading handle and
				// the predecessor's copy of the joint with its trailing handle.
				if len(b.points) > 2 && !updated[curvePointKey{curr, b.points[1].ID}] {
					apply(curr, b, 1)
				}
				if closed || curr != 0 {
					pl := len(prev.points)
					if pl > 0 && !updated[curvePointKey{prevIdx, prev.points[pl-1].ID}] {
						apply(prevIdx, prev, pl-1)
					}
					if pl > 2 && !updated[curvePointKey{prevIdx, prev.points[pl-2].ID}] {
						apply(prevIdx, prev, pl-2)
					}
				}
			case i == last:
				// Last on-curve point: symmetric with the successor segment.
				if len(b.points) > 2 && !updated[curvePointKey{curr, b.points[i-1].ID}] {
					apply(curr, b, i-1)
				}
				if closed || curr+1 != n {
					nl := len(next.points)
					if nl > 0 && !updated[curvePointKey{nextIdx, next.points[0].ID}] {
						apply(nextIdx, next, 0)
					}
					if nl > 2 && !updated[curvePointKey{nextIdx, next.points[1].ID}] {
						apply(nextIdx, next, 1)
					}
				}
			case i == 1:
				// Leading handle: re-enforce the join behind this segment.
				cont, ok := c.joinBefore(curr)
				if !ok {
					break
				}
				pl := len(prev.points)
				if pl > 2 && !updated[curvePointKey{prevIdx, prev.points[pl-2].ID}] {
					joint := b.points[0].Point
					switch cont.Kind {
					case VelocityContinuity:
						set(prevIdx, prev, pl-2, b.points[1].Point.Mirror(joint))
					case TangentContinuity:
						off := b.points[1].Sub(joint)
						set(prevIdx, prev, pl-2, joint.Translate(off.Div(cont.Beta).Negate()))
					}
				}
			case i == last-1:
				// Trailing handle: re-enforce the join ahead of this segment.
				cont, ok := c.joinAfter(curr)
				if !ok {
					break
				}
				nl := len(next.points)
				if nl > 2 && !updated[curvePointKey{nextIdx, next.points[1].ID}] {
					joint := b.points[last].Point
					switch cont.Kind {
					case VelocityContinuity:
						set(nextIdx, next, 1, b.points[i].Point.Mirror(joint))
					case TangentContinuity:
						off := b.points[i].Sub(joint)
						set(nextIdx, next, 1, joint.Translate(off.Mul(cont.Beta).Negate()))
					}
				}
			}
		}
	}
	return out
}
