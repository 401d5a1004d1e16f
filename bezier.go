package contour

import (
	"fmt"

	"github.com/google/uuid"
)

// CurvePoint is a control point with a stable identity. The identity
// correlates the point across edits and undo steps and keys spatial-query
// results; replacing the point's position never changes it.
//
// Whether a point is an on-curve endpoint or an off-curve handle is
// positional, not a property of the point: index 0 and the last index of a
// segment's point list are on-curve, interior indices are handles.
type CurvePoint struct {
	Point
	ID uuid.UUID
}

// NewCurvePoint returns a control point at pt with a fresh identity.
func NewCurvePoint(pt Point) CurvePoint {
	return CurvePoint{Point: pt, ID: uuid.New()}
}

// Bezier is a single curve segment of degree 0 to 3, defined by up to four
// control points. The smooth flag records the join continuity preference used
// when the segment is appended to a contour.
type Bezier struct {
	points []CurvePoint
	smooth bool
}

// NewBezier creates a segment from the given positions, assigning each point
// a fresh identity. The point count must be 0, 2, 3 or 4; anything else is
// rejected with [ErrInvalidPointCount].
func NewBezier(smooth bool, pts ...Point) (*Bezier, error) {
	switch len(pts) {
	case 0, 2, 3, 4:
	default:
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPointCount, len(pts))
	}
	cps := make([]CurvePoint, len(pts))
	for i, pt := range pts {
		cps[i] = NewCurvePoint(pt)
	}
	return &Bezier{points: cps, smooth: smooth}, nil
}

// NewLine returns a degree-1 segment from p0 to p1.
func NewLine(p0, p1 Point) *Bezier {
	b, _ := NewBezier(false, p0, p1)
	return b
}

// NewQuadratic returns a degree-2 segment with a single handle.
func NewQuadratic(smooth bool, p0, p1, p2 Point) *Bezier {
	b, _ := NewBezier(smooth, p0, p1, p2)
	return b
}

// NewCubic returns a degree-3 segment with two handles.
func NewCubic(smooth bool, p0, p1, p2, p3 Point) *Bezier {
	b, _ := NewBezier(smooth, p0, p1, p2, p3)
	return b
}

// Points returns the segment's control points. The slice is owned by the
// segment; callers must not grow or shrink it.
func (b *Bezier) Points() []CurvePoint {
	return b.points
}

// Len returns the number of control points.
func (b *Bezier) Len() int {
	return len(b.points)
}

// Point returns the i'th control point.
func (b *Bezier) Point(i int) CurvePoint {
	return b.points[i]
}

// Smooth reports the segment's join continuity preference.
func (b *Bezier) Smooth() bool {
	return b.smooth
}

func (b *Bezier) SetSmooth(smooth bool) {
	b.smooth = smooth
}

// Degree returns the curve degree inferred from the point count: 1 for a
// line, 2 for a quadratic, 3 for a cubic. ok is false for an empty segment.
func (b *Bezier) Degree() (degree int, ok bool) {
	if len(b.points) == 0 {
		return 0, false
	}
	return len(b.points) - 1, true
}

// SetPoint replaces the position of the i'th control point, preserving its
// identity.
func (b *Bezier) SetPoint(i int, pos Point) {
	b.points[i].Point = pos
}

// Start returns the first on-curve point. Only valid for non-empty segments.
func (b *Bezier) Start() CurvePoint {
	return b.points[0]
}

// End returns the last on-curve point. Only valid for non-empty segments.
func (b *Bezier) End() CurvePoint {
	return b.points[len(b.points)-1]
}

// Reverse flips the direction of the segment by reversing its point order.
// Identities travel with their points.
func (b *Bezier) Reverse() {
	for i, j := 0, len(b.points)-1; i < j; i, j = i+1, j-1 {
		b.points[i], b.points[j] = b.points[j], b.points[i]
	}
}

// Eval evaluates the curve at parameter t in [0, 1].
func (b *Bezier) Eval(t float64) Point {
	mt := 1.0 - t
	switch len(b.points) {
	case 2:
		return b.points[0].Lerp(b.points[1].Point, t)
	case 3:
		a := Vec2(b.points[0].Point).Mul(mt * mt)
		m := Vec2(b.points[1].Point).Mul(mt * 2.0)
		c := Vec2(b.points[2].Point).Mul(t)
		return Point(a.Add(m.Add(c).Mul(t)))
	case 4:
		a := Vec2(b.points[0].Point).Mul(mt * mt * mt)
		m := Vec2(b.points[1].Point).Mul(mt * mt * 3.0)
		c := Vec2(b.points[2].Point).Mul(mt * 3.0)
		d := Vec2(b.points[3].Point)
		return Point(a.Add(m.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t)))
	default:
		return Point{}
	}
}

const onCurveQuerySamples = 64

// OnCurveQuery reports whether position lies within tolerance of the rendered
// curve: straight-line distance for lines, parametric sampling for quadratics
// and cubics. A non-positive tolerance selects [DefaultOnCurveTolerance].
func (b *Bezier) OnCurveQuery(position Point, tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = DefaultOnCurveTolerance
	}
	degree, ok := b.Degree()
	if !ok {
		return false
	}
	if degree == 1 {
		return segmentDistance(position, b.points[0].Point, b.points[1].Point) <= tolerance
	}
	tol2 := tolerance * tolerance
	for i := 0; i <= onCurveQuerySamples; i++ {
		t := float64(i) / onCurveQuerySamples
		if b.Eval(t).DistanceSquared(position) <= tol2 {
			return true
		}
	}
	return false
}

// segmentDistance returns the distance from pt to the segment p0–p1.
func segmentDistance(pt, p0, p1 Point) float64 {
	d := p1.Sub(p0)
	l2 := d.Hypot2()
	if l2 == 0 {
		return pt.Distance(p0)
	}
	t := pt.Sub(p0).Dot(d) / l2
	t = max(0, min(1, t))
	return pt.Distance(p0.Translate(d.Mul(t)))
}
