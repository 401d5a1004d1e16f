package contour

import (
	"testing"
)

// checkJoins verifies the contour invariant: the last point of every segment
// equals the first point of its successor, wrapping around when closed.
func checkJoins(t *testing.T, c *Contour) {
	t.Helper()
	n := c.Len()
	joins := n - 1
	if !c.Open() {
		joins = n
	}
	for i := 0; i < joins; i++ {
		a := c.Curve(i).End().Point
		b := c.Curve((i + 1) % n).Start().Point
		if a != b {
			t.Fatalf("join %d: %s != %s", i, a, b)
		}
	}
}

func refTo(contourIndex, curveIndex int, b *Bezier, pointIndex int) PointRef {
	return PointRef{Contour: contourIndex, Curve: curveIndex, ID: b.Point(pointIndex).ID}
}

// velocityPair builds an open contour of two cubics with a velocity join at
// (0, 0): handles at (-10, 0) and (10, 0).
func velocityPair() *Contour {
	c := NewContour()
	c.Push(NewCubic(false, Pt(-30, 0), Pt(-20, 0), Pt(-10, 0), Pt(0, 0)))
	c.Push(NewCubic(true, Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)))
	return c
}

func TestContourPushClassifies(t *testing.T) {
	c := velocityPair()
	diff(t, []Continuity{Velocity()}, c.Continuities())
	if !c.Open() {
		t.Error("contour should still be open")
	}
}

func TestContourClose(t *testing.T) {
	c := NewContour()
	c.Push(NewLine(Pt(0, 0), Pt(100, 0)))
	c.Push(NewLine(Pt(100, 0), Pt(50, 80)))
	c.Push(NewLine(Pt(50, 80), Pt(0, 0)))
	diff(t, 2, len(c.Continuities()))
	c.Close()
	if c.Open() {
		t.Fatal("contour should be closed")
	}
	diff(t, 3, len(c.Continuities()))
	// Closing again is a no-op.
	c.Close()
	diff(t, 3, len(c.Continuities()))
}

func TestTransformVelocityMirror(t *testing.T) {
	c := velocityPair()
	handle := c.Curve(0).Point(2) // (-10, 0)

	// Move the first handle to (-15, 2); the paired handle must relocate to
	// the exact mirror position (15, -2).
	m := Translate(Vec(-5, 2))
	updates := c.TransformPoints(0, []PointRef{refTo(0, 0, c.Curve(0), 2)}, m)

	diff(t, Pt(-15, 2), c.Curve(0).Point(2).Point)
	diff(t, Pt(15, -2), c.Curve(1).Point(1).Point)
	checkJoins(t, c)

	// Both the moved handle and the paired handle are reported.
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	diff(t, handle.ID, updates[0].Ref.ID)
	diff(t, Pt(-15, 2), updates[0].Pos)
	diff(t, Pt(15, -2), updates[1].Pos)
}

func TestTransformVelocityMirrorFromOtherSide(t *testing.T) {
	c := velocityPair()

	// Moving the second segment's leading handle mirrors back onto the first
	// segment's trailing handle.
	m := Translate(Vec(5, -2))
	c.TransformPoints(0, []PointRef{refTo(0, 1, c.Curve(1), 1)}, m)

	diff(t, Pt(15, -2), c.Curve(1).Point(1).Point)
	diff(t, Pt(-15, 2), c.Curve(0).Point(2).Point)
	checkJoins(t, c)
}

// tangentPair builds an open contour of two cubics with a tangent join at
// (0, 0): handle magnitudes 10 and 20, so the stored ratio is 2.
func tangentPair() *Contour {
	c := NewContour()
	c.Push(NewCubic(false, Pt(-40, 0), Pt(-30, 0), Pt(-10, 0), Pt(0, 0)))
	c.Push(NewCubic(true, Pt(0, 0), Pt(20, 0), Pt(30, 0), Pt(40, 0)))
	return c
}

func TestTransformTangentRatio(t *testing.T) {
	c := tangentPair()
	diff(t, []Continuity{Tangent(2.0)}, c.Continuities())

	// Move the trailing handle of the first segment; the paired handle keeps
	// the tangent direction with twice the magnitude on its side.
	m := Translate(Vec(5, 5))
	c.TransformPoints(0, []PointRef{refTo(0, 0, c.Curve(0), 2)}, m)

	diff(t, Pt(-5, 5), c.Curve(0).Point(2).Point)
	diff(t, Pt(10, -10), c.Curve(1).Point(1).Point)

	joint := c.Curve(1).Point(0).Point
	prevOff := c.Curve(0).Point(2).Sub(joint)
	nextOff := c.Curve(1).Point(1).Sub(joint)
	if got, want := nextOff.Hypot(), 2.0*prevOff.Hypot(); got != want {
		t.Errorf("handle magnitudes: got %g, want %g", got, want)
	}
	// Opposite directions along the same tangent line.
	if cross := prevOff.Cross(nextOff); cross != 0 {
		t.Errorf("handles left the tangent line, cross %g", cross)
	}
	if dot := prevOff.Dot(nextOff); dot >= 0 {
		t.Errorf("handles on the same side of the joint, dot %g", dot)
	}
	checkJoins(t, c)
}

func TestTransformTangentRatioFromNextSide(t *testing.T) {
	c := tangentPair()

	// Moving the next-side handle scales the previous handle by 1/beta.
	m := Translate(Vec(0, 10))
	c.TransformPoints(0, []PointRef{refTo(0, 1, c.Curve(1), 1)}, m)

	diff(t, Pt(20, 10), c.Curve(1).Point(1).Point)
	diff(t, Pt(-10, -5), c.Curve(0).Point(2).Point)
	checkJoins(t, c)
}

// closedSquare builds a closed contour of four cubic segments tracing a
// square with corners at (0,0), (100,0), (100,100), (0,100).
func closedSquare() *Contour {
	c := NewContour()
	c.Push(NewCubic(false, Pt(0, 0), Pt(30, 0), Pt(70, 0), Pt(100, 0)))
	c.Push(NewCubic(false, Pt(100, 0), Pt(100, 30), Pt(100, 70), Pt(100, 100)))
	c.Push(NewCubic(false, Pt(100, 100), Pt(70, 100), Pt(30, 100), Pt(0, 100)))
	c.Push(NewCubic(false, Pt(0, 100), Pt(0, 70), Pt(0, 30), Pt(0, 0)))
	c.Close()
	return c
}

func TestTransformEndpointDragsJoint(t *testing.T) {
	c := closedSquare()
	m := Translate(Vec(-10, -10))
	updates := c.TransformPoints(0, []PointRef{refTo(0, 0, c.Curve(0), 0)}, m)

	// The corner moves on both sides of the join, along with the adjacent
	// handles in both segments.
	diff(t, Pt(-10, -10), c.Curve(0).Point(0).Point)
	diff(t, Pt(-10, -10), c.Curve(3).Point(3).Point)
	diff(t, Pt(20, -10), c.Curve(0).Point(1).Point)
	diff(t, Pt(-10, 20), c.Curve(3).Point(2).Point)
	checkJoins(t, c)
	diff(t, 4, len(updates))

	// Everything else stayed put.
	diff(t, Pt(70, 0), c.Curve(0).Point(2).Point)
	diff(t, Pt(100, 0), c.Curve(0).Point(3).Point)
}

func TestTransformEndpointOpenContourNoWraparound(t *testing.T) {
	c := NewContour()
	c.Push(NewCubic(false, Pt(0, 0), Pt(30, 0), Pt(70, 0), Pt(100, 0)))
	c.Push(NewCubic(false, Pt(100, 0), Pt(100, 30), Pt(100, 70), Pt(100, 100)))

	// The very first endpoint of an open contour has no predecessor join.
	m := Translate(Vec(0, -10))
	updates := c.TransformPoints(0, []PointRef{refTo(0, 0, c.Curve(0), 0)}, m)

	diff(t, Pt(0, -10), c.Curve(0).Point(0).Point)
	diff(t, Pt(30, -10), c.Curve(0).Point(1).Point)
	// The last segment is untouched.
	diff(t, Pt(100, 100), c.Curve(1).Point(3).Point)
	diff(t, 2, len(updates))
	checkJoins(t, c)
}

func TestTransformAppliesOncePerPoint(t *testing.T) {
	c := closedSquare()
	// Select a corner and its adjacent handle together: the handle must be
	// transformed exactly once, not dragged again by the endpoint rule.
	refs := []PointRef{
		refTo(0, 0, c.Curve(0), 0),
		refTo(0, 0, c.Curve(0), 1),
	}
	m := Translate(Vec(5, 0))
	updates := c.TransformPoints(0, refs, m)

	diff(t, Pt(5, 0), c.Curve(0).Point(0).Point)
	diff(t, Pt(35, 0), c.Curve(0).Point(1).Point)

	seen := make(map[PointRef]int)
	for _, u := range updates {
		seen[u.Ref]++
		if seen[u.Ref] > 1 {
			t.Fatalf("point %v reported more than once", u.Ref)
		}
	}
	checkJoins(t, c)
}

func TestTransformStaleRefsIgnored(t *testing.T) {
	c := velocityPair()
	refs := []PointRef{
		{Contour: 0, Curve: 99, ID: c.Curve(0).Point(0).ID},
		{Contour: 5, Curve: 0, ID: c.Curve(0).Point(0).ID},
	}
	if updates := c.TransformPoints(0, refs, Translate(Vec(1, 1))); updates != nil {
		t.Errorf("stale refs should produce no updates, got %v", updates)
	}
	diff(t, Pt(-30, 0), c.Curve(0).Point(0).Point)
}

func TestReverseDirectionInvolution(t *testing.T) {
	c := tangentPair()
	c.Push(NewCubic(true, Pt(40, 0), Pt(50, 0), Pt(60, 10), Pt(70, 10)))

	type state struct {
		Points [][]CurvePoint
		Conts  []Continuity
	}
	capture := func() state {
		var s state
		for _, b := range c.Curves() {
			pts := make([]CurvePoint, b.Len())
			copy(pts, b.Points())
			s.Points = append(s.Points, pts)
		}
		s.Conts = append(s.Conts, c.Continuities()...)
		return s
	}

	before := capture()
	c.ReverseDirection()
	checkJoins(t, c)
	c.ReverseDirection()
	diff(t, before, capture())
}
