package contour

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointMirror(t *testing.T) {
	diff(t, Pt(-10, 0).Mirror(Pt(0, 0)), Pt(10, 0))
	diff(t, Pt(3, 4).Mirror(Pt(1, 1)), Pt(-1, -2))
	// Mirroring through itself is the identity.
	diff(t, Pt(2, 7).Mirror(Pt(2, 7)), Pt(2, 7))
}

func TestPointCollinear(t *testing.T) {
	if !Pt(0, 0).Collinear(Pt(1, 1), Pt(2, 2)) {
		t.Error("diagonal points should be collinear")
	}
	if !Pt(0, 5).Collinear(Pt(0, 0), Pt(0, -3)) {
		t.Error("vertical points should be collinear")
	}
	if Pt(0, 0).Collinear(Pt(1, 1), Pt(2, 2.5)) {
		t.Error("points off the line should not be collinear")
	}
}
