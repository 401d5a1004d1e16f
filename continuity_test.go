package contour

import (
	"testing"
)

func TestClassifyNotSmooth(t *testing.T) {
	prev := NewCubic(false, Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0))
	next := NewCubic(false, Pt(30, 0), Pt(40, 0), Pt(50, 0), Pt(60, 0))
	got := classifyContinuity(prev, next, DefaultBetaTolerance)
	diff(t, Positional(), got)
}

func TestClassifyVelocity(t *testing.T) {
	// Collinear handles of equal magnitude on either side of the joint.
	prev := NewCubic(false, Pt(-30, 0), Pt(-20, 0), Pt(-10, 0), Pt(0, 0))
	next := NewCubic(true, Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0))
	diff(t, Velocity(), classifyContinuity(prev, next, DefaultBetaTolerance))
}

func TestClassifyVelocityWithinTolerance(t *testing.T) {
	// A ratio within the beta tolerance of 1.0 still counts as velocity.
	prev := NewCubic(false, Pt(-30, 0), Pt(-20, 0), Pt(-10, 0), Pt(0, 0))
	next := NewCubic(true, Pt(0, 0), Pt(10.01, 0), Pt(20, 0), Pt(30, 0))
	diff(t, Velocity(), classifyContinuity(prev, next, DefaultBetaTolerance))
}

func TestClassifyTangent(t *testing.T) {
	prev := NewCubic(false, Pt(-30, 0), Pt(-20, 0), Pt(-10, 0), Pt(0, 0))
	next := NewCubic(true, Pt(0, 0), Pt(20, 0), Pt(30, 0), Pt(40, 0))
	got := classifyContinuity(prev, next, DefaultBetaTolerance)
	diff(t, Tangent(2.0), got)
}

func TestClassifyPointReflection(t *testing.T) {
	// Quadratic sides with point-reflected handles.
	prev := NewQuadratic(false, Pt(-20, 0), Pt(-10, 5), Pt(0, 0))
	next := NewQuadratic(true, Pt(0, 0), Pt(10, -5), Pt(20, 0))
	diff(t, Velocity(), classifyContinuity(prev, next, DefaultBetaTolerance))
}

func TestClassifyNonCollinear(t *testing.T) {
	prev := NewCubic(false, Pt(-30, 0), Pt(-20, 0), Pt(-10, 0), Pt(0, 0))
	next := NewCubic(true, Pt(0, 0), Pt(10, 7), Pt(20, 0), Pt(30, 0))
	diff(t, Positional(), classifyContinuity(prev, next, DefaultBetaTolerance))
}

func TestClassifyDegenerateHandle(t *testing.T) {
	// The previous handle coincides with the joint: the ratio denominator is
	// zero and classification must fall back to positional, never NaN.
	prev := NewCubic(false, Pt(-30, 0), Pt(-20, 0), Pt(0, 0), Pt(0, 0))
	next := NewCubic(true, Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0))
	diff(t, Positional(), classifyContinuity(prev, next, DefaultBetaTolerance))
}

func TestClassifyLineSides(t *testing.T) {
	// A line has no handle, so there is no constraint to classify.
	prev := NewLine(Pt(-10, 0), Pt(0, 0))
	next := NewCubic(true, Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0))
	diff(t, Positional(), classifyContinuity(prev, next, DefaultBetaTolerance))
}

func TestClassifyJoinMismatchPanics(t *testing.T) {
	prev := NewCubic(false, Pt(-30, 0), Pt(-20, 0), Pt(-10, 0), Pt(0, 0))
	next := NewCubic(true, Pt(5, 5), Pt(10, 0), Pt(20, 0), Pt(30, 0))
	defer func() {
		if recover() == nil {
			t.Error("classification on non-coincident endpoints must panic")
		}
	}()
	classifyContinuity(prev, next, DefaultBetaTolerance)
}
