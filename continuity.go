package contour

import (
	"fmt"
	"math"
)

type ContinuityKind int

const (
	// Coincident endpoints only; the handles on either side of the join move
	// independently.
	PositionalContinuity ContinuityKind = iota + 1
	// The handles on either side of the join are exact mirror images: equal
	// magnitude, opposite direction.
	VelocityContinuity
	// The handles are collinear with the joint but have different magnitudes,
	// related by the stored ratio.
	TangentContinuity
)

// Continuity classifies the smoothness constraint at the join between two
// consecutive segments of a contour. It is computed when a segment is
// appended or the contour is closed, never set directly.
type Continuity struct {
	Kind ContinuityKind
	// Beta is the handle magnitude ratio |next handle − joint| / |joint −
	// previous handle|. Only meaningful for TangentContinuity.
	Beta float64
}

func Positional() Continuity {
	return Continuity{Kind: PositionalContinuity}
}

func Velocity() Continuity {
	return Continuity{Kind: VelocityContinuity}
}

func Tangent(beta float64) Continuity {
	return Continuity{Kind: TangentContinuity, Beta: beta}
}

func (c Continuity) String() string {
	switch c.Kind {
	case PositionalContinuity:
		return "Positional"
	case VelocityContinuity:
		return "Velocity"
	case TangentContinuity:
		return fmt.Sprintf("Tangent(β=%g)", c.Beta)
	default:
		return "InvalidContinuity"
	}
}

// classifyContinuity computes the continuity at the join where prev ends and
// next begins. Both segments must be non-empty and share the joint coordinate
// exactly; a mismatch means the caller broke the contour invariant, and the
// classification panics rather than silently fixing coordinates.
//
// betaTolerance is the absolute tolerance within which the handle ratio
// counts as 1.0.
func classifyContinuity(prev, next *Bezier, betaTolerance float64) Continuity {
	if !next.smooth {
		return Positional()
	}
	pp, np := prev.points, next.points
	if len(pp) < 3 || len(np) < 3 {
		// A line has no handle on its side of the join, so there is nothing
		// beyond positional continuity to preserve.
		return Positional()
	}
	joint := pp[len(pp)-1].Point
	if joint != np[0].Point {
		panic(fmt.Sprintf("contour: join mismatch: %v != %v", joint, np[0].Point))
	}
	p2 := pp[len(pp)-2].Point
	p4 := np[1].Point
	if len(pp) == 4 && len(np) == 4 && p2.Collinear(joint, p4) {
		den := joint.Sub(p2).Hypot()
		if den == 0 {
			return Positional()
		}
		beta := p4.Sub(joint).Hypot() / den
		if math.IsNaN(beta) || math.IsInf(beta, 0) || beta == 0 {
			return Positional()
		}
		if math.Abs(beta-1.0) < betaTolerance {
			return Velocity()
		}
		return Tangent(beta)
	}
	if p4 == p2.Mirror(joint) {
		// Point-reflected handles, covering the quadratic "implied handle"
		// shape as well.
		return Velocity()
	}
	return Positional()
}
