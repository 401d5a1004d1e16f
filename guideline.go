package contour

import (
	"math"

	"github.com/google/uuid"
)

// Guideline is an infinite reference line through a point at an angle,
// editable and undoable like contour geometry. Angles are in degrees,
// matching how font sources store them.
type Guideline struct {
	ID    uuid.UUID
	Name  string
	X     float64
	Y     float64
	Angle float64
}

// NewGuideline returns a guideline through (x, y) at angle degrees with a
// fresh identity.
func NewGuideline(name string, x, y, angle float64) *Guideline {
	return &Guideline{ID: uuid.New(), Name: name, X: x, Y: y, Angle: angle}
}

// Origin returns the point the guideline passes through.
func (gl *Guideline) Origin() Point {
	return Pt(gl.X, gl.Y)
}

// Direction returns the guideline's unit direction vector.
func (gl *Guideline) Direction() Vec2 {
	return VecFromAngle(gl.Angle * math.Pi / 180.0)
}

// DistanceTo returns the perpendicular distance from pt to the guideline.
func (gl *Guideline) DistanceTo(pt Point) float64 {
	return math.Abs(gl.Direction().Cross(pt.Sub(gl.Origin())))
}

// Hit reports whether pt lies within tolerance of the guideline.
func (gl *Guideline) Hit(pt Point, tolerance float64) bool {
	return gl.DistanceTo(pt) <= tolerance
}

// Transform moves the guideline by an affine matrix: the origin maps through
// m and the direction through m's linear part.
func (gl *Guideline) Transform(m Affine) {
	origin := gl.Origin().Transform(m)
	d := gl.Direction()
	rotated := Vec2{
		X: m.N0*d.X + m.N2*d.Y,
		Y: m.N1*d.X + m.N3*d.Y,
	}
	gl.X = origin.X
	gl.Y = origin.Y
	if rotated.Hypot2() > 0 {
		gl.Angle = rotated.Angle() * 180.0 / math.Pi
	}
}
