package contour

import "fmt"

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a rendered path.
//
// The engine emits only moves, lines, cubics, and closes: quadratic segments
// are degree-elevated to their exact cubic equivalent so a renderer deals
// with a single curve form.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// raiseQuadratic returns the cubic command equivalent to the quadratic with
// start a, handle b, and end c, using the standard degree elevation: the two
// cubic handles sit two thirds of the way from each endpoint towards the
// quadratic handle.
func raiseQuadratic(a, b, c Point) PathElement {
	return CubicTo(
		a.Translate(b.Sub(a).Mul(2.0/3.0)),
		c.Translate(b.Sub(c).Mul(2.0/3.0)),
		c,
	)
}
