package contour

// OverlayLine connects a handle to its on-curve endpoint in the editing view.
type OverlayLine struct {
	From Point
	To   Point
}

// OverlayCircle marks an off-curve handle.
type OverlayCircle struct {
	Center Point
	Radius float64
}

// Overlay is the marker geometry a renderer draws on top of the outline when
// a "show handles" mode is active: squares on on-curve points, circles on
// handles, and connecting lines from each handle to its endpoint. It is pure
// geometry; no drawing happens here.
type Overlay struct {
	OnCurve     []Rect
	Handles     []OverlayCircle
	Connections []OverlayLine
}

// Overlay computes marker geometry for every segment of the glyph.
// handleSize is the side length of the on-curve squares and the diameter of
// the handle circles, in unit space.
func (g *Glyph) Overlay(handleSize float64) Overlay {
	var ov Overlay
	onCurve := func(p Point) {
		ov.OnCurve = append(ov.OnCurve, NewRectFromCenter(p, handleSize, handleSize))
	}
	handle := func(h Point, endpoints ...Point) {
		ov.Handles = append(ov.Handles, OverlayCircle{Center: h, Radius: handleSize / 2})
		for _, ep := range endpoints {
			ov.Connections = append(ov.Connections, OverlayLine{From: h, To: ep})
		}
	}
	for _, c := range g.Contours {
		for _, b := range c.Curves() {
			degree, ok := b.Degree()
			if !ok {
				continue
			}
			pts := b.Points()
			switch degree {
			case 1:
				onCurve(pts[0].Point)
				onCurve(pts[1].Point)
			case 2:
				// The single quadratic handle connects to both endpoints.
				handle(pts[1].Point, pts[0].Point, pts[2].Point)
				onCurve(pts[0].Point)
				onCurve(pts[2].Point)
			case 3:
				handle(pts[1].Point, pts[0].Point)
				handle(pts[2].Point, pts[3].Point)
				onCurve(pts[0].Point)
				onCurve(pts[3].Point)
			}
		}
	}
	return ov
}
