package contour

import "github.com/google/uuid"

// PointRef names one control point of a glyph without borrowing it:
// contour index, segment index, and point identity. Selections, spatial-query
// results, and undo bookkeeping all use PointRef and resolve it by lookup at
// use time, so holding one across a mutation is safe (it merely goes stale).
type PointRef struct {
	Contour int
	Curve   int
	ID      uuid.UUID
}

// Glyph owns an ordered list of contours plus guidelines. It is the unit the
// [Editor] operates on and the boundary the persistence layer trades across:
// a file-format loader constructs glyphs, and serialization reads the same
// structures back.
type Glyph struct {
	Name string
	// Codepoint is the character this glyph draws, or 0 for a component
	// glyph referenced only by name.
	Codepoint  rune
	Width      float64
	Contours   []*Contour
	Guidelines []*Guideline
}

// NewGlyph returns a glyph with no contours.
func NewGlyph(name string, codepoint rune) *Glyph {
	return &Glyph{Name: name, Codepoint: codepoint}
}

// IsEmpty reports whether the glyph has no segments at all.
func (g *Glyph) IsEmpty() bool {
	for _, c := range g.Contours {
		if c.Len() > 0 {
			return false
		}
	}
	return true
}

// Points returns every editable point of the glyph with its reference, in
// contour/segment/point order. This is the feed for spatial-index rebuilds.
func (g *Glyph) Points() []IndexedPoint {
	var out []IndexedPoint
	for ci, c := range g.Contours {
		for bi, b := range c.Curves() {
			for _, cp := range b.Points() {
				out = append(out, IndexedPoint{
					Ref: PointRef{Contour: ci, Curve: bi, ID: cp.ID},
					Pos: cp.Point,
				})
			}
		}
	}
	return out
}

// pointByRef resolves a reference to its current position. ok is false when
// the reference is stale.
func (g *Glyph) pointByRef(ref PointRef) (Point, bool) {
	if ref.Contour < 0 || ref.Contour >= len(g.Contours) {
		return Point{}, false
	}
	c := g.Contours[ref.Contour]
	if ref.Curve < 0 || ref.Curve >= c.Len() {
		return Point{}, false
	}
	for _, cp := range c.Curve(ref.Curve).Points() {
		if cp.ID == ref.ID {
			return cp.Point, true
		}
	}
	return Point{}, false
}

// setPointByRef writes a position through a reference, preserving identity.
// Stale references are ignored.
func (g *Glyph) setPointByRef(ref PointRef, pos Point) {
	if ref.Contour < 0 || ref.Contour >= len(g.Contours) {
		return
	}
	c := g.Contours[ref.Contour]
	if ref.Curve < 0 || ref.Curve >= c.Len() {
		return
	}
	b := c.Curve(ref.Curve)
	for i, cp := range b.Points() {
		if cp.ID == ref.ID {
			b.SetPoint(i, pos)
			return
		}
	}
}

// OnCurveQuery returns the first segment, in contour and segment order, that
// position hits within tolerance, or whose points include one of the selected
// references. ok is false when nothing matches.
func (g *Glyph) OnCurveQuery(position Point, tolerance float64, selected []PointRef) (contourIndex, curveIndex int, ok bool) {
	for ci, c := range g.Contours {
		for bi, b := range c.Curves() {
			if b.OnCurveQuery(position, tolerance) {
				return ci, bi, true
			}
			for _, ref := range selected {
				if ref.Contour != ci || ref.Curve != bi {
					continue
				}
				for _, cp := range b.Points() {
					if cp.ID == ref.ID {
						return ci, bi, true
					}
				}
			}
		}
	}
	return 0, 0, false
}

// PathElements returns the glyph's outline as an ordered sequence of drawing
// commands. Quadratic segments are emitted as their exact cubic equivalents;
// closed contours end with a close command.
func (g *Glyph) PathElements() []PathElement {
	var out []PathElement
	for _, c := range g.Contours {
		curves := c.Curves()
		if len(curves) == 0 || curves[0].Len() == 0 {
			continue
		}
		pen := curves[0].Start().Point
		out = append(out, MoveTo(pen))
		for _, b := range curves {
			degree, ok := b.Degree()
			if !ok {
				continue
			}
			pts := b.Points()
			switch degree {
			case 1:
				out = append(out, LineTo(pts[1].Point))
				pen = pts[1].Point
			case 2:
				out = append(out, raiseQuadratic(pen, pts[1].Point, pts[2].Point))
				pen = pts[2].Point
			case 3:
				out = append(out, CubicTo(pts[1].Point, pts[2].Point, pts[3].Point))
				pen = pts[3].Point
			}
		}
		if !c.Open() {
			out = append(out, ClosePath())
		}
	}
	return out
}
