package contour

import (
	"fmt"
	"log/slog"
	"slices"
)

// Editor is an editing session over one glyph. It owns the glyph, its
// spatial index, the undo history, and the view transformation, and it is the
// layer at which every user-visible edit becomes exactly one reversible
// action. All methods must be called from a single goroutine; a
// multi-threaded host wraps the editor in its own mutual exclusion.
type Editor struct {
	glyph *Glyph
	index *PointIndexTree
	undo  *UndoStack
	view  *Transformation
	opts  editorOptions

	preview *previewState
}

type previewState struct {
	refs  []PointRef
	saved []PointUpdate
}

// NewEditor starts a session on g. The glyph's contours adopt the editor's
// beta tolerance, and the spatial index is built immediately.
func NewEditor(g *Glyph, opts ...EditorOption) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		g = NewGlyph("", 0)
	}
	for _, c := range g.Contours {
		c.SetBetaTolerance(o.betaTolerance)
	}
	ed := &Editor{
		glyph: g,
		index: NewPointIndexTree(),
		undo:  NewUndoStack(),
		view:  NewTransformation(),
		opts:  o,
	}
	ed.index.SetQueryRadius(o.queryRadius)
	ed.index.Rebuild(g)
	return ed
}

func (ed *Editor) Glyph() *Glyph { return ed.glyph }

func (ed *Editor) View() *Transformation { return ed.view }

// Undo reverses the most recent action, if any.
func (ed *Editor) Undo() bool { return ed.undo.Undo() }

// Redo re-applies the most recently undone action, if any.
func (ed *Editor) Redo() bool { return ed.undo.Redo() }

func (ed *Editor) CanUndo() bool { return ed.undo.CanUndo() }
func (ed *Editor) CanRedo() bool { return ed.undo.CanRedo() }

// QueryPoint returns up to maxCandidates indexed points near position,
// nearest first, within the editor's query radius.
func (ed *Editor) QueryPoint(position Point, maxCandidates int) []IndexedPoint {
	return ed.index.QueryPoint(position, maxCandidates)
}

// QueryRegion returns the indexed points inside the rectangle spanned by the
// two corners.
func (ed *Editor) QueryRegion(cornerA, cornerB Point) []IndexedPoint {
	return ed.index.QueryRegion(cornerA, cornerB)
}

// OnCurveQuery finds the first segment hit by position within the editor's
// on-curve tolerance, or containing one of the selected points.
func (ed *Editor) OnCurveQuery(position Point, selected []PointRef) (contourIndex, curveIndex int, ok bool) {
	return ed.glyph.OnCurveQuery(position, ed.opts.onCurveTolerance, selected)
}

// applyUpdates writes positions through references and refreshes the index.
func (ed *Editor) applyUpdates(ups []PointUpdate) {
	for _, u := range ups {
		ed.glyph.setPointByRef(u.Ref, u.Pos)
	}
	ed.index.Rebuild(ed.glyph)
}

// snapshotContours records the current position of every point in the
// contours named by refs.
func (ed *Editor) snapshotContours(refs []PointRef) []PointUpdate {
	want := make(map[int]bool)
	for _, r := range refs {
		if r.Contour >= 0 && r.Contour < len(ed.glyph.Contours) {
			want[r.Contour] = true
		}
	}
	var out []PointUpdate
	for _, ip := range ed.glyph.Points() {
		if want[ip.Ref.Contour] {
			out = append(out, PointUpdate{Ref: ip.Ref, Pos: ip.Pos})
		}
	}
	return out
}

// transformRefs propagates m through each targeted contour in order.
func (ed *Editor) transformRefs(refs []PointRef, m Affine) []PointUpdate {
	byContour := make(map[int][]PointRef)
	for _, r := range refs {
		if r.Contour < 0 || r.Contour >= len(ed.glyph.Contours) {
			logger().Warn("skipping stale contour reference", slog.Int("contour", r.Contour))
			continue
		}
		byContour[r.Contour] = append(byContour[r.Contour], r)
	}
	var updates []PointUpdate
	for ci := range ed.glyph.Contours {
		if rs, ok := byContour[ci]; ok {
			updates = append(updates, ed.glyph.Contours[ci].TransformPoints(ci, rs, m)...)
		}
	}
	return updates
}

// TransformSelection applies m to the selected points, propagating through
// continuity constraints, refreshes the index, and records one undoable
// action. The returned updates cover every point that moved. A selection
// that moves nothing records no action.
func (ed *Editor) TransformSelection(refs []PointRef, m Affine) []PointUpdate {
	before := ed.snapshotContours(refs)
	updates := ed.transformRefs(refs, m)
	if len(updates) == 0 {
		return nil
	}
	ed.index.Rebuild(ed.glyph)

	old := make(map[PointRef]Point, len(before))
	for _, u := range before {
		old[u.Ref] = u.Pos
	}
	forward := slices.Clone(updates)
	inverse := make([]PointUpdate, len(updates))
	for i, u := range updates {
		inverse[i] = PointUpdate{Ref: u.Ref, Pos: old[u.Ref]}
	}
	ed.undo.Record(Action{
		Name:    "transform selection",
		Forward: func() { ed.applyUpdates(forward) },
		Inverse: func() { ed.applyUpdates(inverse) },
	})
	return updates
}

// BeginPreview starts an interactive drag of the selected points. Until the
// drag is committed or cancelled, PreviewTransform re-renders speculatively
// without touching the undo history.
func (ed *Editor) BeginPreview(refs []PointRef) {
	ed.preview = &previewState{
		refs:  slices.Clone(refs),
		saved: ed.snapshotContours(refs),
	}
}

// PreviewTransform applies m, measured from the drag origin, to the points
// selected at BeginPreview. Each call replaces the previous preview rather
// than stacking on it.
func (ed *Editor) PreviewTransform(m Affine) []PointUpdate {
	if ed.preview == nil {
		return nil
	}
	for _, u := range ed.preview.saved {
		ed.glyph.setPointByRef(u.Ref, u.Pos)
	}
	updates := ed.transformRefs(ed.preview.refs, m)
	ed.index.Rebuild(ed.glyph)
	return updates
}

// CancelPreview discards an in-progress drag and restores the drag origin
// state. Nothing reaches the undo history.
func (ed *Editor) CancelPreview() {
	if ed.preview == nil {
		return
	}
	ed.applyUpdates(ed.preview.saved)
	ed.preview = nil
}

// CommitPreview ends the drag, keeping the current preview positions and
// recording the whole interaction as one undoable action.
func (ed *Editor) CommitPreview() []PointUpdate {
	if ed.preview == nil {
		return nil
	}
	old := make(map[PointRef]Point, len(ed.preview.saved))
	for _, u := range ed.preview.saved {
		old[u.Ref] = u.Pos
	}
	var forward, inverse []PointUpdate
	for _, ip := range ed.glyph.Points() {
		if p0, ok := old[ip.Ref]; ok && p0 != ip.Pos {
			forward = append(forward, PointUpdate{Ref: ip.Ref, Pos: ip.Pos})
			inverse = append(inverse, PointUpdate{Ref: ip.Ref, Pos: p0})
		}
	}
	ed.preview = nil
	if len(forward) == 0 {
		return nil
	}
	ed.undo.Record(Action{
		Name:    "drag selection",
		Forward: func() { ed.applyUpdates(forward) },
		Inverse: func() { ed.applyUpdates(inverse) },
	})
	return forward
}

// AddContour appends a contour to the glyph as one undoable action.
func (ed *Editor) AddContour(c *Contour) {
	if c == nil {
		return
	}
	c.SetBetaTolerance(ed.opts.betaTolerance)
	forward := func() {
		ed.glyph.Contours = append(ed.glyph.Contours, c)
		ed.index.Rebuild(ed.glyph)
	}
	forward()
	ed.undo.Record(Action{
		Name:    "add contour",
		Forward: forward,
		Inverse: func() {
			ed.glyph.Contours = ed.glyph.Contours[:len(ed.glyph.Contours)-1]
			ed.index.Rebuild(ed.glyph)
		},
	})
}

// DeleteContour removes the i'th contour as one undoable action. References
// into later contours go stale; subsequent operations skip them.
func (ed *Editor) DeleteContour(i int) error {
	if i < 0 || i >= len(ed.glyph.Contours) {
		return fmt.Errorf("%w: contour %d", ErrIndexOutOfRange, i)
	}
	c := ed.glyph.Contours[i]
	forward := func() {
		ed.glyph.Contours = slices.Delete(ed.glyph.Contours, i, i+1)
		ed.index.Rebuild(ed.glyph)
	}
	forward()
	ed.undo.Record(Action{
		Name:    "delete contour",
		Forward: forward,
		Inverse: func() {
			ed.glyph.Contours = slices.Insert(ed.glyph.Contours, i, c)
			ed.index.Rebuild(ed.glyph)
		},
	})
	return nil
}

// ReverseContour flips the winding of the i'th contour as one undoable
// action. Reversal is its own inverse.
func (ed *Editor) ReverseContour(i int) error {
	if i < 0 || i >= len(ed.glyph.Contours) {
		return fmt.Errorf("%w: contour %d", ErrIndexOutOfRange, i)
	}
	rev := func() {
		ed.glyph.Contours[i].ReverseDirection()
		ed.index.Rebuild(ed.glyph)
	}
	rev()
	ed.undo.Record(Action{Name: "reverse contour", Forward: rev, Inverse: rev})
	return nil
}

// AddGuideline appends a guideline as one undoable action.
func (ed *Editor) AddGuideline(gl *Guideline) {
	if gl == nil {
		return
	}
	forward := func() {
		ed.glyph.Guidelines = append(ed.glyph.Guidelines, gl)
	}
	forward()
	ed.undo.Record(Action{
		Name:    "add guideline",
		Forward: forward,
		Inverse: func() {
			ed.glyph.Guidelines = ed.glyph.Guidelines[:len(ed.glyph.Guidelines)-1]
		},
	})
}

// DeleteGuideline removes the i'th guideline as one undoable action.
func (ed *Editor) DeleteGuideline(i int) error {
	if i < 0 || i >= len(ed.glyph.Guidelines) {
		return fmt.Errorf("%w: guideline %d", ErrIndexOutOfRange, i)
	}
	gl := ed.glyph.Guidelines[i]
	forward := func() {
		ed.glyph.Guidelines = slices.Delete(ed.glyph.Guidelines, i, i+1)
	}
	forward()
	ed.undo.Record(Action{
		Name:    "delete guideline",
		Forward: forward,
		Inverse: func() {
			ed.glyph.Guidelines = slices.Insert(ed.glyph.Guidelines, i, gl)
		},
	})
	return nil
}

// TransformGuideline moves the i'th guideline by m as one undoable action.
// The inverse restores the exact prior origin and angle, with no
// inverse-matrix drift.
func (ed *Editor) TransformGuideline(i int, m Affine) error {
	if i < 0 || i >= len(ed.glyph.Guidelines) {
		return fmt.Errorf("%w: guideline %d", ErrIndexOutOfRange, i)
	}
	gl := ed.glyph.Guidelines[i]
	beforeX, beforeY, beforeAngle := gl.X, gl.Y, gl.Angle
	gl.Transform(m)
	afterX, afterY, afterAngle := gl.X, gl.Y, gl.Angle
	ed.undo.Record(Action{
		Name:    "transform guideline",
		Forward: func() { gl.X, gl.Y, gl.Angle = afterX, afterY, afterAngle },
		Inverse: func() { gl.X, gl.Y, gl.Angle = beforeX, beforeY, beforeAngle },
	})
	return nil
}
