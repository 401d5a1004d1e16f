package contour

// Tolerance defaults. The beta and on-curve values are empirical; they can be
// overridden per [Editor] with functional options and per [Contour] or query
// call where noted.
const (
	// DefaultBetaTolerance is the absolute tolerance within which the handle
	// magnitude ratio at a join counts as 1.0, turning a Tangent
	// classification into Velocity.
	DefaultBetaTolerance = 0.005

	// DefaultOnCurveTolerance is the hit-test distance, in unit-space units,
	// within which a position counts as lying on a curve.
	DefaultOnCurveTolerance = 1.5

	// DefaultQueryRadius bounds nearest-point queries on [PointIndexTree].
	DefaultQueryRadius = 10.0

	collinearTolerance = 1e-9
)

// EditorOption configures an [Editor] during creation.
type EditorOption func(*editorOptions)

type editorOptions struct {
	betaTolerance    float64
	onCurveTolerance float64
	queryRadius      float64
}

func defaultEditorOptions() editorOptions {
	return editorOptions{
		betaTolerance:    DefaultBetaTolerance,
		onCurveTolerance: DefaultOnCurveTolerance,
		queryRadius:      DefaultQueryRadius,
	}
}

// WithBetaTolerance overrides [DefaultBetaTolerance] for contours managed by
// the editor.
func WithBetaTolerance(tol float64) EditorOption {
	return func(o *editorOptions) {
		if tol > 0 {
			o.betaTolerance = tol
		}
	}
}

// WithOnCurveTolerance overrides [DefaultOnCurveTolerance] for the editor's
// hit tests.
func WithOnCurveTolerance(tol float64) EditorOption {
	return func(o *editorOptions) {
		if tol > 0 {
			o.onCurveTolerance = tol
		}
	}
}

// WithQueryRadius overrides [DefaultQueryRadius] for the editor's point
// queries.
func WithQueryRadius(r float64) EditorOption {
	return func(o *editorOptions) {
		if r > 0 {
			o.queryRadius = r
		}
	}
}
