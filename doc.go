// Package contour implements a vector contour editing engine: the data model
// and algorithms for interactively reshaping open and closed Bézier paths
// while preserving geometric continuity at segment joins.
//
// The package is a library-level engine with no process boundary of its own.
// A host application translates input events into unit-space positions via
// [Transformation], finds affected points with [PointIndexTree], builds an
// [Affine] matrix, and hands it to [Editor.TransformSelection], which
// propagates the transform through each [Contour] so that curve joins stay
// seamless, refreshes the spatial index, and records one reversible action on
// the [UndoStack].
//
// # Geometry
//
// [Point], [Vec2], [Affine], and [Rect] are plain value types. A [Bezier]
// segment owns one to four [CurvePoint] values; its degree is inferred from
// the point count (2 is a line, 3 a quadratic, 4 a cubic). The first and last
// points of a segment are on-curve endpoints, interior points are handles.
// Consecutive segments of a [Contour] repeat the shared joint coordinate on
// both sides; the engine keeps the two copies synchronized by value rather
// than sharing references.
//
// # Continuity
//
// Each join of a contour carries a [Continuity] classification, computed when
// a segment is appended or the contour is closed: Positional (coincident
// endpoints only), Velocity (handles are exact mirror images), or Tangent
// (handles collinear with the endpoint, magnitudes related by a stored
// ratio). [Contour.TransformPoints] re-enforces these constraints after every
// edit with purely local rules, so no global constraint solver is needed.
//
// # Output
//
// [Glyph.PathElements] emits move-to/line-to/cubic-to/close drawing commands
// with quadratics degree-elevated to cubics, and [Glyph.Overlay] produces
// handle and joint marker geometry for an editing view.
//
// The engine is single-threaded: callers serialize edits at the document
// level.
package contour
