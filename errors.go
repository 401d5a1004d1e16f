package contour

import "errors"

var (
	// ErrInvalidPointCount is returned when a segment would end up with a
	// point count outside {0, 2, 3, 4}, which has no Bézier interpretation.
	ErrInvalidPointCount = errors.New("contour: curve point count must be 0, 2, 3 or 4")

	// ErrIndexOutOfRange is returned when an operation names a contour or
	// guideline that does not exist.
	ErrIndexOutOfRange = errors.New("contour: index out of range")
)
