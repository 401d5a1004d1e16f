package contour

// UnitPoint is a position in the path's intrinsic coordinate space.
type UnitPoint Point

// ViewPoint is a position in device/view space.
type ViewPoint Point

// Zoom limits and the multiplicative step used by ZoomIn/ZoomOut.
const (
	minZoomScale = 0.1
	maxZoomScale = 10.0
	zoomStep     = 1.25
)

// Transformation is the affine mapping between view space and unit space:
// camera offset, zoom scale, and pixels-per-unit. ViewToUnit and UnitToView
// are exact inverses up to floating-point epsilon.
type Transformation struct {
	camera        Vec2
	scale         float64
	pixelsPerUnit float64
}

// NewTransformation returns an identity mapping: no camera offset, scale 1,
// one pixel per unit.
func NewTransformation() *Transformation {
	return &Transformation{scale: 1.0, pixelsPerUnit: 1.0}
}

func (t *Transformation) Camera() Vec2 {
	return t.camera
}

func (t *Transformation) SetCamera(camera Vec2) {
	t.camera = camera
}

// Pan moves the camera by delta, expressed in unit space.
func (t *Transformation) Pan(delta Vec2) {
	t.camera = t.camera.Add(delta)
}

func (t *Transformation) Scale() float64 {
	return t.scale
}

// SetScale sets the zoom scale, clamped to the supported range.
func (t *Transformation) SetScale(scale float64) {
	t.scale = max(minZoomScale, min(maxZoomScale, scale))
}

func (t *Transformation) ZoomIn() {
	t.SetScale(t.scale * zoomStep)
}

func (t *Transformation) ZoomOut() {
	t.SetScale(t.scale / zoomStep)
}

func (t *Transformation) PixelsPerUnit() float64 {
	return t.pixelsPerUnit
}

func (t *Transformation) SetPixelsPerUnit(ppu float64) {
	if ppu > 0 {
		t.pixelsPerUnit = ppu
	}
}

// ViewToUnit maps a device-space position into unit space.
func (t *Transformation) ViewToUnit(vp ViewPoint) UnitPoint {
	k := t.scale * t.pixelsPerUnit
	return UnitPoint(Pt(vp.X/k-t.camera.X, vp.Y/k-t.camera.Y))
}

// UnitToView maps a unit-space position into device space.
func (t *Transformation) UnitToView(up UnitPoint) ViewPoint {
	k := t.scale * t.pixelsPerUnit
	return ViewPoint(Pt((up.X+t.camera.X)*k, (up.Y+t.camera.Y)*k))
}

// Matrix returns the unit-to-view mapping as an affine transform, for
// renderers and for constructing the matrices handed to
// [Contour.TransformPoints].
func (t *Transformation) Matrix() Affine {
	k := t.scale * t.pixelsPerUnit
	return Scale(k, k).Mul(Translate(t.camera))
}
