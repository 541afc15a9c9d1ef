package easel

import (
	"fmt"
	"math"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = outer * inner.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Extent is a world-space parallelogram described by three points: an origin
// and the far end of each axis. The X axis maps onto the viewport's width and
// the Y axis onto its height, so a rotated or skewed extent rotates or skews
// the whole picture.
type Extent struct {
	Origin Point
	XEnd   Point
	YEnd   Point
}

// AxisAlignedExtent is the two-corner shorthand for the common unrotated
// case. It follows the plotting convention of world Y increasing upward:
// (x0, y0) lands at the viewport's bottom-left corner and (x1, y1) at the
// top-right.
func AxisAlignedExtent(x0, y0, x1, y1 float64) Extent {
	return Extent{
		Origin: Point{X: x0, Y: y0},
		XEnd:   Point{X: x1, Y: y0},
		YEnd:   Point{X: x0, Y: y1},
	}
}

// axes returns the extent's axis vectors.
func (e Extent) axes() (xa, ya Point) {
	xa = Point{X: e.XEnd.X - e.Origin.X, Y: e.XEnd.Y - e.Origin.Y}
	ya = Point{X: e.YEnd.X - e.Origin.X, Y: e.YEnd.Y - e.Origin.Y}
	return xa, ya
}

// degenerate reports whether the extent has (nearly) zero area: a zero-length
// axis or collinear axes. The test is relative to the axis lengths so it is
// scale-independent.
func (e Extent) degenerate() bool {
	xa, ya := e.axes()
	cross := xa.X*ya.Y - xa.Y*ya.X
	scale := math.Max(xa.X*xa.X+xa.Y*xa.Y, ya.X*ya.X+ya.Y*ya.Y)
	return math.Abs(cross) <= 1e-12*scale
}

// ScaleMode controls how a Transformer reacts to viewport resizes.
type ScaleMode uint8

const (
	// FitViewport keeps the world extent and restretches it to exactly fill
	// the new viewport, possibly distorting the aspect ratio. The default.
	FitViewport ScaleMode = iota

	// TrueScale keeps the world-unit-to-pixel scale: the extent grows or
	// shrinks with the viewport, anchored at the extent origin, and content
	// is never stretched.
	TrueScale
)

// Transformer maps between world coordinates and device pixels. It composes
// a world extent with a device viewport; both halves can be replaced at any
// time and the forward and inverse matrices are rebuilt eagerly, so the
// per-point conversions are just an affine multiply.
//
// Round trips through WorldToDevice and DeviceToWorld stay within 1e-6 of
// the original coordinates for any non-degenerate extent.
type Transformer struct {
	viewport Rect
	extent   Extent
	mode     ScaleMode
	forward  [6]float64
	inverse  [6]float64
	gen      uint64
}

// NewTransformer creates a Transformer for the given viewport with a unit
// world extent, (0,0) at the bottom-left through (1,1) at the top-right.
func NewTransformer(viewport Rect) *Transformer {
	t := &Transformer{
		extent: AxisAlignedExtent(0, 0, 1, 1),
	}
	t.setViewportRect(viewport)
	t.rebuild()
	return t
}

// setViewportRect stores the viewport, substituting a 1x1 rectangle for an
// empty one so the matrices stay finite while a window is still sizing up.
func (t *Transformer) setViewportRect(r Rect) {
	if r.Width <= 0 {
		r.Width = 1
	}
	if r.Height <= 0 {
		r.Height = 1
	}
	t.viewport = r
}

// Viewport returns the device-space viewport.
func (t *Transformer) Viewport() Rect {
	return t.viewport
}

// WorldExtent returns the current world extent.
func (t *Transformer) WorldExtent() Extent {
	return t.extent
}

// ScaleMode returns the resize behavior.
func (t *Transformer) ScaleMode() ScaleMode {
	return t.mode
}

// SetScaleMode sets the resize behavior. It takes effect on the next
// SetViewport call.
func (t *Transformer) SetScaleMode(m ScaleMode) {
	t.mode = m
}

// SetWorldExtent replaces the world extent with the parallelogram spanned by
// origin and the two axis endpoints. Degenerate extents are rejected and the
// previous mapping is kept.
func (t *Transformer) SetWorldExtent(origin, xEnd, yEnd Point) error {
	e := Extent{Origin: origin, XEnd: xEnd, YEnd: yEnd}
	if e.degenerate() {
		return fmt.Errorf("easel: degenerate world extent %+v", e)
	}
	t.extent = e
	t.rebuild()
	return nil
}

// SetWorldExtentRect is the axis-aligned shorthand: (x0, y0) maps to the
// viewport's bottom-left and (x1, y1) to its top-right.
func (t *Transformer) SetWorldExtentRect(x0, y0, x1, y1 float64) error {
	e := AxisAlignedExtent(x0, y0, x1, y1)
	return t.SetWorldExtent(e.Origin, e.XEnd, e.YEnd)
}

// SetViewport moves the device viewport. In FitViewport mode the extent is
// kept and the content stretches to fill the new region; in TrueScale mode
// the extent is rescaled around its origin so each world unit keeps its
// pixel size.
func (t *Transformer) SetViewport(r Rect) {
	old := t.viewport
	t.setViewportRect(r)
	if t.mode == TrueScale && old.Width > 0 && old.Height > 0 {
		sx := t.viewport.Width / old.Width
		sy := t.viewport.Height / old.Height
		xa, ya := t.extent.axes()
		o := t.extent.Origin
		t.extent.XEnd = Point{X: o.X + xa.X*sx, Y: o.Y + xa.Y*sx}
		t.extent.YEnd = Point{X: o.X + ya.X*sy, Y: o.Y + ya.Y*sy}
	}
	t.rebuild()
}

// rebuild recomputes the forward and inverse matrices. The extent origin maps
// to the viewport's bottom-left corner, the X axis end to the bottom-right
// and the Y axis end to the top-left.
func (t *Transformer) rebuild() {
	xa, ya := t.extent.axes()
	det := xa.X*ya.Y - xa.Y*ya.X
	if det == 0 {
		// Unreachable through the public setters; keep the old mapping.
		return
	}
	// The world basis inverse maps world points to extent-relative unit
	// coordinates in [0,1]^2.
	o := t.extent.Origin
	toUnit := [6]float64{
		ya.Y / det,
		-xa.Y / det,
		-ya.X / det,
		xa.X / det,
		0, 0,
	}
	toUnit[4] = -(toUnit[0]*o.X + toUnit[2]*o.Y)
	toUnit[5] = -(toUnit[1]*o.X + toUnit[3]*o.Y)

	// Unit coordinates stretch to the viewport, with unit Y flipped so the
	// extent's +Y axis points up the screen.
	v := t.viewport
	toDevice := [6]float64{v.Width, 0, 0, -v.Height, v.X, v.Y + v.Height}

	t.forward = multiplyAffine(toDevice, toUnit)
	t.inverse = invertAffine(t.forward)
	t.gen++
}

// generation increments on every rebuild. Cached device-space data compares
// it to detect a stale mapping.
func (t *Transformer) generation() uint64 {
	return t.gen
}

// WorldToDevice converts a world point to device pixels.
func (t *Transformer) WorldToDevice(p Point) Point {
	x, y := transformPoint(t.forward, p.X, p.Y)
	return Point{X: x, Y: y}
}

// DeviceToWorld converts a device point to world coordinates using the
// cached inverse.
func (t *Transformer) DeviceToWorld(p Point) Point {
	x, y := transformPoint(t.inverse, p.X, p.Y)
	return Point{X: x, Y: y}
}

// WorldRectToDevice returns the device-space bounding rectangle of a world
// rectangle. All four corners are mapped so rotated extents are handled.
func (t *Transformer) WorldRectToDevice(r Rect) Rect {
	return t.mapRectBounds(t.forward, r)
}

// DeviceRectToWorld returns the world-space bounding rectangle of a device
// rectangle.
func (t *Transformer) DeviceRectToWorld(r Rect) Rect {
	return t.mapRectBounds(t.inverse, r)
}

func (t *Transformer) mapRectBounds(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	minX, minY := x0, y0
	maxX, maxY := x0, y0
	corners := [3][2]float64{
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	}
	for _, c := range corners {
		x, y := transformPoint(m, c[0], c[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
