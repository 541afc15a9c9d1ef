package easel

import "image"

// Surface is the drawable region the engine renders into. The engine never
// paints directly; it asks the surface for its pixel bounds, produces display
// ops in device coordinates, and requests repaints when retained state
// changes. A windowing backend (see backend/ebitengine) implements this and
// feeds pointer input back through Scene.DispatchPointer.
type Surface interface {
	// ViewportBounds returns the drawable region in device pixels.
	ViewportBounds() Rect

	// RequestRepaint asks the backend to paint a new frame soon. It must be
	// cheap and idempotent; the engine may call it many times per frame.
	RequestRepaint()
}

// Font measures text for annotation layout. The engine only ever measures;
// painting glyphs is the backend's business.
//
// MeasureString reports the rendered size of a single line. LineHeight is the
// vertical advance between consecutive lines of this font.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// Image is a marker bitmap stamped along segment geometry. Both image.Image
// and *ebiten.Image satisfy it; the engine needs only the pixel bounds, the
// backend does the actual blit.
type Image interface {
	Bounds() image.Rectangle
}
