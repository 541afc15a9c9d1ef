package easel

// minZoomBand is the smallest rubber-band side, in device pixels, that
// still counts as a region zoom on release. Anything smaller is a click.
const minZoomBand = 2.0

// ZoomInteraction is the built-in zoom handler. Dragging with the primary
// button sweeps a dashed rubber band on the overlay; release zooms the
// world extent to the banded region. A primary-button click zooms in 2x
// about the clicked point and a secondary-button click zooms back out 2x.
// All zooms animate over the theme's zoom duration.
type ZoomInteraction struct {
	band     rubberBand
	startX   float64
	startY   float64
	dragging bool
}

// NewZoomInteraction creates a zoom handler ready for StartInteraction.
func NewZoomInteraction() *ZoomInteraction {
	return &ZoomInteraction{}
}

// HandleEvent implements Interaction.
func (z *ZoomInteraction) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventButton1Down, EventButton2Down:
		z.startX, z.startY = ev.X, ev.Y
		z.dragging = false
	case EventButton1Drag:
		z.dragging = true
		z.band.update(ev.Scene, RectFromCorners(z.startX, z.startY, ev.X, ev.Y))
	case EventButton2Drag:
		z.dragging = true
	case EventButton1Up:
		if z.dragging {
			r := RectFromCorners(z.startX, z.startY, ev.X, ev.Y)
			z.band.remove()
			if r.Width >= minZoomBand && r.Height >= minZoomBand {
				zoomToDeviceRect(ev.Scene, r)
			}
		} else {
			scaleExtentAbout(ev.Scene, ev.X, ev.Y, 0.5)
		}
		z.dragging = false
	case EventButton2Up:
		if !z.dragging {
			scaleExtentAbout(ev.Scene, ev.X, ev.Y, 2)
		}
		z.dragging = false
	}
}

// Stop implements Interaction, removing any leftover rubber band.
func (z *ZoomInteraction) Stop(s *Scene) {
	z.band.remove()
	z.dragging = false
}

// zoomToDeviceRect animates the world extent to the region under the device
// rectangle. All corners go through the inverse mapping, so the zoom is
// exact even when the current extent is rotated or skewed.
func zoomToDeviceRect(s *Scene, r Rect) {
	tr := s.Transformer()
	e := Extent{
		Origin: tr.DeviceToWorld(Point{X: r.X, Y: r.Y + r.Height}),
		XEnd:   tr.DeviceToWorld(Point{X: r.X + r.Width, Y: r.Y + r.Height}),
		YEnd:   tr.DeviceToWorld(Point{X: r.X, Y: r.Y}),
	}
	_ = s.ZoomToExtent(e, CurrentTheme().ZoomDuration, nil)
}

// scaleExtentAbout zooms the extent by factor about the world point under
// the device point (x, y). Factors below 1 zoom in, above 1 zoom out; the
// point under the cursor stays put.
func scaleExtentAbout(s *Scene, x, y, factor float64) {
	tr := s.Transformer()
	c := tr.DeviceToWorld(Point{X: x, Y: y})
	cur := tr.WorldExtent()
	scale := func(p Point) Point {
		return Point{X: c.X + (p.X-c.X)*factor, Y: c.Y + (p.Y-c.Y)*factor}
	}
	e := Extent{Origin: scale(cur.Origin), XEnd: scale(cur.XEnd), YEnd: scale(cur.YEnd)}
	_ = s.ZoomToExtent(e, CurrentTheme().ZoomDuration, nil)
}
