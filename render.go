package easel

// OpKind identifies the kind of display op.
type OpKind uint8

const (
	// OpPolyline strokes (and, when the style's fill pattern is set and the
	// outline is closed, fills) a run of device-space points.
	OpPolyline OpKind = iota

	// OpMarker stamps an image centered on a device point.
	OpMarker

	// OpLabel paints a block of annotation text inside a committed
	// rectangle, over a background fill when the style has one.
	OpLabel
)

// DisplayOp is a single backend paint instruction in device coordinates.
// Render returns the frame as a flat op list in paint order; the backend
// walks the list and draws. Ops never carry GPU state, so any backend that
// can stroke polylines, blit images and draw text can paint a scene.
//
// Slices inside an op (Points, Lines) alias engine-owned scratch that is
// rewritten by the next Render call; backends must consume them within the
// frame.
type DisplayOp struct {
	Kind  OpKind
	Style StyleValues

	// Polyline geometry. A closed outline repeats its first point at the end.
	Points []Point

	// Marker image and stamp center.
	Image Image
	At    Point

	// Label rectangle, text lines, the inset from the rectangle's top-left
	// corner to the first line's origin, and the vertical advance between
	// line origins.
	Rect        Rect
	Lines       []string
	Inset       Point
	LineAdvance float64
}

// emitOps rebuilds the frame's op list: data geometry of the main tree, then
// the overlay tree, then every committed label on top.
func (s *Scene) emitOps(stats *debugStats) {
	s.ops = s.ops[:0]
	s.emitData(s.root, VisibleAll, stats)
	s.emitData(s.overlay, VisibleAll, stats)
	s.emitLabels()
}

// emitData walks one subtree in paint order (own segments, then children
// back to front), appending polyline and marker ops for visible data.
func (s *Scene) emitData(o *Object, inherited Visibility, stats *debugStats) {
	vis := o.visibility & inherited
	if vis == 0 {
		return
	}
	if stats != nil {
		stats.objectCount++
	}
	if vis&VisibleData != 0 {
		for _, seg := range o.segments {
			s.emitSegment(seg, stats)
		}
	}
	for _, child := range o.children {
		s.emitData(child, vis, stats)
	}
}

// emitSegment appends the ops for one segment: its stroke and any marker
// stamps.
func (s *Scene) emitSegment(seg *Segment, stats *debugStats) {
	if stats != nil {
		stats.segmentCount++
	}
	v := seg.EffectiveStyle()
	if len(seg.points) >= 2 {
		s.ops = append(s.ops, DisplayOp{
			Kind:   OpPolyline,
			Style:  v,
			Points: seg.deviceGeometry(s.tr),
		})
	}
	m := seg.marker
	if m == nil || m.Image == nil {
		return
	}
	switch m.Placement {
	case MarkerAtVertices:
		for _, p := range seg.points {
			s.ops = append(s.ops, DisplayOp{
				Kind:  OpMarker,
				Style: v,
				Image: m.Image,
				At:    seg.devicePoint(s.tr, p),
			})
		}
	case MarkerAtAnchor:
		s.ops = append(s.ops, DisplayOp{
			Kind:  OpMarker,
			Style: v,
			Image: m.Image,
			At:    seg.devicePoint(s.tr, m.Anchor),
		})
	}
}

// emitLabels appends one label op per annotation committed by the layout
// pass, in commit order. Labels paint over all data geometry.
func (s *Scene) emitLabels() {
	for _, a := range s.placedLabels {
		v := a.owner.EffectiveStyle()
		s.ops = append(s.ops, DisplayOp{
			Kind:        OpLabel,
			Style:       v,
			Rect:        a.placeRect,
			Lines:       a.lines,
			Inset:       a.textInset,
			LineAdvance: a.lineSpacing,
		})
	}
}
