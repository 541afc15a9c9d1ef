package easel

import "math"

// minProbeDistance is the smallest step, in device pixels, a dynamic label
// moves away from its blocked anchor per fallback ring.
const minProbeDistance = 4.0

// layoutAnnotations reruns the label pass: every visible annotation is
// measured and assigned a device-space rectangle that overlaps no label
// committed before it. Labels are committed in paint order, so earlier
// (back-most) content wins contested space. A label that cannot be placed
// is suppressed for the frame.
func (s *Scene) layoutAnnotations() {
	s.placedLabels = s.placedLabels[:0]
	s.labelRects = s.labelRects[:0]
	s.collectLabels(s.root, VisibleAll)
	s.collectLabels(s.overlay, VisibleAll)
}

// collectLabels walks the subtree in paint order and places each visible
// annotation. Annotation visibility is inherited independently of data
// visibility: an object may show labels for hidden geometry and vice versa.
func (s *Scene) collectLabels(o *Object, inherited Visibility) {
	vis := o.visibility & inherited
	if vis == 0 {
		return
	}
	if vis&VisibleAnnotation != 0 {
		for _, seg := range o.segments {
			if seg.annotation != nil {
				s.placeLabel(seg.annotation)
			}
		}
	}
	for _, child := range o.children {
		s.collectLabels(child, vis)
	}
}

// placeLabel assigns a rectangle to one annotation, or marks it suppressed.
// The preferred rectangle sits against the reference point per the anchor
// flags; with AnchorDynamic two rings of eight compass cells around the
// anchor are probed before giving up.
func (s *Scene) placeLabel(a *Annotation) {
	a.placed = false
	a.suppressed = false
	if a.text == "" {
		return
	}
	w, h := a.Size()
	if w <= 0 || h <= 0 {
		return
	}
	ref, ok := s.labelReference(a)
	if !ok {
		return
	}

	dx, dy := anchorDirection(a.anchor)
	if s.tryCommit(a, anchorRect(ref, w, h, dx, dy)) {
		return
	}
	if a.anchor&AnchorDynamic == 0 {
		a.suppressed = true
		return
	}

	probe := math.Max(minProbeDistance, h/2)
	cells := fallbackCells(dx, dy)
	for _, dist := range [2]float64{probe, 2 * probe} {
		for _, cell := range cells {
			shifted := Point{
				X: ref.X + float64(cell[0])*dist,
				Y: ref.Y + float64(cell[1])*dist,
			}
			if s.tryCommit(a, anchorRect(shifted, w, h, cell[0], cell[1])) {
				return
			}
		}
	}
	a.suppressed = true
}

// labelReference resolves the device point a label is anchored to: the
// segment's first or last vertex when requested, otherwise the center of its
// device bounds. Labels on empty geometry have no reference and are skipped.
func (s *Scene) labelReference(a *Annotation) (Point, bool) {
	seg := a.owner
	if seg == nil || len(seg.points) == 0 {
		return Point{}, false
	}
	switch {
	case a.anchor&AnchorFirst != 0:
		return seg.devicePoint(s.tr, seg.points[0]), true
	case a.anchor&AnchorLast != 0:
		return seg.devicePoint(s.tr, seg.points[len(seg.points)-1]), true
	}
	b, ok := seg.DeviceBounds(s.tr)
	if !ok {
		return Point{}, false
	}
	return b.Center(), true
}

// tryCommit claims r for the label if it overlaps no committed label.
// Abutting rectangles are fine; only shared interior area blocks.
func (s *Scene) tryCommit(a *Annotation, r Rect) bool {
	for _, taken := range s.labelRects {
		if r.Overlaps(taken) {
			return false
		}
	}
	a.placeRect = r
	a.placed = true
	s.placedLabels = append(s.placedLabels, a)
	s.labelRects = append(s.labelRects, r)
	return true
}

// anchorDirection reduces an anchor mask to a signed cell direction, -1/0/1
// per axis in device coordinates (negative is up and left). Side flags pin
// their own axis; a compass flag moves its natural axis when that axis is
// free and otherwise slides the label along the remaining one, so
// AnchorTop|AnchorNorth lands above-left while AnchorNorth alone lands
// above-centered.
func anchorDirection(anchor Anchor) (dx, dy int) {
	xSide := anchor&(AnchorLeft|AnchorRight|AnchorCenter) != 0
	ySide := anchor&(AnchorTop|AnchorBottom|AnchorMiddle) != 0
	switch {
	case anchor&AnchorLeft != 0:
		dx = -1
	case anchor&AnchorRight != 0:
		dx = 1
	case anchor&AnchorCenter != 0:
		dx = 0
	case anchor&AnchorWest != 0:
		dx = -1
	case anchor&AnchorEast != 0:
		dx = 1
	case ySide && anchor&AnchorNorth != 0:
		dx = -1
	case ySide && anchor&AnchorSouth != 0:
		dx = 1
	}
	switch {
	case anchor&AnchorTop != 0:
		dy = -1
	case anchor&AnchorBottom != 0:
		dy = 1
	case anchor&AnchorMiddle != 0:
		dy = 0
	case anchor&AnchorNorth != 0:
		dy = -1
	case anchor&AnchorSouth != 0:
		dy = 1
	case xSide && anchor&AnchorWest != 0:
		dy = -1
	case xSide && anchor&AnchorEast != 0:
		dy = 1
	}
	return dx, dy
}

// anchorRect positions a w-by-h rectangle against ref: each axis sits fully
// on the signed side of the reference, or centered when the direction is 0.
func anchorRect(ref Point, w, h float64, dx, dy int) Rect {
	r := Rect{Width: w, Height: h}
	switch dx {
	case -1:
		r.X = ref.X - w
	case 1:
		r.X = ref.X
	default:
		r.X = ref.X - w/2
	}
	switch dy {
	case -1:
		r.Y = ref.Y - h
	case 1:
		r.Y = ref.Y
	default:
		r.Y = ref.Y - h/2
	}
	return r
}

// fallbackCells orders the eight compass cells probed around a blocked
// dynamic label: the cell opposite the preferred direction first, then the
// rest in canonical order, the failed preferred direction last. A centered
// preference has no opposite and probes the canonical order as-is.
func fallbackCells(dx, dy int) [8][2]int {
	canonical := [8][2]int{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}
	if dx == 0 && dy == 0 {
		return canonical
	}
	var cells [8][2]int
	n := 0
	cells[n] = [2]int{-dx, -dy}
	n++
	for _, c := range canonical {
		if (c[0] == dx && c[1] == dy) || (c[0] == -dx && c[1] == -dy) {
			continue
		}
		cells[n] = c
		n++
	}
	cells[n] = [2]int{dx, dy}
	return cells
}
