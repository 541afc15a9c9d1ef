package easel

import "math"

// Marker is an image stamped along a Segment's geometry: one copy centered
// on every vertex, or a single copy at a fixed anchor point. The fields may
// be mutated freely; call Refresh on the owning Object afterwards.
type Marker struct {
	Image     Image
	Placement MarkerPlacement

	// Anchor is the stamp position when Placement is MarkerAtAnchor, in the
	// same coordinate space as the segment's points.
	Anchor Point
}

// Segment is a run of polyline geometry owned by exactly one Object. Its
// points are world coordinates unless the owning Object is device-relative.
// A Segment may carry its own Style (consulted before the owner chain), at
// most one Annotation and at most one Marker.
type Segment struct {
	owner      *Object
	points     []Point
	style      *Style
	annotation *Annotation
	marker     *Marker

	deviceBounds Rect
	boundsGen    uint64
	boundsValid  bool

	// devicePts is scratch reused by the emit pass; the slice backs the
	// DisplayOps of one frame and is overwritten on the next.
	devicePts []Point
}

// NewSegment creates a detached Segment with the given geometry and an empty
// Style.
func NewSegment(points ...Point) *Segment {
	return &Segment{
		points: points,
		style:  NewStyle(),
	}
}

// SetPoints replaces the segment's geometry. The slice is retained; the
// caller must not mutate it afterwards. Closed outlines repeat their first
// point at the end.
func (s *Segment) SetPoints(points ...Point) {
	s.points = points
	s.boundsValid = false
	if s.owner != nil {
		s.owner.invalidateScene()
	}
}

// Points returns the geometry. The returned slice MUST NOT be mutated.
func (s *Segment) Points() []Point {
	return s.points
}

// Owner returns the Object this segment is attached to, or nil.
func (s *Segment) Owner() *Object {
	return s.owner
}

// Style returns the segment's own Style for mutation. Unset attributes defer
// to the owning Object's chain.
func (s *Segment) Style() *Style {
	return s.style
}

// SetStyle replaces the segment's own Style wholesale, the usual way to
// toggle a highlight on and off. Panics if st is nil.
func (s *Segment) SetStyle(st *Style) {
	if st == nil {
		panic("easel: cannot set nil style")
	}
	s.style = st
	if s.owner != nil {
		s.owner.invalidateScene()
	}
}

// EffectiveStyle resolves the full attribute set for painting this segment:
// its own Style, the owner chain's, then the theme.
func (s *Segment) EffectiveStyle() StyleValues {
	var buf [12]*Style
	return resolveChain(s.appendStyleChain(buf[:0]))
}

// appendStyleChain appends the segment's style and its owner chain's styles
// to buf, nearest first.
func (s *Segment) appendStyleChain(buf []*Style) []*Style {
	buf = append(buf, s.style)
	if s.owner != nil {
		buf = s.owner.appendStyleChain(buf)
	}
	return buf
}

// SetAnnotation attaches a text label to this segment, replacing and
// detaching any previous one. A segment holds at most one annotation; pass
// nil to clear. If a already labels another segment it is moved here.
func (s *Segment) SetAnnotation(a *Annotation) {
	if s.annotation != nil && s.annotation != a {
		s.annotation.owner = nil
	}
	if a != nil && a.owner != nil && a.owner != s {
		a.owner.annotation = nil
	}
	s.annotation = a
	if a != nil {
		a.owner = s
	}
	if s.owner != nil {
		s.owner.invalidateScene()
	}
}

// Annotation returns the attached label, or nil.
func (s *Segment) Annotation() *Annotation {
	return s.annotation
}

// SetMarker attaches a marker image, replacing any previous one. A segment
// holds at most one marker; pass nil to clear.
func (s *Segment) SetMarker(m *Marker) {
	s.marker = m
	if s.owner != nil {
		s.owner.invalidateScene()
	}
}

// Marker returns the attached marker, or nil.
func (s *Segment) Marker() *Marker {
	return s.marker
}

// Remove detaches this segment from its owner and releases its annotation
// and marker. No-op on the tree if the segment is already detached; the
// contents are released either way.
func (s *Segment) Remove() {
	if s.owner != nil {
		o := s.owner
		o.removeSegmentByPtr(s)
		s.owner = nil
		o.invalidateScene()
	}
	s.detachContents()
}

// detachContents releases the annotation and marker, the cascade half of
// removal.
func (s *Segment) detachContents() {
	if s.annotation != nil {
		s.annotation.owner = nil
		s.annotation = nil
	}
	s.marker = nil
	s.boundsValid = false
}

// devicePoint maps one of the segment's points to device pixels, honoring
// the owner's device-relative flag.
func (s *Segment) devicePoint(tr *Transformer, p Point) Point {
	if s.owner != nil && s.owner.DeviceRelative {
		return p
	}
	return tr.WorldToDevice(p)
}

// deviceGeometry maps all points to device pixels into the reused scratch
// slice. Valid until the next call for this segment.
func (s *Segment) deviceGeometry(tr *Transformer) []Point {
	s.devicePts = s.devicePts[:0]
	for _, p := range s.points {
		s.devicePts = append(s.devicePts, s.devicePoint(tr, p))
	}
	return s.devicePts
}

// DeviceBounds returns the device-space bounding rectangle of the segment's
// geometry, and false when the segment has no points. The result is cached
// per Transformer generation; SetPoints invalidates it.
func (s *Segment) DeviceBounds(tr *Transformer) (Rect, bool) {
	if len(s.points) == 0 {
		return Rect{}, false
	}
	if s.boundsValid && s.boundsGen == tr.generation() {
		return s.deviceBounds, true
	}
	p0 := s.devicePoint(tr, s.points[0])
	minX, minY := p0.X, p0.Y
	maxX, maxY := p0.X, p0.Y
	for _, p := range s.points[1:] {
		d := s.devicePoint(tr, p)
		minX = math.Min(minX, d.X)
		minY = math.Min(minY, d.Y)
		maxX = math.Max(maxX, d.X)
		maxY = math.Max(maxY, d.Y)
	}
	s.deviceBounds = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	s.boundsGen = tr.generation()
	s.boundsValid = true
	return s.deviceBounds, true
}
