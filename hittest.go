package easel

// FindObjectAt returns the front-most pickable Object with a segment whose
// device bounds contain the device point (x, y), or nil when nothing is
// there. Only data-visible content participates; the overlay is excluded
// entirely so interaction feedback never picks itself.
func (s *Scene) FindObjectAt(x, y float64) *Object {
	return findObjectAt(s.tr, s.root, VisibleAll, x, y)
}

func findObjectAt(tr *Transformer, o *Object, inherited Visibility, x, y float64) *Object {
	vis := o.visibility & inherited
	if vis == 0 {
		return nil
	}
	// Children paint back to front; scan front to back so the top-most hit
	// wins.
	for i := len(o.children) - 1; i >= 0; i-- {
		if hit := findObjectAt(tr, o.children[i], vis, x, y); hit != nil {
			return hit
		}
	}
	if vis&VisibleData == 0 || !o.Pickable {
		return nil
	}
	for _, seg := range o.segments {
		if b, ok := seg.DeviceBounds(tr); ok && b.Contains(x, y) {
			return o
		}
	}
	return nil
}

// FindSegmentsInRect returns the visible, pickable segments whose device
// bounds lie entirely inside the device rectangle r, in paint order. The
// result is a fresh slice owned by the caller.
func (s *Scene) FindSegmentsInRect(r Rect) []*Segment {
	var out []*Segment
	collectSegments(s.tr, s.root, VisibleAll, &out, func(b Rect) bool {
		return r.ContainsRect(b)
	})
	return out
}

// FindSegmentsIntersectingRect is the looser variant: segments whose device
// bounds touch r at all are included.
func (s *Scene) FindSegmentsIntersectingRect(r Rect) []*Segment {
	var out []*Segment
	collectSegments(s.tr, s.root, VisibleAll, &out, func(b Rect) bool {
		return r.Intersects(b)
	})
	return out
}

func collectSegments(tr *Transformer, o *Object, inherited Visibility, out *[]*Segment, match func(Rect) bool) {
	vis := o.visibility & inherited
	if vis == 0 {
		return
	}
	if vis&VisibleData != 0 && o.Pickable {
		for _, seg := range o.segments {
			if b, ok := seg.DeviceBounds(tr); ok && match(b) {
				*out = append(*out, seg)
			}
		}
	}
	for _, child := range o.children {
		collectSegments(tr, child, vis, out, match)
	}
}
