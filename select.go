package easel

// SelectInteraction is the built-in selection handler. A primary-button
// click toggles every segment of the object under the pointer; a
// primary-button drag sweeps a rubber band and toggles every segment it
// touches. Selected segments get the theme highlight as their style;
// toggling off restores the style they had. The selection survives handler
// swaps — Stop removes only the band.
type SelectInteraction struct {
	band     rubberBand
	startX   float64
	startY   float64
	dragging bool
	selected map[*Segment]*Style
}

// NewSelectInteraction creates a selection handler with an empty selection.
func NewSelectInteraction() *SelectInteraction {
	return &SelectInteraction{selected: make(map[*Segment]*Style)}
}

// HandleEvent implements Interaction.
func (si *SelectInteraction) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventButton1Down:
		si.startX, si.startY = ev.X, ev.Y
		si.dragging = false
	case EventButton1Drag:
		si.dragging = true
		si.band.update(ev.Scene, RectFromCorners(si.startX, si.startY, ev.X, ev.Y))
	case EventButton1Up:
		if si.dragging {
			r := RectFromCorners(si.startX, si.startY, ev.X, ev.Y)
			si.band.remove()
			for _, seg := range ev.Scene.FindSegmentsIntersectingRect(r) {
				si.Toggle(seg)
			}
		} else if obj := ev.Scene.FindObjectAt(ev.X, ev.Y); obj != nil {
			for _, seg := range obj.Segments() {
				si.Toggle(seg)
			}
		}
		si.dragging = false
	}
}

// Stop implements Interaction. The selection is kept; call ClearSelection
// to also restore styles.
func (si *SelectInteraction) Stop(s *Scene) {
	si.band.remove()
	si.dragging = false
}

// Toggle flips one segment in or out of the selection, swapping its style
// between the original and a highlighted clone.
func (si *SelectInteraction) Toggle(seg *Segment) {
	if orig, ok := si.selected[seg]; ok {
		seg.SetStyle(orig)
		delete(si.selected, seg)
		return
	}
	orig := seg.Style()
	hl := orig.Clone()
	hl.SetForeground(CurrentTheme().Highlight)
	si.selected[seg] = orig
	seg.SetStyle(hl)
}

// IsSelected reports whether seg is in the selection.
func (si *SelectInteraction) IsSelected(seg *Segment) bool {
	_, ok := si.selected[seg]
	return ok
}

// Selected returns the selected segments as a fresh slice, in no particular
// order.
func (si *SelectInteraction) Selected() []*Segment {
	out := make([]*Segment, 0, len(si.selected))
	for seg := range si.selected {
		out = append(out, seg)
	}
	return out
}

// ClearSelection empties the selection, restoring every segment's original
// style.
func (si *SelectInteraction) ClearSelection() {
	for seg, orig := range si.selected {
		seg.SetStyle(orig)
		delete(si.selected, seg)
	}
}
