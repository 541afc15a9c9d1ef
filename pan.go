package easel

// PanInteraction is the built-in pan handler: dragging with the primary
// button slides the world extent so the content follows the pointer. The
// world point grabbed at press time stays under the cursor for the whole
// drag. Panning snaps; it never animates.
type PanInteraction struct {
	lastX   float64
	lastY   float64
	panning bool
}

// NewPanInteraction creates a pan handler ready for StartInteraction.
func NewPanInteraction() *PanInteraction {
	return &PanInteraction{}
}

// HandleEvent implements Interaction.
func (p *PanInteraction) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventButton1Down:
		p.lastX, p.lastY = ev.X, ev.Y
		p.panning = true
	case EventButton1Drag:
		if !p.panning {
			return
		}
		tr := ev.Scene.Transformer()
		prev := tr.DeviceToWorld(Point{X: p.lastX, Y: p.lastY})
		cur := tr.DeviceToWorld(Point{X: ev.X, Y: ev.Y})
		dx := prev.X - cur.X
		dy := prev.Y - cur.Y
		e := tr.WorldExtent()
		_ = ev.Scene.SetWorldExtent(
			Point{X: e.Origin.X + dx, Y: e.Origin.Y + dy},
			Point{X: e.XEnd.X + dx, Y: e.XEnd.Y + dy},
			Point{X: e.YEnd.X + dx, Y: e.YEnd.Y + dy},
		)
		p.lastX, p.lastY = ev.X, ev.Y
	case EventButton1Up:
		p.panning = false
	}
}

// Stop implements Interaction.
func (p *PanInteraction) Stop(*Scene) {
	p.panning = false
}
