package easel

import "math"

// defaultDragDeadZone is the pointer travel, in device pixels, a held
// button must exceed before drag events begin.
const defaultDragDeadZone = 4.0

// Event is one pointer event delivered to the active Interaction. X and Y
// are device pixels. Scene is the dispatching scene, so handlers reach the
// tree, the Transformer and hit-testing without holding their own reference.
type Event struct {
	Kind      EventKind
	X, Y      float64
	Modifiers KeyModifiers
	Scene     *Scene
}

// Interaction consumes the scene's pointer event stream. At most one
// interaction is active per scene; events arriving while none is installed
// are dropped.
type Interaction interface {
	// HandleEvent processes one event, on the scene thread.
	HandleEvent(Event)

	// Stop is called when the interaction is replaced or removed, so it can
	// tear down any feedback it put on the overlay.
	Stop(*Scene)
}

// pointerState tracks the single pointer across DispatchPointer calls.
type pointerState struct {
	down     bool
	dragging bool
	button   Button
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hasLast  bool
}

// StartInteraction installs handler as the scene's active interaction. Any
// previous interaction is stopped after the new one is in place, so a Stop
// that inspects the scene sees the final state. Panics if handler is nil.
func (s *Scene) StartInteraction(handler Interaction) {
	if handler == nil {
		panic("easel: StartInteraction requires a handler; use StopInteraction to clear")
	}
	old := s.interaction
	s.interaction = handler
	if old != nil && old != handler {
		old.Stop(s)
	}
}

// StopInteraction removes the active interaction, if any, giving it a Stop
// call to clean up.
func (s *Scene) StopInteraction() {
	old := s.interaction
	s.interaction = nil
	if old != nil {
		old.Stop(s)
	}
}

// ActiveInteraction returns the installed interaction, or nil.
func (s *Scene) ActiveInteraction() Interaction {
	return s.interaction
}

// SetDragDeadZone overrides the distance, in device pixels, the pointer
// must travel from its press point before drag events start.
func (s *Scene) SetDragDeadZone(px float64) {
	s.dragDeadZone = px
}

// DispatchPointer feeds one pointer sample into the scene: position in
// device pixels, whether a button is held, and which one. The surface calls
// this once per tick. If a synthetic event is queued it replaces the
// sample, so scripts drive the same state machine real input does.
func (s *Scene) DispatchPointer(x, y float64, pressed bool, button Button, mods KeyModifiers) {
	if len(s.injectQueue) > 0 {
		evt := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
		x, y = evt.x, evt.y
		pressed = evt.pressed
		button = evt.button
	}
	s.processPointer(x, y, pressed, button, mods)
}

// processPointer advances the pointer state machine and delivers the
// resulting events. The button captured at press time sticks for the whole
// press-drag-release gesture even if the hardware reports differently
// mid-gesture.
func (s *Scene) processPointer(x, y float64, pressed bool, button Button, mods KeyModifiers) {
	if pressed && button == ButtonNone {
		pressed = false
	}
	ps := &s.pointer

	if pressed && !ps.down {
		// Just pressed — capture the button for this gesture.
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hasLast = true
		ps.dragging = false
		s.deliver(downKind(ps.button), x, y, mods)
	} else if !pressed && ps.down {
		// Just released — report with the button from press time.
		s.deliver(upKind(ps.button), x, y, mods)
		ps.down = false
		ps.dragging = false
		ps.lastX, ps.lastY = x, y
	} else if pressed && ps.down {
		// Held, possibly moved. Drag events start only once the pointer
		// leaves the dead zone around the press point.
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
				}
			}
			if ps.dragging {
				s.deliver(dragKind(ps.button), x, y, mods)
			}
		}
		ps.lastX, ps.lastY = x, y
	} else {
		// Hover move.
		if !ps.hasLast || x != ps.lastX || y != ps.lastY {
			s.deliver(EventMotion, x, y, mods)
			ps.lastX, ps.lastY = x, y
			ps.hasLast = true
		}
	}
}

// deliver hands one event to the active interaction, dropping it when none
// is installed.
func (s *Scene) deliver(kind EventKind, x, y float64, mods KeyModifiers) {
	if s.interaction == nil {
		return
	}
	s.interaction.HandleEvent(Event{Kind: kind, X: x, Y: y, Modifiers: mods, Scene: s})
}

// rubberBand is the dashed overlay rectangle the drag-driven interactions
// sweep out. It lives on the scene overlay, authored in device pixels and
// excluded from hit-testing, and is built lazily on the first update.
type rubberBand struct {
	obj *Object
	seg *Segment
}

func (b *rubberBand) update(s *Scene, r Rect) {
	if b.obj == nil {
		b.obj = NewObject("rubber-band")
		b.obj.DeviceRelative = true
		b.obj.Pickable = false
		st := b.obj.Style()
		st.SetForeground(CurrentTheme().Highlight)
		st.SetLineWidth(1)
		st.SetDash(4, 4)
		b.seg = NewSegment()
		b.obj.AddSegment(b.seg)
		s.Overlay().AddChild(b.obj)
	}
	b.seg.SetPoints(RectPoints(r)...)
}

func (b *rubberBand) remove() {
	if b.obj == nil {
		return
	}
	b.obj.Remove()
	b.obj = nil
	b.seg = nil
}

func downKind(b Button) EventKind {
	if b == Button2 {
		return EventButton2Down
	}
	return EventButton1Down
}

func dragKind(b Button) EventKind {
	if b == Button2 {
		return EventButton2Drag
	}
	return EventButton1Drag
}

func upKind(b Button) EventKind {
	if b == Button2 {
		return EventButton2Up
	}
	return EventButton1Up
}
