package easel

// syntheticPointerEvent is a single queued synthetic pointer sample, in
// device coordinates, identical in shape to real input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  Button
}

// InjectPress queues a primary-button press at the given device
// coordinates. Queued events are consumed one per DispatchPointer call,
// each replacing that call's real pointer sample, so synthetic gestures
// play out over consecutive ticks exactly like real ones.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  Button1,
	})
	s.requestRepaint()
}

// InjectMove queues a pointer move with the primary button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  Button1,
	})
	s.requestRepaint()
}

// InjectRelease queues a pointer release at the given device coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  Button1,
	})
	s.requestRepaint()
}

// InjectClick queues a press followed by a release at the same device
// coordinates. Consumes two dispatches.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag gesture: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate dispatches, and release at
// (toX, toY). The whole sequence consumes frames dispatches; the minimum is
// 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// injectPending reports whether synthetic events are still queued. Scripts
// wait on this before advancing to their next action.
func (s *Scene) injectPending() bool {
	return len(s.injectQueue) > 0
}
