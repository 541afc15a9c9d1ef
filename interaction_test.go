package easel

import "testing"

// recordingInteraction captures every delivered event.
type recordingInteraction struct {
	events  []Event
	stopped int
}

func (r *recordingInteraction) HandleEvent(e Event) { r.events = append(r.events, e) }
func (r *recordingInteraction) Stop(*Scene)         { r.stopped++ }

func startRecording(s *Scene) *recordingInteraction {
	rec := &recordingInteraction{}
	s.StartInteraction(rec)
	return rec
}

// --- Installing handlers ---

func TestStartInteractionNilPanics(t *testing.T) {
	s, _ := newTestScene(100, 100)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil handler, got none")
		}
	}()
	s.StartInteraction(nil)
}

func TestStartInteractionSwapStopsOldHandler(t *testing.T) {
	s, _ := newTestScene(100, 100)
	a := startRecording(s)
	b := startRecording(s)

	if a.stopped != 1 {
		t.Errorf("a.stopped = %d, want 1", a.stopped)
	}
	if b.stopped != 0 {
		t.Errorf("b.stopped = %d, want 0", b.stopped)
	}
	if s.ActiveInteraction() != b {
		t.Error("b should be active")
	}
}

func TestStartInteractionSameHandlerNoStop(t *testing.T) {
	s, _ := newTestScene(100, 100)
	a := startRecording(s)
	s.StartInteraction(a)
	if a.stopped != 0 {
		t.Errorf("a.stopped = %d, want 0 when reinstalled", a.stopped)
	}
}

func TestStopInteraction(t *testing.T) {
	s, _ := newTestScene(100, 100)
	a := startRecording(s)
	s.StopInteraction()

	if a.stopped != 1 {
		t.Errorf("a.stopped = %d, want 1", a.stopped)
	}
	if s.ActiveInteraction() != nil {
		t.Error("no interaction should be active")
	}
	s.StopInteraction() // idempotent
	if a.stopped != 1 {
		t.Error("a second StopInteraction should not stop again")
	}
}

func TestDispatchWithoutHandler(t *testing.T) {
	s, _ := newTestScene(100, 100)
	s.DispatchPointer(10, 10, true, Button1, 0) // must not panic
	s.DispatchPointer(10, 10, false, ButtonNone, 0)
}

// --- Press / release ---

func TestPointerPress(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	s.DispatchPointer(100, 120, true, Button1, 0)
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	e := rec.events[0]
	if e.Kind != EventButton1Down {
		t.Errorf("Kind = %v, want EventButton1Down", e.Kind)
	}
	if e.X != 100 || e.Y != 120 {
		t.Errorf("at (%v,%v), want (100,120)", e.X, e.Y)
	}
	if e.Scene != s {
		t.Error("event should carry the dispatching scene")
	}
}

func TestPointerFullGesture(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	s.DispatchPointer(100, 100, true, Button2, 0)
	s.DispatchPointer(120, 100, true, Button2, 0)
	s.DispatchPointer(140, 100, true, Button2, 0)
	s.DispatchPointer(140, 100, false, ButtonNone, 0)

	kinds := []EventKind{EventButton2Down, EventButton2Drag, EventButton2Drag, EventButton2Up}
	if len(rec.events) != len(kinds) {
		t.Fatalf("got %d events, want %d", len(rec.events), len(kinds))
	}
	for i, want := range kinds {
		if rec.events[i].Kind != want {
			t.Errorf("event %d kind = %v, want %v", i, rec.events[i].Kind, want)
		}
	}
}

// --- Drag dead zone ---

func TestPointerDragDeadZone(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(103, 100, true, Button1, 0) // 3px: inside
	s.DispatchPointer(104, 100, true, Button1, 0) // exactly 4px: still inside
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want only the press inside the dead zone", len(rec.events))
	}

	s.DispatchPointer(105, 100, true, Button1, 0) // 5px: out
	if len(rec.events) != 2 || rec.events[1].Kind != EventButton1Drag {
		t.Fatal("leaving the dead zone should start drag events")
	}

	// Once dragging, every move reports, even back near the press point.
	s.DispatchPointer(101, 100, true, Button1, 0)
	if len(rec.events) != 3 || rec.events[2].Kind != EventButton1Drag {
		t.Error("drag should stay latched for the rest of the gesture")
	}
}

func TestPointerHeldStillNoDrag(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(110, 100, true, Button1, 0)
	n := len(rec.events)
	s.DispatchPointer(110, 100, true, Button1, 0) // no movement
	if len(rec.events) != n {
		t.Error("a held, unmoved pointer should deliver nothing")
	}
}

func TestSetDragDeadZone(t *testing.T) {
	s, _ := newTestScene(500, 500)
	s.SetDragDeadZone(0)
	rec := startRecording(s)

	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(101, 100, true, Button1, 0)
	if len(rec.events) != 2 || rec.events[1].Kind != EventButton1Drag {
		t.Error("with a zero dead zone any movement should drag")
	}
}

// --- Button capture ---

func TestPointerButtonCapturedAtPress(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(120, 100, true, Button2, 0)  // hardware lies mid-gesture
	s.DispatchPointer(120, 100, false, Button2, 0) // and at release

	kinds := []EventKind{EventButton1Down, EventButton1Drag, EventButton1Up}
	if len(rec.events) != len(kinds) {
		t.Fatalf("got %d events, want %d", len(rec.events), len(kinds))
	}
	for i, want := range kinds {
		if rec.events[i].Kind != want {
			t.Errorf("event %d kind = %v, want %v (button from press time)", i, rec.events[i].Kind, want)
		}
	}
}

func TestPointerPressedWithoutButton(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	// pressed with ButtonNone cannot be a gesture; it degrades to motion.
	s.DispatchPointer(50, 50, true, ButtonNone, 0)
	if len(rec.events) != 1 || rec.events[0].Kind != EventMotion {
		t.Fatalf("got %+v, want a single EventMotion", rec.events)
	}
}

// --- Hover motion ---

func TestPointerMotionDedup(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	s.DispatchPointer(50, 50, false, ButtonNone, 0)
	if len(rec.events) != 1 || rec.events[0].Kind != EventMotion {
		t.Fatal("the first sample should deliver a motion event")
	}
	s.DispatchPointer(50, 50, false, ButtonNone, 0)
	s.DispatchPointer(50, 50, false, ButtonNone, 0)
	if len(rec.events) != 1 {
		t.Error("an unmoved pointer should not repeat motion events")
	}
	s.DispatchPointer(51, 50, false, ButtonNone, 0)
	if len(rec.events) != 2 {
		t.Error("movement should deliver again")
	}
}

func TestPointerModifiersPassThrough(t *testing.T) {
	s, _ := newTestScene(500, 500)
	rec := startRecording(s)

	s.DispatchPointer(10, 10, true, Button1, ModShift|ModCtrl)
	if rec.events[0].Modifiers != ModShift|ModCtrl {
		t.Errorf("Modifiers = %v, want ModShift|ModCtrl", rec.events[0].Modifiers)
	}
}

// --- Rubber band overlay ---

func TestRubberBand(t *testing.T) {
	s, _ := newTestScene(500, 500)
	b := &rubberBand{}
	b.update(s, Rect{X: 10, Y: 20, Width: 30, Height: 40})

	if s.Overlay().NumChildren() != 1 {
		t.Fatal("the band should live on the overlay")
	}
	obj := s.Overlay().ChildAt(0)
	if obj.Name != "rubber-band" {
		t.Errorf("Name = %q, want %q", obj.Name, "rubber-band")
	}
	if !obj.DeviceRelative || obj.Pickable {
		t.Error("the band should be device-relative and unpickable")
	}
	pts := obj.Segments()[0].Points()
	if len(pts) != 5 || pts[0] != pts[4] {
		t.Error("the band outline should be a closed rectangle")
	}

	b.update(s, Rect{X: 0, Y: 0, Width: 50, Height: 50})
	if s.Overlay().NumChildren() != 1 || s.Overlay().ChildAt(0) != obj {
		t.Error("updates should reuse the existing band object")
	}

	b.remove()
	if s.Overlay().NumChildren() != 0 {
		t.Error("remove should detach the band")
	}
	b.remove() // idempotent
}
