package easel

import "testing"

// withSnapZoom makes zooms take effect immediately for the duration of the
// test.
func withSnapZoom(t *testing.T) {
	t.Helper()
	old := CurrentTheme()
	th := DefaultTheme()
	th.ZoomDuration = 0
	ApplyTheme(th)
	t.Cleanup(func() { ApplyTheme(old) })
}

// newZoomScene builds a 500x500 scene over world 0..10 with the zoom handler
// installed.
func newZoomScene(t *testing.T) *Scene {
	t.Helper()
	s, _ := newTestScene(500, 500)
	if err := s.SetWorldExtentRect(0, 0, 10, 10); err != nil {
		t.Fatalf("SetWorldExtentRect: %v", err)
	}
	s.StartInteraction(NewZoomInteraction())
	return s
}

// --- Region zoom ---

func TestZoomBandDrag(t *testing.T) {
	withSnapZoom(t)
	s := newZoomScene(t)

	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(300, 300, true, Button1, 0)
	s.DispatchPointer(450, 450, false, ButtonNone, 0)

	// The band spanned device (100,100)-(450,450), which is world x 2..9 and
	// y 1..8 on this mapping.
	e := s.Transformer().WorldExtent()
	assertPointNear(t, "Origin", e.Origin, Point{X: 2, Y: 1})
	assertPointNear(t, "XEnd", e.XEnd, Point{X: 9, Y: 1})
	assertPointNear(t, "YEnd", e.YEnd, Point{X: 2, Y: 8})
}

func TestZoomBandOverlayLifecycle(t *testing.T) {
	withSnapZoom(t)
	s := newZoomScene(t)

	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(300, 300, true, Button1, 0)
	if s.Overlay().NumChildren() != 1 {
		t.Fatal("a band should appear on the overlay during the drag")
	}
	if s.Overlay().ChildAt(0).Name != "rubber-band" {
		t.Error("the overlay child should be the rubber band")
	}

	s.DispatchPointer(300, 300, false, ButtonNone, 0)
	if s.Overlay().NumChildren() != 0 {
		t.Error("the band should be removed on release")
	}
}

func TestZoomBandTooSmallIsIgnored(t *testing.T) {
	withSnapZoom(t)
	s := newZoomScene(t)

	// A 1px-wide sliver: past the dead zone, but not a usable region.
	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(101, 160, true, Button1, 0)
	s.DispatchPointer(101, 160, false, ButtonNone, 0)

	e := s.Transformer().WorldExtent()
	assertPointNear(t, "Origin", e.Origin, Point{X: 0, Y: 0})
	assertPointNear(t, "XEnd", e.XEnd, Point{X: 10, Y: 0})
	assertPointNear(t, "YEnd", e.YEnd, Point{X: 0, Y: 10})
	if s.Overlay().NumChildren() != 0 {
		t.Error("the band should still be cleaned up")
	}
}

// --- Click zoom ---

func TestZoomClickZoomsIn(t *testing.T) {
	withSnapZoom(t)
	s := newZoomScene(t)

	s.DispatchPointer(250, 250, true, Button1, 0)
	s.DispatchPointer(250, 250, false, ButtonNone, 0)

	// 2x about world (5,5): the extent halves around the click point.
	e := s.Transformer().WorldExtent()
	assertPointNear(t, "Origin", e.Origin, Point{X: 2.5, Y: 2.5})
	assertPointNear(t, "XEnd", e.XEnd, Point{X: 7.5, Y: 2.5})
	assertPointNear(t, "YEnd", e.YEnd, Point{X: 2.5, Y: 7.5})
}

func TestZoomSecondaryClickZoomsOut(t *testing.T) {
	withSnapZoom(t)
	s := newZoomScene(t)

	s.DispatchPointer(250, 250, true, Button2, 0)
	s.DispatchPointer(250, 250, false, ButtonNone, 0)

	e := s.Transformer().WorldExtent()
	assertPointNear(t, "Origin", e.Origin, Point{X: -5, Y: -5})
	assertPointNear(t, "XEnd", e.XEnd, Point{X: 15, Y: -5})
	assertPointNear(t, "YEnd", e.YEnd, Point{X: -5, Y: 15})
}

func TestZoomClickPointStaysPut(t *testing.T) {
	withSnapZoom(t)
	s := newZoomScene(t)

	// The world point under the cursor must not move on a click zoom.
	before := s.Transformer().DeviceToWorld(Point{X: 100, Y: 450})
	s.DispatchPointer(100, 450, true, Button1, 0)
	s.DispatchPointer(100, 450, false, ButtonNone, 0)
	after := s.Transformer().DeviceToWorld(Point{X: 100, Y: 450})
	assertPointNear(t, "fixed point", after, before)
}

// --- Teardown ---

func TestZoomStopRemovesBand(t *testing.T) {
	withSnapZoom(t)
	s := newZoomScene(t)

	s.DispatchPointer(100, 100, true, Button1, 0)
	s.DispatchPointer(300, 300, true, Button1, 0)
	if s.Overlay().NumChildren() != 1 {
		t.Fatal("a band should be up mid-drag")
	}

	s.StopInteraction()
	if s.Overlay().NumChildren() != 0 {
		t.Error("Stop should remove the band")
	}
}
