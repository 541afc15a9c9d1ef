package easel

import (
	"math"
	"testing"
)

// --- RectPoints ---

func TestRectPoints(t *testing.T) {
	pts := RectPoints(Rect{X: 10, Y: 20, Width: 30, Height: 40})
	want := []Point{
		{X: 10, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 60}, {X: 10, Y: 60}, {X: 10, Y: 20},
	}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %+v, want %+v", i, pts[i], want[i])
		}
	}
}

// --- CirclePoints ---

func TestCirclePoints(t *testing.T) {
	center := Point{X: 5, Y: 5}
	pts := CirclePoints(center, 2, 8)

	if len(pts) != 9 {
		t.Fatalf("len = %d, want 9", len(pts))
	}
	if pts[0] != pts[8] {
		t.Error("the outline should close exactly on its first point")
	}
	assertPointNear(t, "pts[0]", pts[0], Point{X: 7, Y: 5})
	for _, p := range pts {
		d := math.Hypot(p.X-center.X, p.Y-center.Y)
		assertNear(t, "radius", d, 2)
	}
}

func TestCirclePointsMinimumSegments(t *testing.T) {
	pts := CirclePoints(Point{}, 1, 2)
	if len(pts) != 4 {
		t.Errorf("len = %d, want 4 (3 chords minimum, closed)", len(pts))
	}
}

// --- ArcPoints ---

func TestArcPoints(t *testing.T) {
	pts := ArcPoints(Point{}, 1, 0, math.Pi/2, 4)

	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	assertPointNear(t, "start", pts[0], Point{X: 1, Y: 0})
	assertPointNear(t, "end", pts[4], Point{X: 0, Y: 1})
	if pts[0] == pts[4] {
		t.Error("an arc should stay open")
	}
}

func TestArcPointsMinimumSegments(t *testing.T) {
	pts := ArcPoints(Point{}, 1, 0, math.Pi, 0)
	if len(pts) != 2 {
		t.Errorf("len = %d, want 2 (1 chord minimum)", len(pts))
	}
}

// --- RegularPolygonPoints ---

func TestRegularPolygonPoints(t *testing.T) {
	pts := RegularPolygonPoints(Point{}, 1, 4, 0)

	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	assertPointNear(t, "pts[0]", pts[0], Point{X: 1, Y: 0})
	assertPointNear(t, "pts[1]", pts[1], Point{X: 0, Y: 1})
	assertPointNear(t, "pts[2]", pts[2], Point{X: -1, Y: 0})
	assertPointNear(t, "pts[3]", pts[3], Point{X: 0, Y: -1})
	if pts[4] != pts[0] {
		t.Error("the outline should close exactly on its first point")
	}
}

func TestRegularPolygonPointsMinimumSides(t *testing.T) {
	pts := RegularPolygonPoints(Point{}, 1, 1, 0)
	if len(pts) != 4 {
		t.Errorf("len = %d, want 4 (3 sides minimum, closed)", len(pts))
	}
}

// --- WavePoints ---

func TestWavePoints(t *testing.T) {
	pts := WavePoints(Point{}, Point{X: 10}, 2, 1, 0, 4)

	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	assertPointNear(t, "start", pts[0], Point{X: 0, Y: 0})
	assertPointNear(t, "end", pts[4], Point{X: 10, Y: 0})
	// A quarter of the way through one full cycle the sine peaks.
	assertPointNear(t, "crest", pts[1], Point{X: 2.5, Y: 2})
}

func TestWavePointsDegenerate(t *testing.T) {
	a := Point{X: 3, Y: 4}
	pts := WavePoints(a, a, 2, 1, 0, 4)

	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("pts[%d] contains NaN", i)
		}
		assertPointNear(t, "collapsed", p, a)
	}
}
