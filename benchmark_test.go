package easel

import (
	"fmt"
	"testing"
)

// benchScene creates a scene with n objects on a 500x500 surface, each
// carrying one five-point polyline spread across the 0..10 world extent.
func benchScene(b *testing.B, n int) *Scene {
	b.Helper()
	s, _ := newTestScene(500, 500)
	if err := s.Transformer().SetWorldExtentRect(0, 0, 10, 10); err != nil {
		b.Fatal(err)
	}
	root := s.Root()
	for i := 0; i < n; i++ {
		o := NewObject(fmt.Sprintf("bench-%d", i))
		x := float64(i%100) * 0.1
		y := float64(i/100%100) * 0.1
		o.AddSegment(NewSegment(
			Point{X: x, Y: y},
			Point{X: x + 0.2, Y: y + 0.1},
			Point{X: x + 0.4, Y: y},
			Point{X: x + 0.6, Y: y + 0.1},
			Point{X: x + 0.8, Y: y},
		))
		root.AddChild(o)
	}
	return s
}

// benchLabelScene builds a scene with n annotated segments in a loose grid.
// Neighboring labels are wider than their column spacing, so the layout pass
// has to probe fallback slots for a realistic share of them.
func benchLabelScene(b *testing.B, n int) *Scene {
	b.Helper()
	s, _ := newTestScene(500, 500)
	if err := s.Transformer().SetWorldExtentRect(0, 0, 10, 10); err != nil {
		b.Fatal(err)
	}
	root := s.Root()
	for i := 0; i < n; i++ {
		o := NewObject(fmt.Sprintf("lbl-%d", i))
		x := float64(i%10) + 0.2
		y := float64(i/10%10) + 0.2
		seg := NewSegment(Point{X: x, Y: y}, Point{X: x + 0.6, Y: y})
		seg.SetAnnotation(NewAnnotation(fmt.Sprintf("label %d", i), AnchorTop|AnchorDynamic))
		o.AddSegment(seg)
		root.AddChild(o)
	}
	return s
}

// --- Frame Pipeline Benchmarks ---

func BenchmarkRender_1000Segments_Clean(b *testing.B) {
	s := benchScene(b, 1000)

	// Warm up: the first frame regenerates every polyline.
	s.Render()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Render()
	}
}

func BenchmarkRender_1000Segments_Dirty(b *testing.B) {
	s := benchScene(b, 1000)

	s.Render() // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Root().Redraw()
		s.Render()
	}
}

func BenchmarkRender_1000Segments_ExtentChange(b *testing.B) {
	s := benchScene(b, 1000)
	tr := s.Transformer()

	s.Render() // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Alternate between two pans so every frame remaps all geometry.
		dx := float64(i%2) * 0.5
		if err := tr.SetWorldExtentRect(dx, 0, 10+dx, 10); err != nil {
			b.Fatal(err)
		}
		s.Render()
	}
}

func BenchmarkRender_Scaling(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		b.Run(fmt.Sprintf("%dsegments", n), func(b *testing.B) {
			s := benchScene(b, n)
			s.Render() // warmup

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s.Root().Redraw()
				s.Render()
			}
		})
	}
}

// --- Label Layout Benchmarks ---

func BenchmarkLabelLayout_100Labels(b *testing.B) {
	old := DefaultFont()
	SetDefaultFont(&fixedFont{runeW: 10, lh: 10})
	defer SetDefaultFont(old)

	s := benchLabelScene(b, 100)

	// Warm up: first frame measures every label and memoizes the sizes, so
	// the loop below times placement alone.
	s.Render()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.annotValid = false
		s.Render()
	}
}

// --- Hit Testing Benchmarks ---

func BenchmarkFindObjectAt_Hit(b *testing.B) {
	s := benchScene(b, 1000)

	// Warm up: first lookup populates the segment bounds caches.
	s.FindObjectAt(20, 472)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.FindObjectAt(20, 472)
	}
}

func BenchmarkFindObjectAt_Miss(b *testing.B) {
	s := benchScene(b, 1000)

	s.FindObjectAt(490, 10) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.FindObjectAt(490, 10)
	}
}

func BenchmarkFindSegmentsInRect(b *testing.B) {
	s := benchScene(b, 1000)
	r := Rect{X: 0, Y: 440, Width: 100, Height: 40}

	s.FindSegmentsInRect(r) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.FindSegmentsInRect(r)
	}
}

// --- Interaction Benchmarks ---

func BenchmarkDispatchPointer_Hover(b *testing.B) {
	s := benchScene(b, 1000)
	s.StartInteraction(NewSelectInteraction())

	s.DispatchPointer(100, 100, false, ButtonNone, 0) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Alternate positions so motion dedup never swallows the sample.
		s.DispatchPointer(100+float64(i%2), 100, false, ButtonNone, 0)
	}
}

// --- Raw Baselines ---

// BenchmarkRawPointMapping times bare Transformer math on the same point
// volume the dirty render benchmark remaps each frame.
func BenchmarkRawPointMapping_5000Points(b *testing.B) {
	tr := NewTransformer(Rect{Width: 500, Height: 500})
	if err := tr.SetWorldExtentRect(0, 0, 10, 10); err != nil {
		b.Fatal(err)
	}
	pts := make([]Point, 5000)
	for i := range pts {
		pts[i] = Point{X: float64(i%100) * 0.1, Y: float64(i/100) * 0.002}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, p := range pts {
			_ = tr.WorldToDevice(p)
		}
	}
}
