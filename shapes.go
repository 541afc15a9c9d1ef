package easel

import "math"

// Point generators for common polyline shapes. Each returns a fresh slice
// ready for Segment.SetPoints. Closed outlines repeat their first point at
// the end, exactly, so they stroke and fill as loops.

// RectPoints returns the five points of a closed rectangle outline, from
// the top-left corner around and back.
func RectPoints(r Rect) []Point {
	return []Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y},
	}
}

// CirclePoints approximates a circle with segs chords, closed. Fewer than 3
// segments is raised to 3.
func CirclePoints(center Point, radius float64, segs int) []Point {
	if segs < 3 {
		segs = 3
	}
	pts := make([]Point, segs+1)
	for i := 0; i < segs; i++ {
		a := 2 * math.Pi * float64(i) / float64(segs)
		pts[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	pts[segs] = pts[0]
	return pts
}

// ArcPoints returns an open arc of segs chords from startAngle sweeping
// sweep radians. Angles follow math convention; in device space positive
// sweeps run clockwise because Y grows downward.
func ArcPoints(center Point, radius, startAngle, sweep float64, segs int) []Point {
	if segs < 1 {
		segs = 1
	}
	pts := make([]Point, segs+1)
	for i := 0; i <= segs; i++ {
		a := startAngle + sweep*float64(i)/float64(segs)
		pts[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return pts
}

// RegularPolygonPoints returns a closed regular polygon with the first
// vertex at startAngle. Fewer than 3 sides is raised to 3.
func RegularPolygonPoints(center Point, radius float64, sides int, startAngle float64) []Point {
	if sides < 3 {
		sides = 3
	}
	pts := make([]Point, sides+1)
	for i := 0; i < sides; i++ {
		a := startAngle + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	pts[sides] = pts[0]
	return pts
}

// WavePoints returns a sinusoid along the line from a to b: segs+1 points
// displaced perpendicular to the line by amplitude, completing frequency
// full cycles, shifted by phase radians.
func WavePoints(a, b Point, amplitude, frequency, phase float64, segs int) []Point {
	if segs < 1 {
		segs = 1
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	var px, py float64 // perpendicular unit vector
	if ln > 1e-10 {
		px = -dy / ln
		py = dx / ln
	}
	pts := make([]Point, segs+1)
	for i := 0; i <= segs; i++ {
		t := float64(i) / float64(segs)
		off := amplitude * math.Sin(frequency*2*math.Pi*t+phase)
		pts[i] = Point{X: a.X + dx*t + px*off, Y: a.Y + dy*t + py*off}
	}
	return pts
}
