package ebitengine

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/easelgraph/easel"
)

// hatchCell is the tile size, in pixels, of the stripe and crosshatch fill
// patterns. The diagonals are tile-translation-invariant, so the repeated
// tiles form continuous lines.
const hatchCell = 8

// Pattern singletons (no sync.Once — painting is single-threaded).
var (
	whitePixel      *ebiten.Image
	stripeImage     *ebiten.Image
	crosshatchImage *ebiten.Image
)

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image, the
// source for all untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixel
}

func ensureStripe() *ebiten.Image {
	if stripeImage == nil {
		stripeImage = buildHatch(false)
	}
	return stripeImage
}

func ensureCrosshatch() *ebiten.Image {
	if crosshatchImage == nil {
		crosshatchImage = buildHatch(true)
	}
	return crosshatchImage
}

// buildHatch renders one white hatch tile: the anti-diagonal, plus the main
// diagonal for crosshatch. Fill color comes from vertex tint at draw time.
func buildHatch(cross bool) *ebiten.Image {
	img := ebiten.NewImage(hatchCell, hatchCell)
	var p vector.Path
	p.MoveTo(0, hatchCell)
	p.LineTo(hatchCell, 0)
	if cross {
		p.MoveTo(0, 0)
		p.LineTo(hatchCell, hatchCell)
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1})
	tint(vs, easel.ColorWhite)
	img.DrawTriangles(vs, is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
	return img
}

// Paint draws one frame of display ops onto dst, in order. The ops are
// consumed immediately, so their engine-owned slices never outlive the call.
func Paint(dst *ebiten.Image, ops []easel.DisplayOp) {
	for i := range ops {
		op := &ops[i]
		switch op.Kind {
		case easel.OpPolyline:
			paintPolyline(dst, op)
		case easel.OpMarker:
			paintMarker(dst, op)
		case easel.OpLabel:
			paintLabel(dst, op)
		}
	}
}

// paintPolyline fills a closed outline per its fill pattern, then strokes
// it, dashed when the style has a dash pattern.
func paintPolyline(dst *ebiten.Image, op *easel.DisplayOp) {
	pts := op.Points
	if len(pts) < 2 {
		return
	}
	v := &op.Style

	if v.Fill != easel.FillNone && len(pts) >= 4 && pts[0] == pts[len(pts)-1] {
		fillOutline(dst, pts, v)
	}

	if dashable(v.Dash) {
		strokeDashed(dst, pts, v)
		return
	}
	path := buildPath(pts)
	strokePath(dst, path, v)
}

// buildPath converts device points into a vector path.
func buildPath(pts []easel.Point) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		p.LineTo(float32(q.X), float32(q.Y))
	}
	return &p
}

// strokePath triangulates and draws one stroke in the style's foreground.
func strokePath(dst *ebiten.Image, path *vector.Path, v *easel.StyleValues) {
	opts := &vector.StrokeOptions{Width: float32(v.LineWidth)}
	switch v.Cap {
	case easel.CapRound:
		opts.LineCap = vector.LineCapRound
	case easel.CapSquare:
		opts.LineCap = vector.LineCapSquare
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	tint(vs, v.Foreground)
	dst.DrawTriangles(vs, is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: v.Antialias,
	})
}

// fillOutline paints the interior of a closed outline. Solid fills use the
// background color when one is set and the foreground otherwise; hatch fills
// lay an optional background first, then sample the repeating hatch tile in
// device space so the pattern stays screen-aligned under any transform.
func fillOutline(dst *ebiten.Image, pts []easel.Point, v *easel.StyleValues) {
	path := buildPath(pts)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(is) == 0 {
		return
	}

	if v.Fill == easel.FillSolid {
		c := v.Foreground
		if v.HasBackground() {
			c = v.Background
		}
		tint(vs, c)
		dst.DrawTriangles(vs, is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
			AntiAlias: v.Antialias,
			FillRule:  ebiten.FillRuleNonZero,
		})
		return
	}

	if v.HasBackground() {
		bg := make([]ebiten.Vertex, len(vs))
		copy(bg, vs)
		tint(bg, v.Background)
		dst.DrawTriangles(bg, is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
			AntiAlias: v.Antialias,
			FillRule:  ebiten.FillRuleNonZero,
		})
	}

	pat := ensureStripe()
	if v.Fill == easel.FillCrosshatch {
		pat = ensureCrosshatch()
	}
	for i := range vs {
		vs[i].SrcX = vs[i].DstX
		vs[i].SrcY = vs[i].DstY
		vs[i].ColorR = float32(v.Foreground.R)
		vs[i].ColorG = float32(v.Foreground.G)
		vs[i].ColorB = float32(v.Foreground.B)
		vs[i].ColorA = float32(v.Foreground.A)
	}
	dst.DrawTriangles(vs, is, pat, &ebiten.DrawTrianglesOptions{
		AntiAlias: v.Antialias,
		FillRule:  ebiten.FillRuleNonZero,
		Address:   ebiten.AddressRepeat,
	})
}

// dashable reports whether a dash pattern can drive the dashed stroker: at
// least one entry, all entries positive. Anything else strokes solid.
func dashable(dash []float64) bool {
	if len(dash) == 0 {
		return false
	}
	for _, d := range dash {
		if d <= 0 {
			return false
		}
	}
	return true
}

// strokeDashed walks the polyline accumulating distance against the dash
// pattern and strokes only the "on" runs. A run spanning a vertex stays
// connected through it. Odd-length patterns alternate on/off across repeats,
// so Dash(4) means 4 on, 4 off.
func strokeDashed(dst *ebiten.Image, pts []easel.Point, v *easel.StyleValues) {
	var path vector.Path
	dash := v.Dash
	idx := 0
	remain := dash[0]
	on := true
	penDown := false

	for i := 0; i+1 < len(pts); i++ {
		ax, ay := pts[i].X, pts[i].Y
		bx, by := pts[i+1].X, pts[i+1].Y
		segLen := math.Hypot(bx-ax, by-ay)
		if segLen == 0 {
			continue
		}
		t := 0.0
		for t < segLen {
			step := math.Min(remain, segLen-t)
			next := t + step
			if on {
				if !penDown {
					path.MoveTo(float32(ax+(bx-ax)*t/segLen), float32(ay+(by-ay)*t/segLen))
					penDown = true
				}
				path.LineTo(float32(ax+(bx-ax)*next/segLen), float32(ay+(by-ay)*next/segLen))
			} else {
				penDown = false
			}
			t = next
			remain -= step
			if remain <= 0 {
				idx = (idx + 1) % len(dash)
				remain = dash[idx]
				on = !on
			}
		}
	}
	strokePath(dst, &path, v)
}

// paintMarker blits the marker image centered on its stamp point.
func paintMarker(dst *ebiten.Image, op *easel.DisplayOp) {
	img, ok := op.Image.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	b := img.Bounds()
	geo := &ebiten.DrawImageOptions{}
	geo.GeoM.Translate(op.At.X-float64(b.Dx())/2, op.At.Y-float64(b.Dy())/2)
	dst.DrawImage(img, geo)
}

// paintLabel fills the label's background when the style has one, then
// draws each text line at its committed position.
func paintLabel(dst *ebiten.Image, op *easel.DisplayOp) {
	v := &op.Style
	f, ok := v.Font.(*TTFFont)
	if !ok || f == nil {
		return
	}

	if v.HasBackground() {
		r := op.Rect
		path := buildPath([]easel.Point{
			{X: r.X, Y: r.Y},
			{X: r.X + r.Width, Y: r.Y},
			{X: r.X + r.Width, Y: r.Y + r.Height},
			{X: r.X, Y: r.Y + r.Height},
			{X: r.X, Y: r.Y},
		})
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		tint(vs, v.Background)
		dst.DrawTriangles(vs, is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
			AntiAlias: v.Antialias,
		})
	}

	x := op.Rect.X + op.Inset.X
	y := op.Rect.Y + op.Inset.Y
	for _, line := range op.Lines {
		topt := &text.DrawOptions{}
		topt.GeoM.Translate(x, y)
		topt.ColorScale.Scale(
			float32(v.Foreground.R),
			float32(v.Foreground.G),
			float32(v.Foreground.B),
			float32(v.Foreground.A),
		)
		text.Draw(dst, line, f.face, topt)
		y += op.LineAdvance
	}
}

// tint sets every vertex to sample the white pixel and carry c as its color.
func tint(vs []ebiten.Vertex, c easel.Color) {
	for i := range vs {
		vs[i].SrcX = 0.5
		vs[i].SrcY = 0.5
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = float32(c.A)
	}
}
