package ebitengine

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType measurement and painting.
// It satisfies easel.Font: the engine measures through it during annotation
// layout, and the painter draws through its face.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont parses raw TTF/OTF data at the given size in pixels.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("parse ttf font: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	return &TTFFont{face: face, source: source, size: size, lh: lh}, nil
}

// MeasureString returns the rendered size of a single line.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical advance between consecutive baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the font was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
