package easel

import "strings"

// Annotation is a text label attached to a Segment. The scene's layout pass
// decides each frame where (or whether) it is painted; annotations never
// overlap each other, and one that cannot be placed is suppressed until the
// scene changes.
//
// Text may span multiple lines separated by '\n'. The rendered size is
// measured with the resolved font and memoized; any mutation that could
// change it (new text, a style or theme change along the owner chain)
// invalidates the cache lazily.
type Annotation struct {
	owner  *Segment
	text   string
	anchor Anchor

	// size cache
	sizeValid      bool
	width, height  float64
	textInset      Point
	lineSpacing    float64
	lines          []string
	cachedFont     Font
	cachedBG       bool
	cachedChainVer uint64

	// placement, owned by the layout pass
	placed     bool
	suppressed bool
	placeRect  Rect
}

// NewAnnotation creates a detached label with the given text and placement
// hints.
func NewAnnotation(text string, anchor Anchor) *Annotation {
	return &Annotation{text: text, anchor: anchor}
}

// Text returns the label text.
func (a *Annotation) Text() string {
	return a.text
}

// SetText replaces the label text and invalidates the measured size.
func (a *Annotation) SetText(text string) {
	if a.text == text {
		return
	}
	a.text = text
	a.sizeValid = false
	a.noteChanged()
}

// Anchor returns the placement hints.
func (a *Annotation) Anchor() Anchor {
	return a.anchor
}

// SetAnchor replaces the placement hints. The measured size is unaffected
// but the label will be re-placed on the next frame.
func (a *Annotation) SetAnchor(anchor Anchor) {
	if a.anchor == anchor {
		return
	}
	a.anchor = anchor
	a.noteChanged()
}

// Owner returns the Segment this annotation labels, or nil.
func (a *Annotation) Owner() *Segment {
	return a.owner
}

// Invalidate drops the memoized size so the next query re-measures. The
// engine notices font and theme changes by itself; call this after mutating
// state it cannot see, such as the metrics behind a shared Font value.
func (a *Annotation) Invalidate() {
	a.sizeValid = false
	a.noteChanged()
}

// Size returns the label's rendered size in device pixels, including its
// margins. The measurement is memoized; it is recomputed only after the
// text, the resolved font, the background presence or any style along the
// owner chain changes. A label whose chain resolves to no font has zero
// size and is skipped by layout.
func (a *Annotation) Size() (width, height float64) {
	var buf [12]*Style
	var chain []*Style
	if a.owner != nil {
		chain = a.owner.appendStyleChain(buf[:0])
	}
	ver := chainVersion(chain)
	v := resolveChain(chain)
	if a.sizeValid && a.cachedFont == v.Font && a.cachedBG == v.HasBackground() && a.cachedChainVer == ver {
		return a.width, a.height
	}
	a.computeSize(v)
	a.cachedFont = v.Font
	a.cachedBG = v.HasBackground()
	a.cachedChainVer = ver
	a.sizeValid = true
	return a.width, a.height
}

// computeSize measures the text block. Width is the widest line plus the
// horizontal margins; height is the line heights plus inter-line padding
// plus the vertical margins. With a background fill the margin grows to half
// a line height so the fill clears the glyphs.
func (a *Annotation) computeSize(v StyleValues) {
	if v.Font == nil {
		a.width, a.height = 0, 0
		a.textInset = Point{}
		a.lineSpacing = 0
		a.lines = nil
		return
	}
	lh := v.Font.LineHeight()
	pad := currentTheme().LabelPadding * lh
	margin := currentTheme().LabelMargin
	if v.HasBackground() {
		margin = lh / 2
	}

	a.lines = strings.Split(a.text, "\n")
	maxW := 0.0
	for _, line := range a.lines {
		w, _ := v.Font.MeasureString(line)
		if w > maxW {
			maxW = w
		}
	}
	n := float64(len(a.lines))
	a.width = maxW + 2*margin
	a.height = n*lh + (n-1)*pad + 2*margin
	a.textInset = Point{X: margin, Y: margin}
	a.lineSpacing = lh + pad
}

// Placement returns the rectangle committed by the last layout pass and
// whether the label was placed at all.
func (a *Annotation) Placement() (Rect, bool) {
	return a.placeRect, a.placed
}

// Suppressed reports whether the last layout pass measured the label but
// found no free spot for it.
func (a *Annotation) Suppressed() bool {
	return a.suppressed
}

// noteChanged propagates an invalidation to the owning scene, if attached.
func (a *Annotation) noteChanged() {
	if a.owner != nil && a.owner.owner != nil {
		a.owner.owner.invalidateScene()
	}
}
