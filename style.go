package easel

// Attr identifies a single drawing attribute within a Style. Attributes can
// be combined with bitwise OR where a mask is expected.
type Attr uint16

const (
	AttrForeground Attr = 1 << iota // stroke and text color
	AttrBackground                  // fill behind annotation text
	AttrLineWidth                   // stroke width in device pixels
	AttrDash                        // dash pattern in device pixels
	AttrFont                        // font used to measure and paint text
	AttrFill                        // interior fill pattern for closed outlines
	AttrAntialias                   // smooth stroke edges
	AttrCap                         // stroke end-cap style
)

// Style is a sparse bag of drawing attributes. Every attribute starts unset;
// an unset attribute defers to the owner's inheritance chain and finally to
// the theme defaults, so a fresh Style inherits everything.
//
// Styles are not safe for concurrent mutation; like the rest of the scene
// graph they belong to the scene thread.
type Style struct {
	set        Attr
	version    uint64
	foreground Color
	background Color
	lineWidth  float64
	dash       []float64
	font       Font
	fill       FillPattern
	antialias  bool
	capStyle   CapStyle
}

// NewStyle returns a Style with every attribute unset.
func NewStyle() *Style {
	return &Style{}
}

// Has reports whether every attribute in mask is set locally on this Style,
// without consulting the inheritance chain.
func (s *Style) Has(mask Attr) bool {
	return s.set&mask == mask
}

// Unset clears the attributes in mask so they inherit again.
func (s *Style) Unset(mask Attr) {
	if s.set&mask == 0 {
		return
	}
	s.set &^= mask
	if mask&AttrDash != 0 {
		s.dash = nil
	}
	if mask&AttrFont != 0 {
		s.font = nil
	}
	s.version++
}

// Clone returns an independent copy of the Style. The dash pattern is
// deep-copied; the Font is shared.
func (s *Style) Clone() *Style {
	c := *s
	if s.dash != nil {
		c.dash = append([]float64(nil), s.dash...)
	}
	c.version = 0
	return &c
}

// SetForeground sets the stroke and text color.
func (s *Style) SetForeground(c Color) {
	s.foreground = c
	s.set |= AttrForeground
	s.version++
}

// Foreground returns the local foreground color and whether it is set.
func (s *Style) Foreground() (Color, bool) {
	return s.foreground, s.set&AttrForeground != 0
}

// SetBackground sets the fill color painted behind annotation text. A color
// with zero alpha is still "set": it explicitly disables the background for
// this style's subtree.
func (s *Style) SetBackground(c Color) {
	s.background = c
	s.set |= AttrBackground
	s.version++
}

// Background returns the local background color and whether it is set.
func (s *Style) Background() (Color, bool) {
	return s.background, s.set&AttrBackground != 0
}

// SetLineWidth sets the stroke width in device pixels.
func (s *Style) SetLineWidth(w float64) {
	s.lineWidth = w
	s.set |= AttrLineWidth
	s.version++
}

// LineWidth returns the local stroke width and whether it is set.
func (s *Style) LineWidth() (float64, bool) {
	return s.lineWidth, s.set&AttrLineWidth != 0
}

// SetDash sets the dash pattern as alternating on/off run lengths in device
// pixels. The pattern is copied. An empty pattern means a solid stroke.
func (s *Style) SetDash(pattern ...float64) {
	s.dash = append(s.dash[:0:0], pattern...)
	s.set |= AttrDash
	s.version++
}

// Dash returns the local dash pattern and whether it is set. The returned
// slice must not be mutated.
func (s *Style) Dash() ([]float64, bool) {
	return s.dash, s.set&AttrDash != 0
}

// SetFont sets the font used to measure and paint annotation text.
func (s *Style) SetFont(f Font) {
	s.font = f
	s.set |= AttrFont
	s.version++
}

// Font returns the local font and whether it is set.
func (s *Style) Font() (Font, bool) {
	return s.font, s.set&AttrFont != 0
}

// SetFill sets the interior fill pattern for closed outlines.
func (s *Style) SetFill(p FillPattern) {
	s.fill = p
	s.set |= AttrFill
	s.version++
}

// Fill returns the local fill pattern and whether it is set.
func (s *Style) Fill() (FillPattern, bool) {
	return s.fill, s.set&AttrFill != 0
}

// SetAntialias sets whether strokes are smoothed.
func (s *Style) SetAntialias(on bool) {
	s.antialias = on
	s.set |= AttrAntialias
	s.version++
}

// Antialias returns the local antialias flag and whether it is set.
func (s *Style) Antialias() (bool, bool) {
	return s.antialias, s.set&AttrAntialias != 0
}

// SetCap sets the stroke end-cap style.
func (s *Style) SetCap(c CapStyle) {
	s.capStyle = c
	s.set |= AttrCap
	s.version++
}

// Cap returns the local end-cap style and whether it is set.
func (s *Style) Cap() (CapStyle, bool) {
	return s.capStyle, s.set&AttrCap != 0
}

// StyleValues is a fully resolved attribute set: every field holds the
// effective value after walking an inheritance chain and falling back to the
// theme defaults. Resolution is total, so there is no "unset" here; an absent
// background is a color with zero alpha and an absent dash is nil.
type StyleValues struct {
	Foreground Color
	Background Color
	LineWidth  float64
	Dash       []float64
	Font       Font
	Fill       FillPattern
	Antialias  bool
	Cap        CapStyle
}

// HasBackground reports whether the resolved background is visible.
func (v StyleValues) HasBackground() bool {
	return v.Background.A > 0
}

// resolveChain computes effective values for a chain ordered nearest first
// (own style, then owner, then ancestors). Later entries only supply
// attributes the earlier ones leave unset; the theme covers the rest.
func resolveChain(chain []*Style) StyleValues {
	t := currentTheme()
	v := StyleValues{
		Foreground: t.Foreground,
		Background: t.Background,
		LineWidth:  t.LineWidth,
		Dash:       t.Dash,
		Font:       defaultFont(),
		Fill:       t.Fill,
		Antialias:  t.Antialias,
		Cap:        t.Cap,
	}
	for i := len(chain) - 1; i >= 0; i-- {
		s := chain[i]
		if s == nil {
			continue
		}
		if s.set&AttrForeground != 0 {
			v.Foreground = s.foreground
		}
		if s.set&AttrBackground != 0 {
			v.Background = s.background
		}
		if s.set&AttrLineWidth != 0 {
			v.LineWidth = s.lineWidth
		}
		if s.set&AttrDash != 0 {
			v.Dash = s.dash
		}
		if s.set&AttrFont != 0 {
			v.Font = s.font
		}
		if s.set&AttrFill != 0 {
			v.Fill = s.fill
		}
		if s.set&AttrAntialias != 0 {
			v.Antialias = s.antialias
		}
		if s.set&AttrCap != 0 {
			v.Cap = s.capStyle
		}
	}
	return v
}

// chainVersion folds the chain's style versions, its length and the theme
// generation into one value. Annotation size caches compare it to detect
// stale measurements after any style or theme mutation along the chain.
func chainVersion(chain []*Style) uint64 {
	sum := themeGeneration() + uint64(len(chain))<<32
	for _, s := range chain {
		if s != nil {
			sum += s.version
		}
	}
	return sum
}
