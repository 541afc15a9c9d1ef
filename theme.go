package easel

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme supplies the terminal defaults for style resolution: any attribute
// left unset along an inheritance chain resolves to the value here. One theme
// is active engine-wide at a time; swap it with ApplyTheme.
type Theme struct {
	Foreground   Color       `yaml:"foreground"`
	Background   Color       `yaml:"background"`
	Highlight    Color       `yaml:"highlight"`
	LineWidth    float64     `yaml:"line_width"`
	Dash         []float64   `yaml:"dash"`
	Fill         FillPattern `yaml:"fill"`
	Antialias    bool        `yaml:"antialias"`
	Cap          CapStyle    `yaml:"cap"`
	LabelMargin  float64     `yaml:"label_margin"`
	LabelPadding float64     `yaml:"label_padding"`
	ZoomDuration float64     `yaml:"zoom_duration"`
}

// DefaultTheme returns the stock light theme: black strokes, no label
// background, quarter line-height padding between label lines.
func DefaultTheme() *Theme {
	return &Theme{
		Foreground:   ColorBlack,
		Background:   Color{},
		Highlight:    Color{R: 1, G: 0.3, B: 0, A: 1},
		LineWidth:    1,
		Fill:         FillNone,
		Antialias:    true,
		Cap:          CapButt,
		LabelMargin:  2,
		LabelPadding: 0.25,
		ZoomDuration: 0.3,
	}
}

// DarkTheme returns a dark variant of the default theme.
func DarkTheme() *Theme {
	t := DefaultTheme()
	t.Foreground = Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	t.Highlight = Color{R: 1, G: 0.84, B: 0, A: 1}
	return t
}

// LoadTheme parses a YAML theme document. Keys that are omitted keep their
// DefaultTheme values, so a theme file only needs to state its overrides.
// Colors are hex strings ("#RGB", "#RRGGBB" or "#RRGGBBAA"); fill is one of
// none, solid, stripe, crosshatch; cap is one of butt, round, square.
func LoadTheme(data []byte) (*Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	return t, nil
}

var (
	activeTheme = DefaultTheme()
	themeGen    uint64
	stdFont     Font
)

// ApplyTheme makes t the active theme for all subsequent style resolution.
// Annotation size caches notice the change and re-measure lazily.
func ApplyTheme(t *Theme) {
	if t == nil {
		panic("easel: ApplyTheme called with nil theme")
	}
	activeTheme = t
	themeGen++
}

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme {
	return activeTheme
}

// SetDefaultFont sets the engine-wide fallback font used when no style along
// an inheritance chain sets AttrFont. Text cannot be measured until a font is
// reachable, so most programs call this once at startup.
func SetDefaultFont(f Font) {
	stdFont = f
	themeGen++
}

// DefaultFont returns the engine-wide fallback font, or nil if none is set.
func DefaultFont() Font {
	return stdFont
}

func currentTheme() *Theme { return activeTheme }

func themeGeneration() uint64 { return themeGen }

func defaultFont() Font { return stdFont }

// UnmarshalYAML decodes a Color from a hex string such as "#20A040".
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalYAML decodes a FillPattern from its lowercase name.
func (p *FillPattern) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "none", "":
		*p = FillNone
	case "solid":
		*p = FillSolid
	case "stripe":
		*p = FillStripe
	case "crosshatch":
		*p = FillCrosshatch
	default:
		return fmt.Errorf("unknown fill pattern %q", s)
	}
	return nil
}

// UnmarshalYAML decodes a CapStyle from its lowercase name.
func (cs *CapStyle) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "butt", "":
		*cs = CapButt
	case "round":
		*cs = CapRound
	case "square":
		*cs = CapSquare
	default:
		return fmt.Errorf("unknown cap style %q", s)
	}
	return nil
}
