package easel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Stock themes ---

func TestDefaultTheme(t *testing.T) {
	want := &Theme{
		Foreground:   Color{A: 1},
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
	if diff := cmp.Diff(want, DefaultTheme()); diff != "" {
		t.Errorf("DefaultTheme mismatch (-want +got):\n%s", diff)
	}
}

func TestDarkTheme(t *testing.T) {
	want := DefaultTheme()
	want.Foreground = Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	want.Highlight = Color{R: 1, G: 0.84, B: 0, A: 1}
	if diff := cmp.Diff(want, DarkTheme()); diff != "" {
		t.Errorf("DarkTheme mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultThemeReturnsFreshCopy(t *testing.T) {
	a := DefaultTheme()
	b := DefaultTheme()
	if a == b {
		t.Fatal("DefaultTheme should return a fresh value each call")
	}
	a.LineWidth = 99
	if b.LineWidth == 99 {
		t.Error("mutating one copy should not affect another")
	}
}

// --- LoadTheme ---

func TestLoadTheme(t *testing.T) {
	src := []byte(`
foreground: "#FF0000"
background: "#00000080"
highlight: "#00FF00"
line_width: 2.5
dash: [4, 2]
fill: stripe
antialias: false
cap: round
label_margin: 3
label_padding: 0.5
zoom_duration: 1.5
`)
	got, err := LoadTheme(src)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	want := &Theme{
		Foreground:   Color{R: 1, A: 1},
		Background:   Color{A: 128.0 / 255.0},
		Highlight:    Color{G: 1, A: 1},
		LineWidth:    2.5,
		Dash:         []float64{4, 2},
		Fill:         FillStripe,
		Antialias:    false,
		Cap:          CapRound,
		LabelMargin:  3,
		LabelPadding: 0.5,
		ZoomDuration: 1.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadThemePartialKeepsDefaults(t *testing.T) {
	src := []byte(`
foreground: "#0000FF"
zoom_duration: 0
`)
	got, err := LoadTheme(src)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	want := DefaultTheme()
	want.Foreground = Color{B: 1, A: 1}
	want.ZoomDuration = 0
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadThemeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"invalid yaml", "{{nope"},
		{"bad color", `foreground: "#xyz"`},
		{"unknown fill", `fill: dotted`},
		{"unknown cap", `cap: fancy`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadTheme([]byte(tc.src)); err == nil {
				t.Errorf("LoadTheme(%q) should fail", tc.src)
			}
		})
	}
}

// --- ApplyTheme & generation ---

func TestApplyTheme(t *testing.T) {
	old := CurrentTheme()
	defer ApplyTheme(old)

	th := DarkTheme()
	ApplyTheme(th)
	if CurrentTheme() != th {
		t.Error("CurrentTheme should return the applied theme")
	}
}

func TestApplyThemeNilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil theme, got none")
		}
	}()
	ApplyTheme(nil)
}

func TestApplyThemeBumpsGeneration(t *testing.T) {
	old := CurrentTheme()
	defer ApplyTheme(old)

	before := themeGeneration()
	ApplyTheme(DefaultTheme())
	if themeGeneration() == before {
		t.Error("generation should change when a theme is applied")
	}
}

func TestSetDefaultFontBumpsGeneration(t *testing.T) {
	old := DefaultFont()
	defer SetDefaultFont(old)

	before := themeGeneration()
	SetDefaultFont(&fixedFont{runeW: 1, lh: 1})
	if themeGeneration() == before {
		t.Error("generation should change when the default font is replaced")
	}
}
