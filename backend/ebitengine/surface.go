// Package ebitengine is the Ebitengine backend for easel: a Surface
// implementation, a windowed game loop via Run, TrueType fonts, and the
// display-op painter.
package ebitengine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/easelgraph/easel"
)

// Surface is the ebitengine implementation of easel.Surface: a window-sized
// pixel region repainted every frame.
type Surface struct {
	width  int
	height int
}

// NewSurface creates a surface with the given initial size in pixels. Once
// Run is driving the loop the size follows the window.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// ViewportBounds implements easel.Surface.
func (s *Surface) ViewportBounds() easel.Rect {
	return easel.Rect{Width: float64(s.width), Height: float64(s.height)}
}

// RequestRepaint implements easel.Surface. Ebitengine repaints every frame
// already, so this is a no-op — which also makes it safe from any
// goroutine, as Scene.Invoke requires.
func (s *Surface) RequestRepaint() {}

// Config configures Run's window and loop.
type Config struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// ClearColor is the frame background. The zero value paints black.
	ClearColor easel.Color
}

// Run opens a window and drives scene until the window closes: each tick
// advances the scene, polls the mouse into DispatchPointer, and paints the
// rendered ops. The scene must have been created on an ebitengine Surface.
func Run(scene *easel.Scene, cfg Config) error {
	surface, ok := scene.Surface().(*Surface)
	if !ok {
		return fmt.Errorf("run: scene surface is not an ebitengine Surface")
	}
	if cfg.Width <= 0 {
		cfg.Width = surface.width
	}
	if cfg.Height <= 0 {
		cfg.Height = surface.height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{scene: scene, surface: surface, cfg: cfg})
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene   *easel.Scene
	surface *Surface
	cfg     Config
}

func (g *game) Update() error {
	g.scene.Update(1.0 / float64(ebiten.TPS()))

	x, y := ebiten.CursorPosition()
	pressed := false
	button := easel.ButtonNone
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed = true
		button = easel.Button1
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed = true
		button = easel.Button2
	}
	g.scene.DispatchPointer(float64(x), float64(y), pressed, button, readModifiers())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(toRGBA(g.cfg.ClearColor))
	}
	Paint(screen, g.scene.Render())
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.width = outsideWidth
	g.surface.height = outsideHeight
	return outsideWidth, outsideHeight
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() easel.KeyModifiers {
	var mods easel.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= easel.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= easel.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= easel.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= easel.ModMeta
	}
	return mods
}

// toRGBA converts an easel color to 8-bit RGBA.
func toRGBA(c easel.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}
