package easel

import (
	"fmt"
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultOpCap = 1024

// Scene is the top-level object that owns the object tree, the Transformer,
// interaction state, and per-frame buffers. All of it belongs to a single
// logical thread: the surface's update/paint callbacks and every tree
// mutation must run there. The one cross-thread entry point is Invoke.
type Scene struct {
	surface Surface
	tr      *Transformer

	root    *Object
	overlay *Object

	debug bool

	// Cross-thread work queue, drained at the start of Update.
	invokeMu    sync.Mutex
	invokeQueue []func()

	// Interaction state
	interaction  Interaction
	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	script       *Script

	// Extent animation
	extentAnim *extentAnim

	// Frame state
	lastViewport Rect
	annotValid   bool
	layoutGen    uint64
	themeGenSeen uint64
	ops          []DisplayOp
	placedLabels []*Annotation
	labelRects   []Rect
}

// NewScene creates a scene rendered into the given surface, with an empty
// root and an empty device-relative overlay. Panics if surface is nil.
func NewScene(surface Surface) *Scene {
	if surface == nil {
		panic("easel: NewScene requires a surface")
	}
	vb := surface.ViewportBounds()
	s := &Scene{
		surface:      surface,
		tr:           NewTransformer(vb),
		lastViewport: vb,
		dragDeadZone: defaultDragDeadZone,
		ops:          make([]DisplayOp, 0, defaultOpCap),
	}
	s.root = NewObject("root")
	s.root.scene = s
	s.overlay = NewObject("overlay")
	s.overlay.DeviceRelative = true
	s.overlay.Pickable = false
	s.overlay.scene = s
	return s
}

// Root returns the scene's root object. Content hangs off it.
func (s *Scene) Root() *Object {
	return s.root
}

// Overlay returns the scene's overlay object: a device-relative layer
// painted after all root content, excluded from hit-testing. Interaction
// feedback such as rubber bands lives here.
func (s *Scene) Overlay() *Object {
	return s.overlay
}

// Transformer returns the scene's world-to-device mapping.
func (s *Scene) Transformer() *Transformer {
	return s.tr
}

// Surface returns the surface the scene renders into.
func (s *Scene) Surface() Surface {
	return s.surface
}

// SetWorldExtent replaces the world extent with the parallelogram spanned by
// origin and the two axis endpoints, cancelling any running extent
// animation. Degenerate extents are rejected and the previous mapping kept.
func (s *Scene) SetWorldExtent(origin, xEnd, yEnd Point) error {
	if err := s.tr.SetWorldExtent(origin, xEnd, yEnd); err != nil {
		return err
	}
	s.extentAnim = nil
	s.requestRepaint()
	return nil
}

// SetWorldExtentRect is the axis-aligned shorthand: (x0, y0) maps to the
// viewport's bottom-left and (x1, y1) to its top-right.
func (s *Scene) SetWorldExtentRect(x0, y0, x1, y1 float64) error {
	e := AxisAlignedExtent(x0, y0, x1, y1)
	return s.SetWorldExtent(e.Origin, e.XEnd, e.YEnd)
}

// Invoke posts fn to run on the scene thread at the start of the next
// Update. It is the only scene-graph entry point that may be called from
// another goroutine; background work (timers, network readers) mutates the
// tree by posting here instead of calling in directly.
func (s *Scene) Invoke(fn func()) {
	if fn == nil {
		panic("easel: Invoke requires a function")
	}
	s.invokeMu.Lock()
	s.invokeQueue = append(s.invokeQueue, fn)
	s.invokeMu.Unlock()
	s.surface.RequestRepaint()
}

// drainInvokes runs the queued cross-thread work. The queue is swapped out
// under the lock and run outside it, so queued functions may Invoke again.
func (s *Scene) drainInvokes() {
	s.invokeMu.Lock()
	queue := s.invokeQueue
	s.invokeQueue = nil
	s.invokeMu.Unlock()
	for _, fn := range queue {
		fn()
	}
}

// Update advances the scene by dt seconds: queued cross-thread work runs,
// the attached script injects its next action, and the extent animation
// steps. The surface calls this once per tick before Render.
func (s *Scene) Update(dt float64) {
	s.drainInvokes()
	if s.script != nil {
		s.script.step(s)
	}
	s.stepExtentAnim(float32(dt))
}

// Render produces the frame's display ops: dirty objects redraw, annotation
// layout reruns if anything invalidated it, and the op list is rebuilt. The
// returned slice and the slices inside it are valid until the next call.
func (s *Scene) Render() []DisplayOp {
	s.syncViewport()

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.drawPass(s.root)
	s.drawPass(s.overlay)

	if s.debug {
		stats.drawTime = time.Since(t0)
		t0 = time.Now()
	}

	if !s.annotValid || s.layoutGen != s.tr.generation() || s.themeGenSeen != themeGeneration() {
		s.layoutAnnotations()
		s.annotValid = true
		s.layoutGen = s.tr.generation()
		s.themeGenSeen = themeGeneration()
	}

	if s.debug {
		stats.layoutTime = time.Since(t0)
		stats.labelsPlaced = len(s.placedLabels)
		stats.labelsSuppressed = s.countSuppressed()
		t0 = time.Now()
	}

	if s.debug {
		s.emitOps(&stats)
		stats.emitTime = time.Since(t0)
		stats.opCount = len(s.ops)
		s.debugLog(stats)
	} else {
		s.emitOps(nil)
	}

	return s.ops
}

// syncViewport picks up surface resizes: the Transformer's viewport moves
// per its scale mode and everything re-renders against the new mapping.
func (s *Scene) syncViewport() {
	vb := s.surface.ViewportBounds()
	if vb == s.lastViewport {
		return
	}
	s.lastViewport = vb
	s.tr.SetViewport(vb)
	markSubtreeGeometryDirty(s.root)
	markSubtreeGeometryDirty(s.overlay)
	s.annotValid = false
}

// drawPass gives every dirty object one Draw call, pre-order. Draw rebuilds
// the object's segments; the engine never calls it for a clean object.
func (s *Scene) drawPass(o *Object) {
	if o.geometryDirty {
		if o.Drawer != nil {
			o.Drawer.Draw(o, s.tr)
		}
		o.geometryDirty = false
	}
	for _, child := range o.children {
		s.drawPass(child)
	}
}

// countSuppressed tallies annotations the layout pass gave up on, for the
// debug log.
func (s *Scene) countSuppressed() int {
	n := 0
	var walk func(o *Object)
	walk = func(o *Object) {
		for _, seg := range o.segments {
			if seg.annotation != nil && seg.annotation.suppressed {
				n++
			}
		}
		for _, child := range o.children {
			walk(child)
		}
	}
	walk(s.root)
	walk(s.overlay)
	return n
}

// noteStructureChanged records that retained state changed: annotation
// layout must rerun and a repaint is due.
func (s *Scene) noteStructureChanged() {
	s.annotValid = false
	s.surface.RequestRepaint()
}

// requestRepaint forwards to the surface.
func (s *Scene) requestRepaint() {
	s.surface.RequestRepaint()
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are printed and per-frame timing stats are logged to
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that object
// operations (which may run while detached from any Scene) can check it
// cheaply. Only valid with a single Scene; multiple Scenes with differing
// debug modes will reflect whichever called SetDebugMode last.
var globalDebug bool

// --- Extent animation ---

// extentAnim tweens the six extent coordinates toward a zoom target.
type extentAnim struct {
	tweens [6]*gween.Tween
	done   [6]bool
}

// ZoomToExtent animates the world extent to e over duration seconds using
// easeFn (ease.OutQuad when nil). A duration of zero or less snaps
// immediately. Starting a new zoom replaces any animation in flight;
// degenerate extents are rejected.
func (s *Scene) ZoomToExtent(e Extent, duration float64, easeFn ease.TweenFunc) error {
	if e.degenerate() {
		return fmt.Errorf("easel: degenerate world extent %+v", e)
	}
	if duration <= 0 {
		return s.SetWorldExtent(e.Origin, e.XEnd, e.YEnd)
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	cur := s.tr.WorldExtent()
	from := [6]float64{cur.Origin.X, cur.Origin.Y, cur.XEnd.X, cur.XEnd.Y, cur.YEnd.X, cur.YEnd.Y}
	to := [6]float64{e.Origin.X, e.Origin.Y, e.XEnd.X, e.XEnd.Y, e.YEnd.X, e.YEnd.Y}
	anim := &extentAnim{}
	for i := range anim.tweens {
		anim.tweens[i] = gween.New(float32(from[i]), float32(to[i]), float32(duration), easeFn)
	}
	s.extentAnim = anim
	s.requestRepaint()
	return nil
}

// stepExtentAnim advances the zoom tweens by dt seconds. Intermediate
// extents that interpolate through a degenerate shape are skipped for that
// step rather than corrupting the mapping.
func (s *Scene) stepExtentAnim(dt float32) {
	a := s.extentAnim
	if a == nil {
		return
	}
	cur := s.tr.WorldExtent()
	vals := [6]float64{cur.Origin.X, cur.Origin.Y, cur.XEnd.X, cur.XEnd.Y, cur.YEnd.X, cur.YEnd.Y}
	allDone := true
	for i, tw := range a.tweens {
		if a.done[i] {
			continue
		}
		v, done := tw.Update(dt)
		vals[i] = float64(v)
		a.done[i] = done
		if !done {
			allDone = false
		}
	}
	e := Extent{
		Origin: Point{X: vals[0], Y: vals[1]},
		XEnd:   Point{X: vals[2], Y: vals[3]},
		YEnd:   Point{X: vals[4], Y: vals[5]},
	}
	if !e.degenerate() {
		_ = s.tr.SetWorldExtent(e.Origin, e.XEnd, e.YEnd)
	}
	if allDone {
		s.extentAnim = nil
	}
	s.requestRepaint()
}

// zoomAnimating reports whether an extent animation is in flight.
func (s *Scene) zoomAnimating() bool {
	return s.extentAnim != nil
}
