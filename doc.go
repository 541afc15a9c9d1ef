// Package easel is a retained-mode 2D scene-graph engine for structured
// graphics such as plots, diagrams, maps and instrument panels: pictures
// built from polylines, markers and labels rather than sprites.
//
// Easel keeps your picture as a tree of [Object]s, each holding [Segment]
// polyline geometry in world coordinates. A [Transformer] maps the world
// extent onto the device viewport, [Style] attributes inherit down the tree
// with theme defaults at the root, and [Annotation] labels lay themselves
// out each frame so they never overlap. Rendering is pull-based: objects
// redraw only when marked dirty, and a frame is a flat list of device-space
// [DisplayOp]s for a backend to paint.
//
// # Quick start
//
// The ebitengine backend creates a window and drives the loop for you:
//
//	scene := easel.NewScene(surface)
//	scene.SetWorldExtentRect(0, 0, 100, 100)
//	// ... add objects ...
//	ebitengine.Run(scene, ebitengine.Config{
//		Title: "My Plot", Width: 800, Height: 600,
//	})
//
// For full control, drive the scene yourself: call [Scene.Update] once per
// tick, feed pointer samples through [Scene.DispatchPointer], and paint the
// ops returned by [Scene.Render].
//
// # Scene graph
//
// Content hangs off [Scene.Root]. Children paint after their parents, back
// to front, so z-order is child order. Geometry that should track the model
// lazily goes through a [Drawer]:
//
//	curve := easel.NewObject("curve")
//	curve.Drawer = easel.DrawFunc(func(o *easel.Object, tr *easel.Transformer) {
//		o.RemoveSegments()
//		o.AddSegment(easel.NewSegment(model.Points()...))
//	})
//	scene.Root().AddChild(curve)
//	// later, after the model changes:
//	curve.Redraw()
//
// [Scene.Overlay] is a second tree painted on top, authored in device
// pixels and excluded from picking; interaction feedback lives there.
//
// # Interactions
//
// One [Interaction] at a time consumes the pointer event stream.
// [ZoomInteraction], [SelectInteraction] and [PanInteraction] cover the
// common gestures; custom handlers implement the two-method interface and
// use [Scene.FindObjectAt] and friends for picking. Synthetic input via
// [Scene.InjectClick] and a JSON [Script] drive all of it headlessly.
//
// Background goroutines never touch the tree directly; they post mutations
// with [Scene.Invoke].
package easel
