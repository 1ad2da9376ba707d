// Package pinchzoom is a touch-driven pinch-to-zoom and pan engine for
// [Ebitengine].
//
// A [Zoomer] owns the viewport transform of a fixed-size container showing
// larger (or smaller) content. It classifies touch streams into pinch and
// pan gestures, keeps the zoom factor inside a configured range, and keeps
// the content covering the container (or centered in it when smaller).
//
// # Quick start
//
// The [View] wires a Zoomer to Ebitengine touch input and draws the content
// image through the current transform:
//
//	z := pinchzoom.NewZoomer(pinchzoom.Config{
//		MinZoomScale: 1,
//		MaxZoomScale: 4,
//		BoundSize:    pinchzoom.Size{Width: 320, Height: 480},
//		ContentSize:  pinchzoom.Size{Width: 1024, Height: 768},
//	})
//	view := pinchzoom.NewView(z, contentImage)
//
//	func (g *Game) Update() error        { return g.view.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.view.Draw(s) }
//
// # Headless use
//
// The Zoomer does not need a running game loop. Feed it DOM-style events
// directly with [Zoomer.TouchStart], [Zoomer.TouchMove] and
// [Zoomer.TouchEnd], and read [Zoomer.Transform] or subscribe with
// [Zoomer.OnTransform]. Transforms are reported in content space: the
// content is translated first, then scaled.
//
//	z.TouchStart(pinchzoom.TouchEvent{Touches: []pinchzoom.Point{{X: 40, Y: 50}, {X: 60, Y: 50}}})
//	z.TouchMove(pinchzoom.TouchEvent{Touches: []pinchzoom.Point{{X: 20, Y: 50}, {X: 80, Y: 50}}})
//	z.TouchEnd(pinchzoom.TouchEvent{})
//	fmt.Println(z.Transform()) // scale(1.4) translate(-14.286px, -14.286px) translateZ(0)
//
// # Auto-zoom
//
// [Zoomer.AutoZoomToLastTouchPoint] implements double-tap zoom: it doubles
// the zoom around the last single-touch point. The change is flagged as
// animated so a [Transition] eases toward it.
//
// # Gesture scripts
//
// [ParseGestureScript] reads YAML or JSON gesture scripts. [Replay] runs one
// against a Zoomer without a display; [ScriptRunner] plays one through a
// View frame by frame, injecting touches the way hardware input arrives.
// The cmd/pinchzoom tool replays scripts from the command line.
//
// # ECS integration
//
// Gesture events can be routed into an ECS through the [EventStore]
// interface. The ecs submodule provides a Donburi adapter.
//
// [Ebitengine]: https://ebitengine.org
package pinchzoom
