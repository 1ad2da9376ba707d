package pinchzoom

import (
	"io"
	"os"
)

// pinchSession is captured when a pinch starts and read on every pinch move.
type pinchSession struct {
	startZoomFactor    float64
	startMidpoint      Point
	startTranslate     Point
	startTouchDistance float64
}

// panSession is captured when a pan starts and read on every pan move.
type panSession struct {
	startPoint     Point
	startTranslate Point
}

// TransformChange is delivered to OnTransform callbacks after every accepted
// transform mutation.
type TransformChange struct {
	Transform Transform
	// Animated is true when the presentation layer should ease into the new
	// transform instead of jumping: after a gesture ends and on auto-zoom.
	Animated bool
}

type transformHandler struct {
	id uint32
	fn func(TransformChange)
}

type handlerRegistry struct {
	transform []transformHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.transform
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = transformHandler{}
			h.reg.transform = s[:len(s)-1]
			return
		}
	}
}

// Zoomer owns the state of one pinch-to-zoom viewport: the current
// transform, the gesture classifier, and the pinch and pan sessions.
//
// A Zoomer is not safe for concurrent use. Touch events must be delivered
// serially, the way a UI event loop delivers them.
type Zoomer struct {
	cfg  Config
	geom ViewportGeometry

	transform Transform
	gesture   GestureState
	animate   bool

	pinch pinchSession
	pan   panSession

	lastTouch    Point
	hasLastTouch bool

	handlers handlerRegistry
	store    EventStore

	debugOut io.Writer
}

// Option configures a Zoomer at construction time.
type Option func(*Zoomer)

// WithGeometry makes the zoomer query g for container and content sizes
// instead of reading them from its Config.
func WithGeometry(g ViewportGeometry) Option {
	return func(z *Zoomer) { z.geom = g }
}

// WithEventStore routes gesture events to store.
func WithEventStore(store EventStore) Option {
	return func(z *Zoomer) { z.store = store }
}

// NewZoomer creates a Zoomer at zoom 1 with no translation.
func NewZoomer(cfg Config, opts ...Option) *Zoomer {
	z := &Zoomer{
		cfg:       cfg,
		transform: identityTransform,
		gesture:   GestureUnknown,
		pinch:     pinchSession{startZoomFactor: 1},
		debugOut:  os.Stderr,
	}
	z.geom = configGeometry{z: z}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// Transform returns a copy of the current transform.
func (z *Zoomer) Transform() Transform {
	return z.transform
}

// Gesture returns the active gesture classification.
func (z *Zoomer) Gesture() GestureState {
	return z.gesture
}

// Config returns the current configuration.
func (z *Zoomer) Config() Config {
	return z.cfg
}

// Geometry returns the geometry provider the engine queries.
func (z *Zoomer) Geometry() ViewportGeometry {
	return z.geom
}

// LastTouchPoint returns the container-relative point of the most recent
// single-touch start. ok is false until one has been recorded.
func (z *Zoomer) LastTouchPoint() (p Point, ok bool) {
	return z.lastTouch, z.hasLastTouch
}

// SetEventStore routes gesture events to store. Pass nil to stop emitting.
func (z *Zoomer) SetEventStore(store EventStore) {
	z.store = store
}

// SetDebugOutput redirects debug logging. Defaults to os.Stderr.
func (z *Zoomer) SetDebugOutput(w io.Writer) {
	z.debugOut = w
}

// OnTransform registers a callback fired after every accepted transform change.
func (z *Zoomer) OnTransform(fn func(TransformChange)) CallbackHandle {
	z.handlers.nextID++
	id := z.handlers.nextID
	z.handlers.transform = append(z.handlers.transform, transformHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &z.handlers}
}

// SetTransform is the sole mutator of the transform. Translate components are
// rounded to three decimal places. A zoom factor below 80% of MinZoomScale is
// ignored and leaves the transform untouched.
func (z *Zoomer) SetTransform(t Transform) {
	if t.ZoomFactor < z.cfg.MinZoomScale*softFloorRatio {
		z.debugf("rejected zoom %g below soft floor %g", t.ZoomFactor, z.cfg.MinZoomScale*softFloorRatio)
		return
	}
	z.transform = Transform{
		ZoomFactor: t.ZoomFactor,
		Translate: Point{
			X: roundTranslate(t.Translate.X),
			Y: roundTranslate(t.Translate.Y),
		},
	}
	z.debugf("transform %s", z.transform)

	change := TransformChange{Transform: z.transform, Animated: z.animate}
	for _, h := range z.handlers.transform {
		h.fn(change)
	}
}

// panContentArea replaces the translation and keeps the zoom factor.
func (z *Zoomer) panContentArea(translate Point) {
	z.SetTransform(Transform{ZoomFactor: z.transform.ZoomFactor, Translate: translate})
}
