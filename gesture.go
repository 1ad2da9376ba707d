package pinchzoom

// GestureState classifies the touch sequence currently in progress.
type GestureState uint8

const (
	GestureUnknown GestureState = iota // no touch sequence, or one the classifier ignores
	GesturePinch                       // two touches at sequence start
	GesturePan                         // any other touch count at sequence start
)

func (g GestureState) String() string {
	switch g {
	case GesturePinch:
		return "pinch"
	case GesturePan:
		return "pan"
	default:
		return "unknown"
	}
}

// TouchEvent is one touch lifecycle event as delivered by the host: the
// active touches in absolute screen coordinates, ordered by arrival, and the
// container's bounding rectangle on screen.
type TouchEvent struct {
	Touches   []Point
	Container Rect
}

// Points returns the touches relative to the container origin.
func (e TouchEvent) Points() []Point {
	if len(e.Touches) == 0 {
		return nil
	}
	out := make([]Point, len(e.Touches))
	for i, p := range e.Touches {
		out[i] = NormalizePointInRect(p, e.Container)
	}
	return out
}

// TouchStart classifies a new touch sequence. Two touches start a pinch;
// any other count starts a pan on the first touch, which is also recorded as
// the auto-zoom target. An event with no touches is ignored.
func (z *Zoomer) TouchStart(e TouchEvent) {
	pts := e.Points()
	if len(pts) == 0 {
		return
	}
	z.animate = false

	if len(pts) == 2 {
		z.gesture = GesturePinch
		z.debugf("gesture %s", z.gesture)
		z.onPinchStart(pts[0], pts[1])
		z.emit(EventPinchStart, pts)
		return
	}

	z.lastTouch = pts[0]
	z.hasLastTouch = true
	z.gesture = GesturePan
	z.debugf("gesture %s", z.gesture)
	z.onPanStart(pts[0])
	z.emit(EventPanStart, pts)
}

// TouchMove routes a move to the handler of the active gesture. A move whose
// touch count does not match the active gesture is dropped; only a fresh
// TouchStart reclassifies.
func (z *Zoomer) TouchMove(e TouchEvent) {
	pts := e.Points()
	if len(pts) == 2 {
		if z.gesture == GesturePinch {
			z.onPinchMove(pts[0], pts[1])
			z.emit(EventPinchMove, pts)
		}
		return
	}
	if z.gesture == GesturePan && len(pts) > 0 {
		z.onPanMove(pts[0])
		z.emit(EventPanMove, pts)
	}
}

// TouchEnd finishes the active gesture, runs the bounds guard, and resets the
// classifier to GestureUnknown.
func (z *Zoomer) TouchEnd(TouchEvent) {
	z.animate = true
	switch z.gesture {
	case GesturePinch:
		z.onPinchEnd()
		z.emit(EventPinchEnd, nil)
	case GesturePan:
		z.onPanEnd()
		z.emit(EventPanEnd, nil)
	}
	z.gesture = GestureUnknown
}

// Cancel drops the active gesture without running the bounds guard. Hosts
// call it when the platform cancels a touch sequence and no end event will
// follow.
func (z *Zoomer) Cancel() {
	if z.gesture != GestureUnknown {
		z.debugf("gesture %s cancelled", z.gesture)
	}
	z.gesture = GestureUnknown
}
