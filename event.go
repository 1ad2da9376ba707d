package pinchzoom

// GestureEventType identifies a kind of gesture event.
type GestureEventType uint8

const (
	EventPinchStart  GestureEventType = iota // two touches began a pinch
	EventPinchMove                           // a pinch changed the zoom factor
	EventPinchEnd                            // a pinch ended and the bounds guard ran
	EventPanStart                            // a single touch began a pan
	EventPanMove                             // a pan changed the translation
	EventPanEnd                              // a pan ended and the bounds guard ran
	EventAutoZoom                            // auto-zoom jumped to a point
	EventReconfigure                         // a config change re-validated the view
)

var gestureEventNames = [...]string{
	EventPinchStart:  "pinch-start",
	EventPinchMove:   "pinch-move",
	EventPinchEnd:    "pinch-end",
	EventPanStart:    "pan-start",
	EventPanMove:     "pan-move",
	EventPanEnd:      "pan-end",
	EventAutoZoom:    "auto-zoom",
	EventReconfigure: "reconfigure",
}

func (t GestureEventType) String() string {
	if int(t) < len(gestureEventNames) {
		return gestureEventNames[t]
	}
	return "unknown"
}

// GestureEvent reports a gesture step together with the transform it left
// behind.
type GestureEvent struct {
	Type       GestureEventType
	Gesture    GestureState
	Points     []Point // container-relative touch points, empty for end events
	ZoomFactor float64
	TranslateX float64
	TranslateY float64
}

// EventStore receives gesture events. Implement it to bridge a Zoomer into an
// ECS or any other event bus.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// emit publishes a gesture event if an event store is attached.
func (z *Zoomer) emit(typ GestureEventType, points []Point) {
	if z.store == nil {
		return
	}
	t := z.transform
	z.store.EmitEvent(GestureEvent{
		Type:       typ,
		Gesture:    z.gesture,
		Points:     points,
		ZoomFactor: t.ZoomFactor,
		TranslateX: t.Translate.X,
		TranslateY: t.Translate.Y,
	})
}
