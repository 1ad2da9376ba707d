package pinchzoom

import "testing"

func TestViewInjectPinch(t *testing.T) {
	z := NewZoomer(DefaultConfig())
	v := NewView(z, nil)
	v.SetBounds(Rect{Origin: Point{X: 50, Y: 50}, Size: Size{Width: 100, Height: 100}})

	v.InjectPinch(Point{X: 100, Y: 100}, 50, 150, 4)
	if v.PendingInjections() != 4 {
		t.Fatalf("PendingInjections = %d, want 4", v.PendingInjections())
	}

	v.Update() // two touches: pinch start
	if z.Gesture() != GesturePinch {
		t.Fatalf("gesture = %v, want pinch", z.Gesture())
	}
	v.Update()
	v.Update()
	if got := z.Transform().ZoomFactor; got != 2 {
		t.Errorf("zoom after pinch moves = %v, want 2", got)
	}
	v.Update() // release
	if z.Gesture() != GestureUnknown {
		t.Errorf("gesture after release = %v, want unknown", z.Gesture())
	}

	want := Transform{ZoomFactor: 2, Translate: Point{X: -25, Y: -25}}
	if z.Transform() != want {
		t.Errorf("transform = %+v, want %+v", z.Transform(), want)
	}
	if v.Shown() != want {
		t.Errorf("shown = %+v, want %+v", v.Shown(), want)
	}
}

func TestViewPanEndAnimates(t *testing.T) {
	z := NewZoomer(DefaultConfig())
	v := NewView(z, nil)

	v.InjectPan(Point{X: 60, Y: 60}, Point{X: 100, Y: 60}, 3)
	v.Update() // start
	v.Update() // move
	if got := v.Shown().Translate.X; got != 40 {
		t.Fatalf("shown translate during pan = %v, want 40", got)
	}
	v.Update() // release: guard pulls translate back to 0

	if z.Transform().Translate != (Point{}) {
		t.Fatalf("translate after pan end = %v, want (0,0)", z.Transform().Translate)
	}
	if !v.Transition().Animating() {
		t.Fatal("guard correction should animate")
	}
	if x := v.Shown().Translate.X; x <= 0 || x >= 40 {
		t.Errorf("shown translate mid-animation = %v, want between 0 and 40", x)
	}

	v.Transition().Update(DefaultTransitionDuration)
	if v.Shown() != z.Transform() {
		t.Errorf("shown = %+v after animation, want %+v", v.Shown(), z.Transform())
	}
}

func TestViewTouchesAreContainerRelative(t *testing.T) {
	z := NewZoomer(DefaultConfig())
	v := NewView(z, nil)
	v.Bounds.Origin = Point{X: 200, Y: 300}

	v.processFrame([]Point{{X: 230, Y: 340}})
	if p, ok := z.LastTouchPoint(); !ok || p != (Point{X: 30, Y: 40}) {
		t.Errorf("LastTouchPoint = %v, %v; want (30,40)", p, ok)
	}
}

func TestViewSetBoundsReconfigures(t *testing.T) {
	cfg := testConfig(Size{Width: 100, Height: 100}, Size{Width: 100, Height: 100})
	z := NewZoomer(cfg)
	v := NewView(z, nil)

	v.SetBounds(Rect{Size: Size{Width: 100, Height: 300}})
	if z.Config().BoundSize.Height != 300 {
		t.Fatalf("config bound height = %v, want 300", z.Config().BoundSize.Height)
	}
	if got := z.Transform().Translate; got != (Point{X: 0, Y: 100}) {
		t.Errorf("Translate = %v, want (0,100)", got)
	}
}

func TestViewClose(t *testing.T) {
	z := NewZoomer(DefaultConfig())
	v := NewView(z, nil)
	v.Close()
	z.SetTransform(Transform{ZoomFactor: 3})
	if v.Shown() != identityTransform {
		t.Errorf("closed view followed zoomer to %+v", v.Shown())
	}
}

func TestTrackerDispatch(t *testing.T) {
	z := NewZoomer(DefaultConfig())
	store := &recordingStore{}
	z.SetEventStore(store)
	var tt touchTracker
	container := Rect{Size: Size{Width: 100, Height: 100}}

	tt.feed(z, container, []Point{{X: 10, Y: 10}})                 // start: pan
	tt.feed(z, container, []Point{{X: 10, Y: 10}})                 // unchanged: nothing
	tt.feed(z, container, []Point{{X: 20, Y: 10}})                 // move
	tt.feed(z, container, []Point{{X: 20, Y: 10}, {X: 80, Y: 80}}) // second finger: pinch start
	tt.feed(z, container, []Point{{X: 80, Y: 80}})                 // one lifted: end
	tt.feed(z, container, []Point{{X: 90, Y: 90}})                 // move in unknown state: dropped
	tt.feed(z, container, nil)                                     // end

	want := []GestureEventType{EventPanStart, EventPanMove, EventPinchStart, EventPinchEnd}
	if len(store.events) != len(want) {
		t.Fatalf("events = %v, want %v", eventTypes(store.events), want)
	}
	for i := range want {
		if store.events[i].Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, store.events[i].Type, want[i])
		}
	}
	if tt.active() != 0 {
		t.Errorf("active = %d, want 0", tt.active())
	}
}

func eventTypes(events []GestureEvent) []GestureEventType {
	out := make([]GestureEventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestDebugOverlayText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClassName = "seating-plan"
	z := NewZoomer(cfg)
	z.SetTransform(Transform{ZoomFactor: 2, Translate: Point{X: -1.5, Y: 3}})

	got := debugOverlayText(z, identityTransform)
	want := "zoom: 2.0000 (shown 1.0000)\ntranslate: -1.500, 3.000\ngesture: unknown\nclass: seating-plan"
	if got != want {
		t.Errorf("overlay =\n%s\nwant\n%s", got, want)
	}
}
