package pinchzoom

import "math"

// InjectTouches queues one frame whose active touches are points, given in
// screen coordinates. Consecutive frames are diffed like hardware input, so a
// frame with more touches than the last starts a gesture, fewer ends it, and
// the same count with new positions moves it.
func (v *View) InjectTouches(points ...Point) {
	frame := make([]Point, len(points))
	copy(frame, points)
	v.injectQueue = append(v.injectQueue, frame)
}

// InjectRelease queues a frame with no touches, ending any injected gesture.
func (v *View) InjectRelease() {
	v.injectQueue = append(v.injectQueue, nil)
}

// InjectTap queues a single touch at p followed by a release. Consumes two frames.
func (v *View) InjectTap(p Point) {
	v.injectQueue = append(v.injectQueue, tapFrames(p)...)
}

// InjectPan queues a one-finger drag from `from` to `to` with frames-2
// interpolated moves, then a release. Minimum frames is 3 (press, one move,
// release).
func (v *View) InjectPan(from, to Point, frames int) {
	v.injectQueue = append(v.injectQueue, panFrames(from, to, frames)...)
}

// InjectPinch queues a two-finger pinch centered on center whose finger
// distance goes from fromDist to toDist along the horizontal axis, then a
// release. Minimum frames is 3.
func (v *View) InjectPinch(center Point, fromDist, toDist float64, frames int) {
	v.injectQueue = append(v.injectQueue, pinchFrames(center, fromDist, toDist, frames)...)
}

// PendingInjections returns the number of queued frames.
func (v *View) PendingInjections() int {
	return len(v.injectQueue)
}

func tapFrames(p Point) [][]Point {
	return [][]Point{{p}, nil}
}

func panFrames(from, to Point, frames int) [][]Point {
	if frames < 3 {
		frames = 3
	}
	out := make([][]Point, 0, frames)
	out = append(out, []Point{from})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, []Point{lerpPoint(from, to, t)})
	}
	return append(out, nil)
}

func pinchFrames(center Point, fromDist, toDist float64, frames int) [][]Point {
	if frames < 3 {
		frames = 3
	}
	out := make([][]Point, 0, frames)
	out = append(out, pinchPair(center, fromDist))
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, pinchPair(center, fromDist+(toDist-fromDist)*t))
	}
	return append(out, nil)
}

// pinchPair places two touches dist apart on a horizontal line through center.
func pinchPair(center Point, dist float64) []Point {
	half := math.Abs(dist) / 2
	return []Point{
		{X: center.X - half, Y: center.Y},
		{X: center.X + half, Y: center.Y},
	}
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
