package pinchzoom

// touchTracker turns per-frame snapshots of the active touch list into touch
// lifecycle events, the way a browser does: a growing list fires a start
// event, a shrinking list fires an end event, and a same-sized list whose
// points moved fires a move event. Every event carries the full current list.
type touchTracker struct {
	prev []Point
}

// feed compares touches against the previous frame and dispatches to z.
func (tt *touchTracker) feed(z *Zoomer, container Rect, touches []Point) {
	e := TouchEvent{Touches: touches, Container: container}
	switch {
	case len(touches) > len(tt.prev):
		z.TouchStart(e)
	case len(touches) < len(tt.prev):
		z.TouchEnd(e)
	case len(touches) > 0 && moved(tt.prev, touches):
		z.TouchMove(e)
	}
	tt.prev = append(tt.prev[:0], touches...)
}

// active returns the number of touches seen in the last frame.
func (tt *touchTracker) active() int {
	return len(tt.prev)
}

func moved(prev, cur []Point) bool {
	for i := range cur {
		if !IsEqual(prev[i], cur[i]) {
			return true
		}
	}
	return false
}
