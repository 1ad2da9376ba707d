package pinchzoom

const (
	// pinchSensitivity converts touch distance change in pixels to zoom factor change.
	pinchSensitivity = 0.01
	// softFloorRatio of MinZoomScale is the lowest zoom SetTransform accepts.
	softFloorRatio = 0.8
	// AutoZoomFactor is the zoom factor auto-zoom jumps to.
	AutoZoomFactor = 2.0
)

// --- Pinch ---

func (z *Zoomer) onPinchStart(p1, p2 Point) {
	z.pinch = pinchSession{
		startZoomFactor:    z.transform.ZoomFactor,
		startMidpoint:      Midpoint(p1, p2),
		startTranslate:     z.transform.Translate,
		startTouchDistance: Distance(p1, p2),
	}
}

func (z *Zoomer) onPinchMove(p1, p2 Point) {
	delta := Distance(p1, p2) - z.pinch.startTouchDistance
	z.ZoomContentArea(z.pinch.startZoomFactor + delta*pinchSensitivity)
}

func (z *Zoomer) onPinchEnd() {
	z.GuardScale()
	z.GuardTranslate()
}

// ZoomContentArea scales the content to zoomFactor relative to the zoom and
// translation captured at the last pinch start, shifting the translation so
// the container center stays fixed.
//
// The anchor is the container center, not the pinch midpoint. The midpoint is
// captured in the pinch session but does not take part in the computation.
func (z *Zoomer) ZoomContentArea(zoomFactor float64) {
	prevZoomFactor := z.pinch.startZoomFactor
	bound := z.geom.BoundSize()

	centerOriginal := bound.Scale(prevZoomFactor).Half()
	centerScale := bound.Scale(zoomFactor).Half()

	deltaTranslate := Scale(Offset(centerOriginal, centerScale), 1/(zoomFactor*prevZoomFactor))
	accumulated := Sum(deltaTranslate, z.pinch.startTranslate)

	z.SetTransform(Transform{ZoomFactor: truncRound(zoomFactor), Translate: accumulated})
}

// --- Pan ---

func (z *Zoomer) onPanStart(p Point) {
	z.pan = panSession{startPoint: p, startTranslate: z.transform.Translate}
}

// onPanMove translates by the drag offset scaled into content units. Bounds
// are not enforced until the pan ends.
func (z *Zoomer) onPanMove(p Point) {
	dragOffset := Offset(p, z.pan.startPoint)
	adjusted := Scale(dragOffset, 1/z.transform.ZoomFactor)
	z.panContentArea(Sum(adjusted, z.pan.startTranslate))
}

func (z *Zoomer) onPanEnd() {
	z.GuardTranslate()
}

// --- Auto-zoom ---

// AutoZoomToPosition jumps to AutoZoomFactor and centers the content point
// currently displayed at p (container-relative), then runs the translate guard.
func (z *Zoomer) AutoZoomToPosition(p Point) {
	cur := z.transform
	target := Scale(Offset(Scale(p, 1/cur.ZoomFactor), cur.Translate), AutoZoomFactor)
	delta := Offset(z.geom.BoundSize().Half(), target)

	z.animate = true
	z.SetTransform(Transform{ZoomFactor: AutoZoomFactor, Translate: Scale(delta, 1/AutoZoomFactor)})
	z.GuardTranslate()
	z.emit(EventAutoZoom, []Point{p})
}

// AutoZoomToLastTouchPoint runs AutoZoomToPosition on the last single-touch
// start point. It does nothing if no single touch has been recorded.
func (z *Zoomer) AutoZoomToLastTouchPoint() {
	if !z.hasLastTouch {
		return
	}
	z.AutoZoomToPosition(z.lastTouch)
}

// --- Reconfiguration ---

// SetConfig replaces the configuration. When MinZoomScale or the container
// height changes, the view is zoomed to the new minimum and the translation
// is re-validated.
func (z *Zoomer) SetConfig(cfg Config) {
	prev := z.cfg
	z.cfg = cfg
	if prev.MinZoomScale == cfg.MinZoomScale && prev.BoundSize.Height == cfg.BoundSize.Height {
		return
	}
	z.debugf("reconfigure min %g bound %gx%g", cfg.MinZoomScale, cfg.BoundSize.Width, cfg.BoundSize.Height)
	z.ZoomContentArea(cfg.MinZoomScale)
	z.GuardTranslate()
	z.emit(EventReconfigure, nil)
}
