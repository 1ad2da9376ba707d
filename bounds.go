package pinchzoom

import "math"

// GuardScale snaps the zoom factor into [MinZoomScale, MaxZoomScale]. The snap
// goes through ZoomContentArea so the translation follows the scale change.
func (z *Zoomer) GuardScale() {
	zf := z.transform.ZoomFactor
	switch {
	case zf > z.cfg.MaxZoomScale:
		z.debugf("zoom %g above max, snapping to %g", zf, z.cfg.MaxZoomScale)
		z.ZoomContentArea(z.cfg.MaxZoomScale)
	case zf < z.cfg.MinZoomScale:
		z.debugf("zoom %g below min, snapping to %g", zf, z.cfg.MinZoomScale)
		z.ZoomContentArea(z.cfg.MinZoomScale)
	}
}

// GuardTranslate clamps the translation so scaled content larger than the
// container covers it completely, and content smaller than the container is
// centered on that axis. It is skipped while the zoom factor is below
// MinZoomScale.
func (z *Zoomer) GuardTranslate() {
	cur := z.transform
	if cur.ZoomFactor < z.cfg.MinZoomScale {
		return
	}

	minT, maxT := translateLimits(z.geom.BoundSize(), z.geom.ContentSize(), cur.ZoomFactor)
	valid := BoundWithin(minT, cur.Translate, maxT)
	if IsEqual(valid, cur.Translate) {
		return
	}
	z.debugf("translate (%g, %g) out of bounds, clamping to (%g, %g)",
		cur.Translate.X, cur.Translate.Y, valid.X, valid.Y)
	z.panContentArea(valid)
}

// translateLimits returns the smallest and largest allowed translation for
// content of the given natural size shown at zoomFactor inside bound.
func translateLimits(bound, content Size, zoomFactor float64) (minT, maxT Point) {
	diff := bound.Diff(content.Scale(zoomFactor))

	half := diff.Scale(1 / (2 * zoomFactor))
	maxT = Point{
		X: positiveOrZero(truncRound(half.Width)),
		Y: positiveOrZero(truncRound(half.Height)),
	}

	full := diff.Scale(1 / zoomFactor)
	minT = Point{
		X: truncRound(math.Min(full.Width, maxT.X)),
		Y: truncRound(math.Min(full.Height, maxT.Y)),
	}
	return minT, maxT
}

func positiveOrZero(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}
