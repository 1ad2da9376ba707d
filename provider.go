package pinchzoom

// ViewportGeometry reports the live pixel dimensions of the container and the
// content area. The engine queries it on every computation, so an
// implementation backed by a real display surface can return sizes that
// change between calls.
type ViewportGeometry interface {
	// BoundSize returns the container size.
	BoundSize() Size
	// ContentSize returns the unscaled content area size.
	ContentSize() Size
}

// configGeometry reads sizes from the zoomer's current configuration.
type configGeometry struct {
	z *Zoomer
}

func (g configGeometry) BoundSize() Size   { return g.z.cfg.BoundSize }
func (g configGeometry) ContentSize() Size { return g.z.cfg.ContentSize }

// FixedGeometry is a ViewportGeometry with constant sizes.
type FixedGeometry struct {
	Bound   Size
	Content Size
}

// BoundSize returns g.Bound.
func (g FixedGeometry) BoundSize() Size { return g.Bound }

// ContentSize returns g.Content.
func (g FixedGeometry) ContentSize() Size { return g.Content }
