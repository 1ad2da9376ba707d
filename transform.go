package pinchzoom

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform is the visual state of the content area: a uniform scale
// followed by a translation expressed in content-space units.
//
// A content point p is displayed at ZoomFactor * (p + Translate), relative to
// the container's top-left corner.
type Transform struct {
	ZoomFactor float64
	Translate  Point
}

// identityTransform is the transform of a freshly constructed viewport.
var identityTransform = Transform{ZoomFactor: 1}

// Descriptor is the flattened transform handed to presentation layers.
type Descriptor struct {
	ZoomFactor float64 `json:"zoomFactor" yaml:"zoom-factor"`
	TranslateX float64 `json:"translateX" yaml:"translate-x"`
	TranslateY float64 `json:"translateY" yaml:"translate-y"`
}

// Descriptor flattens t.
func (t Transform) Descriptor() Descriptor {
	return Descriptor{ZoomFactor: t.ZoomFactor, TranslateX: t.Translate.X, TranslateY: t.Translate.Y}
}

// String renders t as a CSS transform value.
func (t Transform) String() string {
	return fmt.Sprintf("scale(%s) translate(%spx, %spx) translateZ(0)",
		formatFloat(t.ZoomFactor), formatFloat(t.Translate.X), formatFloat(t.Translate.Y))
}

// ContentToContainer maps a content-space point to container space.
func (t Transform) ContentToContainer(p Point) Point {
	return Scale(Sum(p, t.Translate), t.ZoomFactor)
}

// ContainerToContent maps a container-space point back to content space.
func (t Transform) ContainerToContent(p Point) Point {
	return Offset(Scale(p, 1/t.ZoomFactor), t.Translate)
}

// GeoM returns the ebiten geometry matrix that draws content with t inside a
// container whose top-left corner is at origin on screen.
func (t Transform) GeoM(origin Point) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(t.Translate.X, t.Translate.Y)
	g.Scale(t.ZoomFactor, t.ZoomFactor)
	g.Translate(origin.X, origin.Y)
	return g
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
