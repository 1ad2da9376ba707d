package pinchzoom

import "testing"

func TestTransformString(t *testing.T) {
	tr := Transform{ZoomFactor: 1.25, Translate: Point{X: -12.5, Y: 3}}
	want := "scale(1.25) translate(-12.5px, 3px) translateZ(0)"
	if got := tr.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestTransformDescriptor(t *testing.T) {
	d := Transform{ZoomFactor: 2, Translate: Point{X: 7, Y: -8}}.Descriptor()
	if d != (Descriptor{ZoomFactor: 2, TranslateX: 7, TranslateY: -8}) {
		t.Errorf("Descriptor = %+v", d)
	}
}

func TestTransformContainerRoundtrip(t *testing.T) {
	tr := Transform{ZoomFactor: 2.5, Translate: Point{X: -40, Y: 12}}
	p := Point{X: 33, Y: 71}
	c := tr.ContentToContainer(p)
	if !approxPoint(c, Point{X: (33 - 40) * 2.5, Y: (71 + 12) * 2.5}, epsilon) {
		t.Errorf("ContentToContainer = %v", c)
	}
	if back := tr.ContainerToContent(c); !approxPoint(back, p, epsilon) {
		t.Errorf("ContainerToContent roundtrip = %v, want %v", back, p)
	}
}

func TestTransformGeoM(t *testing.T) {
	tr := Transform{ZoomFactor: 2, Translate: Point{X: 10, Y: 5}}
	g := tr.GeoM(Point{X: 100, Y: 200})

	x, y := g.Apply(0, 0)
	if !approxEqual(x, 120, epsilon) || !approxEqual(y, 210, epsilon) {
		t.Errorf("GeoM(0,0) = (%f,%f), want (120,210)", x, y)
	}
	x, y = g.Apply(5, 5)
	if !approxEqual(x, 130, epsilon) || !approxEqual(y, 220, epsilon) {
		t.Errorf("GeoM(5,5) = (%f,%f), want (130,220)", x, y)
	}

	// GeoM must agree with ContentToContainer plus the container origin.
	p := tr.ContentToContainer(Point{X: 5, Y: 5})
	if !approxEqual(x, p.X+100, epsilon) || !approxEqual(y, p.Y+200, epsilon) {
		t.Errorf("GeoM disagrees with ContentToContainer: (%f,%f) vs %v", x, y, p)
	}
}
