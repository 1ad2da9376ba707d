package pinchzoom

import "math"

// Point is a 2D coordinate in either container space or content space,
// depending on context.
type Point struct {
	X, Y float64
}

// Size holds non-negative width and height dimensions.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

// NormalizePointInRect returns p relative to the rectangle's origin.
func NormalizePointInRect(p Point, r Rect) Point {
	return Point{X: p.X - r.Origin.X, Y: p.Y - r.Origin.Y}
}

// Midpoint returns the arithmetic mean of two points.
func Midpoint(p1, p2 Point) Point {
	return Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Offset returns a - b.
func Offset(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns p multiplied by factor. The factor may be negative or fractional.
func Scale(p Point, factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Sum returns a + b.
func Sum(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// BoundWithin clamps each component of value independently to [min, max].
// The lower bound wins when min > max on an axis.
func BoundWithin(min, value, max Point) Point {
	return Point{
		X: math.Max(min.X, math.Min(value.X, max.X)),
		Y: math.Max(min.Y, math.Min(value.Y, max.Y)),
	}
}

// IsEqual reports exact component-wise equality. There is no tolerance;
// callers round before comparing.
func IsEqual(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// Scale returns the size multiplied by factor.
func (s Size) Scale(factor float64) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// Diff returns s - other. The result may be negative on either axis.
func (s Size) Diff(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// Half returns the center point of a rectangle of this size anchored at the origin.
func (s Size) Half() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// truncRound truncates toward zero at four decimal places.
func truncRound(v float64) float64 {
	return math.Trunc(v*10000) / 10000
}

// roundTranslate rounds half-up at three decimal places, so -0.0005 rounds
// to 0 rather than away from zero.
func roundTranslate(v float64) float64 {
	return math.Floor(v*1000+0.5) / 1000
}
