package sketch

import "github.com/chewxy/math32"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector is returned unchanged.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return p
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perpendicular returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perpendicular() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Abs returns the point with both components made non-negative.
func (p Point) Abs() Point {
	return Point{X: math32.Abs(p.X), Y: math32.Abs(p.Y)}
}

// Distance returns the distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float32) float32 {
	return Pt(x1, y1).Distance(Pt(x2, y2))
}
