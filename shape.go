package sketch

import "github.com/chewxy/math32"

// Shape is a closed region that the Canvas can fill and stroke.
//
// The variant set is fixed: Ellipse, Rectangle and Polygon.
//
// Distance follows the signed-distance convention (negative inside) for
// Ellipse and Polygon. Rectangle.Distance is never negative; it reports 0
// for every point inside.
type Shape interface {
	// Contains reports whether p lies inside the shape.
	Contains(p Point) bool

	// BoundingBox returns the smallest axis-aligned rectangle enclosing the shape.
	BoundingBox() Rect

	// Distance returns the distance from p to the shape's boundary.
	Distance(p Point) float32

	shape()
}

// boundaryDistancer is implemented by shapes whose Distance does not
// measure to the boundary from inside. The stroke pass prefers it.
type boundaryDistancer interface {
	SignedDistance(p Point) float32
}

// Ellipse is an axis-aligned ellipse.
// Width and Height are full extents (diameters) and should not be negative.
type Ellipse struct {
	Center        Point
	Width, Height float32
}

func (Ellipse) shape() {}

// normalized returns the offset of p from the center in units of the radii.
func (e Ellipse) normalized(p Point) Point {
	return Pt((p.X-e.Center.X)/(e.Width/2), (p.Y-e.Center.Y)/(e.Height/2))
}

// Contains reports whether p lies inside or on the ellipse.
func (e Ellipse) Contains(p Point) bool {
	d := e.normalized(p)
	return d.Dot(d) <= 1
}

// BoundingBox returns center ± half extents.
func (e Ellipse) BoundingBox() Rect {
	half := Pt(e.Width/2, e.Height/2)
	return Rect{Min: e.Center.Sub(half), Max: e.Center.Add(half)}
}

// Distance approximates the signed distance to the ellipse outline.
// It is exact for circles and close to the boundary of other ellipses.
func (e Ellipse) Distance(p Point) float32 {
	d := e.normalized(p)
	return (math32.Sqrt(d.Dot(d)) - 1) * math32.Min(e.Width/2, e.Height/2)
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
// Width and Height should not be negative.
type Rectangle struct {
	TopLeft       Point
	Width, Height float32
}

func (Rectangle) shape() {}

// Contains reports whether p lies inside or on the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.TopLeft.X+r.Width &&
		p.Y >= r.TopLeft.Y && p.Y <= r.TopLeft.Y+r.Height
}

// BoundingBox returns the rectangle itself.
func (r Rectangle) BoundingBox() Rect {
	return Rect{Min: r.TopLeft, Max: r.TopLeft.Add(Pt(r.Width, r.Height))}
}

// Distance returns the Euclidean distance from p to the nearest point of
// the rectangle. Points inside are at distance 0.
func (r Rectangle) Distance(p Point) float32 {
	dx := clamp(p.X-r.TopLeft.X, 0, r.Width)
	dy := clamp(p.Y-r.TopLeft.Y, 0, r.Height)
	return p.Distance(r.TopLeft.Add(Pt(dx, dy)))
}

// SignedDistance returns the exact distance from p to the rectangle's
// outline, negative inside.
func (r Rectangle) SignedDistance(p Point) float32 {
	hw, hh := r.Width/2, r.Height/2
	c := r.TopLeft.Add(Pt(hw, hh))
	q := p.Sub(c).Abs().Sub(Pt(hw, hh))

	outside := Pt(math32.Max(q.X, 0), math32.Max(q.Y, 0)).Length()
	inside := math32.Min(math32.Max(q.X, q.Y), 0)
	return outside + inside
}

// Polygon is a closed polygon. The last vertex connects back to the first.
// Containment and distance need at least two vertices to be meaningful.
type Polygon struct {
	Vertices []Point
}

func (Polygon) shape() {}

// NewPolygon creates a polygon from its vertices.
func NewPolygon(vertices ...Point) Polygon {
	return Polygon{Vertices: vertices}
}

// Contains reports whether p lies inside the polygon using the even-odd rule.
func (pg Polygon) Contains(p Point) bool {
	inside := false
	n := len(pg.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg.Vertices[i], pg.Vertices[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// BoundingBox returns the min/max over all vertices.
// An empty polygon yields the zero Rect.
func (pg Polygon) BoundingBox() Rect {
	if len(pg.Vertices) == 0 {
		return Rect{}
	}
	r := Rect{Min: pg.Vertices[0], Max: pg.Vertices[0]}
	for _, v := range pg.Vertices[1:] {
		r.Min.X = math32.Min(r.Min.X, v.X)
		r.Min.Y = math32.Min(r.Min.Y, v.Y)
		r.Max.X = math32.Max(r.Max.X, v.X)
		r.Max.Y = math32.Max(r.Max.Y, v.Y)
	}
	return r
}

// Distance returns the distance from p to the nearest edge, negated when p
// is inside. A polygon with fewer than two vertices has no edges and is
// infinitely far from every point.
func (pg Polygon) Distance(p Point) float32 {
	n := len(pg.Vertices)
	if n < 2 {
		return math32.Inf(1)
	}

	best := math32.Inf(1)
	for i := 0; i < n; i++ {
		edge := Line{Start: pg.Vertices[i], End: pg.Vertices[(i+1)%n]}
		best = math32.Min(best, edge.DistanceToPoint(p))
	}
	if pg.Contains(p) {
		return -best
	}
	return best
}

// clamp limits x to [lo, hi]. When hi < lo the result is hi.
func clamp(x, lo, hi float32) float32 {
	return math32.Min(math32.Max(x, lo), hi)
}
