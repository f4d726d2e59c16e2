package sketch

import "github.com/chewxy/math32"

// Line is a line segment between two points.
type Line struct {
	Start, End Point
}

// NewLine creates a segment from start to end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Length returns the length of the segment.
func (l Line) Length() float32 {
	return l.Start.Distance(l.End)
}

// Midpoint returns the point halfway between Start and End.
func (l Line) Midpoint() Point {
	return Pt((l.Start.X+l.End.X)/2, (l.Start.Y+l.End.Y)/2)
}

// Slope returns dy/dx. The boolean is false for a vertical segment,
// whose slope is undefined.
func (l Line) Slope() (float32, bool) {
	dx := l.End.X - l.Start.X
	if dx == 0 {
		return 0, false
	}
	return (l.End.Y - l.Start.Y) / dx, true
}

// orientation classifies the turn p→q→r:
// 0 collinear, 1 clockwise, 2 counter-clockwise.
func orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies within the bounding box of p and r.
// Only meaningful when p, q and r are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= math32.Max(p.X, r.X) && q.X >= math32.Min(p.X, r.X) &&
		q.Y <= math32.Max(p.Y, r.Y) && q.Y >= math32.Min(p.Y, r.Y)
}

// Intersects reports whether the two segments share at least one point.
// Touching endpoints and overlapping collinear segments count.
func (l Line) Intersects(o Line) bool {
	o1 := orientation(l.Start, l.End, o.Start)
	o2 := orientation(l.Start, l.End, o.End)
	o3 := orientation(o.Start, o.End, l.Start)
	o4 := orientation(o.Start, o.End, l.End)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases.
	switch {
	case o1 == 0 && onSegment(l.Start, o.Start, l.End):
		return true
	case o2 == 0 && onSegment(l.Start, o.End, l.End):
		return true
	case o3 == 0 && onSegment(o.Start, l.Start, o.End):
		return true
	case o4 == 0 && onSegment(o.Start, l.End, o.End):
		return true
	}
	return false
}

// IntersectionPoint returns the point where the two segments cross.
// The boolean is false when the segments do not intersect or are parallel
// (including overlapping collinear segments, which have no single point).
func (l Line) IntersectionPoint(o Line) (Point, bool) {
	if !l.Intersects(o) {
		return Point{}, false
	}

	x1, y1 := l.Start.X, l.Start.Y
	x2, y2 := l.End.X, l.End.Y
	x3, y3 := o.Start.X, o.Start.Y
	x4, y4 := o.End.X, o.End.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return Pt(x1+t*(x2-x1), y1+t*(y2-y1)), true
}

// ClosestPoint returns the point on the segment nearest to p.
// A zero-length segment returns Start.
func (l Line) ClosestPoint(p Point) Point {
	dir := l.End.Sub(l.Start)
	lenSq := dir.Dot(dir)
	if lenSq == 0 {
		return l.Start
	}

	t := p.Sub(l.Start).Dot(dir) / lenSq
	switch {
	case t <= 0:
		return l.Start
	case t >= 1:
		return l.End
	}
	return l.Start.Add(dir.Mul(t))
}

// DistanceToPoint returns the distance from p to the nearest point of the segment.
func (l Line) DistanceToPoint(p Point) float32 {
	return p.Distance(l.ClosestPoint(p))
}
