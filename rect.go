package sketch

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle.
//
// Min must not exceed Max on either axis. NewRect does not check this;
// use RectFromPoints when the corner order is not known.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from its minimum and maximum corners.
func NewRect(minPt, maxPt Point) Rect {
	return Rect{Min: minPt, Max: maxPt}
}

// RectFromPoints creates a rectangle from any two opposite corners.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		Min: Pt(math32.Min(p1.X, p2.X), math32.Min(p1.Y, p2.Y)),
		Max: Pt(math32.Max(p1.X, p2.X), math32.Max(p1.Y, p2.Y)),
	}
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Area returns Width * Height.
func (r Rect) Area() float32 { return r.Width() * r.Height() }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// ContainsPoint reports whether p lies in r. All four edges are inclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Pt(math32.Min(r.Min.X, o.Min.X), math32.Min(r.Min.Y, o.Min.Y)),
		Max: Pt(math32.Max(r.Max.X, o.Max.X), math32.Max(r.Max.Y, o.Max.Y)),
	}
}

// Intersection returns the overlap of r and o.
// The boolean is false when they are disjoint.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	minPt := Pt(math32.Max(r.Min.X, o.Min.X), math32.Max(r.Min.Y, o.Min.Y))
	maxPt := Pt(math32.Min(r.Max.X, o.Max.X), math32.Min(r.Max.Y, o.Max.Y))
	if minPt.X > maxPt.X || minPt.Y > maxPt.Y {
		return Rect{}, false
	}
	return Rect{Min: minPt, Max: maxPt}, true
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

// Scale returns r scaled about its center by factor.
func (r Rect) Scale(factor float32) Rect {
	center := r.Center()
	half := r.Max.Sub(r.Min).Mul(0.5 * factor)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Expand returns r grown by d on every side. A negative d shrinks it.
func (r Rect) Expand(d float32) Rect {
	return Rect{Min: r.Min.Sub(Pt(d, d)), Max: r.Max.Add(Pt(d, d))}
}
