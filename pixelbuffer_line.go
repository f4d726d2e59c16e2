package sketch

import "github.com/chewxy/math32"

// DrawLine draws a one-pixel aliased line with Bresenham's algorithm.
// Endpoints are floored to pixel coordinates and both are drawn.
//
// Lines with a NaN or infinite endpoint draw nothing. A line reaching
// outside the buffer is first clipped to it, so the work is bounded by the
// buffer size.
func (p *PixelBuffer) DrawLine(start, end Point, c Color) {
	if !finite(start) || !finite(end) {
		return
	}
	bounds := Rect{Max: Pt(float32(p.width), float32(p.height))}.Expand(1)
	if !bounds.ContainsPoint(start) || !bounds.ContainsPoint(end) {
		var ok bool
		if start, end, ok = clipSegment(start, end, bounds); !ok {
			return
		}
	}

	x0, y0 := pixelCoord(math32.Floor(start.X)), pixelCoord(math32.Floor(start.Y))
	x1, y1 := pixelCoord(math32.Floor(end.X)), pixelCoord(math32.Floor(end.Y))

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		p.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLineAA draws an anti-aliased line with Xiaolin Wu's algorithm.
//
// Each column along the major axis lights the two pixels straddling the
// ideal line, weighted by the line's fractional position between them.
// The endpoint columns are further weighted by how much of the column the
// segment covers.
//
// Lines with a NaN or infinite endpoint draw nothing. Columns outside the
// buffer are skipped, so the work is bounded by the buffer size.
func (p *PixelBuffer) DrawLineAA(start, end Point, c Color) {
	if !finite(start) || !finite(end) {
		return
	}

	steep := math32.Abs(end.Y-start.Y) > math32.Abs(end.X-start.X)
	if steep {
		start.X, start.Y = start.Y, start.X
		end.X, end.Y = end.Y, end.X
	}
	if start.X > end.X {
		start, end = end, start
	}

	dx := end.X - start.X
	dy := end.Y - start.Y
	gradient := float32(1)
	if dx != 0 {
		gradient = dy / dx
	}

	// Extent of the major axis in the swapped space.
	major := p.width
	if steep {
		major = p.height
	}

	// plot works in the swapped space and un-swaps for steep lines.
	plot := func(x, y int, coverage float32) {
		if steep {
			p.Plot(y, x, c, coverage)
		} else {
			p.Plot(x, y, c, coverage)
		}
	}

	// First endpoint.
	xend := round(start.X)
	yend := start.Y + gradient*(xend-start.X)
	xgap := 1 - fpart(start.X+0.5)
	xpxl1 := pixelCoord(xend)
	ypxl1 := pixelCoord(math32.Floor(yend))
	plot(xpxl1, ypxl1, (1-fpart(yend))*xgap)
	plot(xpxl1, ypxl1+1, fpart(yend)*xgap)

	intery := yend + gradient

	// Second endpoint.
	xend = round(end.X)
	yend = end.Y + gradient*(xend-end.X)
	xgap = fpart(end.X + 0.5)
	xpxl2 := pixelCoord(xend)
	ypxl2 := pixelCoord(math32.Floor(yend))
	plot(xpxl2, ypxl2, (1-fpart(yend))*xgap)
	plot(xpxl2, ypxl2+1, fpart(yend)*xgap)

	lo, hi := max(xpxl1+1, 0), min(xpxl2, major)
	if skipped := lo - (xpxl1 + 1); skipped > 0 {
		intery += gradient * float32(skipped)
	}
	for x := lo; x < hi; x++ {
		y := pixelCoord(math32.Floor(intery))
		f := fpart(intery)
		plot(x, y, 1-f)
		plot(x, y+1, f)
		intery += gradient
	}
}

// coordLimit bounds pixel coordinates converted from float32 so that
// far-away endpoints convert to int safely.
const coordLimit = 1 << 24

// pixelCoord converts an integral float32 to int, clamped to ±coordLimit.
// NaN maps to -coordLimit, which is off every buffer.
func pixelCoord(x float32) int {
	if math32.IsNaN(x) {
		return -coordLimit
	}
	return int(math32.Max(math32.Min(x, coordLimit), -coordLimit))
}

// clipSegment clips the segment a-b to r (Liang-Barsky).
// The boolean is false when no part of the segment lies in r.
func clipSegment(a, b Point, r Rect) (Point, Point, bool) {
	d := b.Sub(a)
	t0, t1 := float32(0), float32(1)

	edges := [4][2]float32{
		{-d.X, a.X - r.Min.X},
		{d.X, r.Max.X - a.X},
		{-d.Y, a.Y - r.Min.Y},
		{d.Y, r.Max.Y - a.Y},
	}
	for _, e := range edges {
		pk, qk := e[0], e[1]
		if pk == 0 {
			if qk < 0 {
				return a, b, false
			}
			continue
		}
		t := qk / pk
		if pk < 0 {
			t0 = math32.Max(t0, t)
		} else {
			t1 = math32.Min(t1, t)
		}
	}
	if t0 > t1 {
		return a, b, false
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

func finite(pt Point) bool {
	return !math32.IsNaN(pt.X) && !math32.IsInf(pt.X, 0) &&
		!math32.IsNaN(pt.Y) && !math32.IsInf(pt.Y, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
