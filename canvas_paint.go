package sketch

import "github.com/gogpu/sketch/internal/raster"

// pixelRange returns the inclusive pixel rows and columns covering r,
// rounded outward and clipped to the buffer.
func (c *Canvas) pixelRange(r Rect) (x0, y0, x1, y1 int) {
	x0, x1 = raster.Span(r.Min.X, r.Max.X)
	y0, y1 = raster.Span(r.Min.Y, r.Max.Y)
	x0, x1 = raster.Clip(x0, x1, c.buf.Width())
	y0, y1 = raster.Clip(y0, y1, c.buf.Height())
	return x0, y0, x1, y1
}

// fillShape blends col into every pixel of the shape's bounding box,
// weighted by the sampled coverage of that pixel.
func (c *Canvas) fillShape(s Shape, col Color) {
	inside := func(x, y float32) bool {
		return s.Contains(Pt(x, y))
	}

	x0, y0, x1, y1 := c.pixelRange(s.BoundingBox())
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			if coverage := raster.Coverage(px, py, inside); coverage > 0 {
				c.buf.Plot(px, py, col, coverage)
			}
		}
	}
}

// strokeShape paints the band of pixels within half the stroke weight of
// the shape's outline, plus a one-pixel soft fringe outside it.
// Distances are measured at integer pixel coordinates.
func (c *Canvas) strokeShape(s Shape, col Color) {
	half := c.strokeWeight / 2

	dist := s.Distance
	if bd, ok := s.(boundaryDistancer); ok {
		dist = bd.SignedDistance
	}

	x0, y0, x1, y1 := c.pixelRange(s.BoundingBox().Expand(half + raster.FringeWidth))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			coverage, solid := raster.StrokeCoverage(dist(Pt(float32(px), float32(py))), half)
			switch {
			case solid:
				c.buf.SetPixel(px, py, col)
			case coverage > 0:
				c.buf.Plot(px, py, col, coverage)
			}
		}
	}
}
