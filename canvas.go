package sketch

// paint is an optional color for one drawing pass.
// A disabled paint is distinct from any color, including black.
type paint struct {
	color   Color
	enabled bool
}

// Canvas is a stateful drawing context over a PixelBuffer it owns.
//
// Shapes are filled with the fill color and outlined with the stroke
// color; either pass can be disabled. Lines use the stroke color only.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	buf          *PixelBuffer
	fill         paint
	stroke       paint
	strokeWeight float32
}

// NewCanvas creates a canvas with a new width x height buffer.
// By default both fill and stroke are disabled and the stroke weight is 1.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf := o.buffer
	if buf == nil {
		buf = NewPixelBuffer(width, height)
	}

	Logger().Debug("canvas created", "width", buf.Width(), "height", buf.Height())

	return &Canvas{
		buf:          buf,
		fill:         o.fill,
		stroke:       o.stroke,
		strokeWeight: o.strokeWeight,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.buf.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.buf.Height()
}

// PixelBuffer returns the buffer the canvas draws into.
func (c *Canvas) PixelBuffer() *PixelBuffer {
	return c.buf
}

// Buffer returns the backing pixel array for presentation.
// See PixelBuffer.Buffer.
func (c *Canvas) Buffer() []uint32 {
	return c.buf.Buffer()
}

// Resize replaces the buffer with a new, cleared one of the given size.
// Paint state is kept. Previous contents are discarded.
func (c *Canvas) Resize(width, height int) {
	c.buf = NewPixelBuffer(width, height)
	Logger().Debug("canvas resized", "width", c.buf.Width(), "height", c.buf.Height())
}

// SetFill enables the fill pass with color col.
func (c *Canvas) SetFill(col Color) {
	c.fill = paint{color: col, enabled: true}
}

// NoFill disables the fill pass.
func (c *Canvas) NoFill() {
	c.fill = paint{}
}

// Fill returns the fill color and whether filling is enabled.
func (c *Canvas) Fill() (Color, bool) {
	return c.fill.color, c.fill.enabled
}

// SetStroke enables the stroke pass with color col.
func (c *Canvas) SetStroke(col Color) {
	c.stroke = paint{color: col, enabled: true}
}

// NoStroke disables the stroke pass.
func (c *Canvas) NoStroke() {
	c.stroke = paint{}
}

// Stroke returns the stroke color and whether stroking is enabled.
func (c *Canvas) Stroke() (Color, bool) {
	return c.stroke.color, c.stroke.enabled
}

// SetStrokeWeight sets the full width of shape outlines.
// Non-positive and NaN weights are ignored.
func (c *Canvas) SetStrokeWeight(w float32) {
	if w > 0 {
		c.strokeWeight = w
	}
}

// StrokeWeight returns the current stroke weight.
func (c *Canvas) StrokeWeight() float32 {
	return c.strokeWeight
}

// Background overwrites every pixel with col.
func (c *Canvas) Background(col Color) {
	c.buf.Clear(col)
}

// Line draws an anti-aliased line from a to b in the stroke color.
// The stroke weight does not apply: lines are always one pixel wide.
// Nothing is drawn when stroking is disabled.
func (c *Canvas) Line(a, b Point) {
	if !c.stroke.enabled {
		return
	}
	c.buf.DrawLineAA(a, b, c.stroke.color)
}

// Ellipse draws the ellipse inscribed in the w x h box whose top-left
// corner is (x, y).
func (c *Canvas) Ellipse(x, y, w, h float32) {
	c.DrawShape(Ellipse{Center: Pt(x+w/2, y+h/2), Width: w, Height: h})
}

// Rectangle draws the w x h rectangle whose top-left corner is (x, y).
func (c *Canvas) Rectangle(x, y, w, h float32) {
	c.DrawShape(Rectangle{TopLeft: Pt(x, y), Width: w, Height: h})
}

// DrawPolygon draws the closed polygon through the given vertices.
func (c *Canvas) DrawPolygon(vertices ...Point) {
	c.DrawShape(Polygon{Vertices: vertices})
}

// DrawShape fills and then strokes s with the current paint state.
//
// The stroke is a band of the stroke weight centered on the outline, with
// a hard inner edge and a one-pixel soft edge outside. Pixels in the band
// take the stroke color unblended; fringe pixels blend it with its alpha
// scaled by their coverage. A Rectangle is stroked along its outline using
// SignedDistance, so its interior is left to the fill even though
// Rectangle.Distance reports 0 inside.
func (c *Canvas) DrawShape(s Shape) {
	if c.fill.enabled {
		c.fillShape(s, c.fill.color)
	}
	if c.stroke.enabled {
		c.strokeShape(s, c.stroke.color)
	}
}
