package sketch

import "github.com/gogpu/sketch/internal/blend"

// PixelBuffer is a fixed-size framebuffer of packed ARGB pixels.
//
// Pixels are stored row-major: the pixel (x, y) lives at index y*width+x.
// Every write clips silently; coordinates outside the buffer are ignored.
// A PixelBuffer is never resized in place.
type PixelBuffer struct {
	width  int
	height int
	data   []uint32
}

// NewPixelBuffer creates a buffer of the given dimensions with every pixel
// set to 0 (transparent black). Negative dimensions are treated as 0.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
}

// Width returns the width of the buffer.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Buffer returns the backing pixel array, row-major, width*height long.
// The host copies it to its display surface after each frame.
func (p *PixelBuffer) Buffer() []uint32 {
	return p.data
}

// inBounds reports whether (x, y) addresses a pixel.
func (p *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Pixel returns the color at (x, y), or Transparent when out of bounds.
func (p *PixelBuffer) Pixel(x, y int) Color {
	if !p.inBounds(x, y) {
		return Transparent
	}
	return Color(p.data[y*p.width+x])
}

// Clear overwrites every pixel with c. No blending takes place.
func (p *PixelBuffer) Clear(c Color) {
	for i := range p.data {
		p.data[i] = uint32(c)
	}
}

// SetPixel overwrites the pixel at (x, y) with c.
func (p *PixelBuffer) SetPixel(x, y int, c Color) {
	if !p.inBounds(x, y) {
		return
	}
	p.data[y*p.width+x] = uint32(c)
}

// BlendPixel composites c over the pixel at (x, y) using c's alpha.
// The stored pixel is always opaque afterwards.
func (p *PixelBuffer) BlendPixel(x, y int, c Color) {
	if !p.inBounds(x, y) {
		return
	}
	i := y*p.width + x
	p.data[i] = blend.Over(p.data[i], uint32(c))
}

// Plot blends c at (x, y) with its alpha scaled by coverage in [0, 1].
func (p *PixelBuffer) Plot(x, y int, c Color, coverage float32) {
	p.BlendPixel(x, y, Color(blend.ScaleAlpha(uint32(c), coverage)))
}
