// Package sketch provides a software 2D rasterizer for Go.
//
// # Overview
//
// sketch draws anti-aliased shapes and lines into a packed-pixel
// framebuffer. It has no windowing of its own: a host (see the
// integration packages) hands the finished buffer to a display surface
// once per frame.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	c := sketch.NewCanvas(640, 360)
//	c.Background(sketch.Black)
//
//	c.SetFill(sketch.HSVToRGB(200, 0.6, 0.9))
//	c.SetStroke(sketch.White)
//	c.SetStrokeWeight(2)
//	c.Ellipse(100, 100, 50, 50)
//
//	pixels := c.Buffer() // row-major ARGB, 640*360 long
//
// # Architecture
//
// The package is organized into:
//   - Values: Color, Point, Line, Rect
//   - Shapes: Ellipse, Rectangle, Polygon behind the Shape interface
//   - PixelBuffer: clipped pixel writes, compositing, Bresenham and Wu lines
//   - Canvas: fill/stroke state and the anti-aliasing passes
//   - Internal: raster (coverage sampling), blend (ARGB compositing)
//
// # Pixel Format
//
// Each pixel is a uint32 with alpha in the most significant byte, then red,
// green and blue. Blended pixels are always stored opaque.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Anti-aliasing
//
// Fills sample each pixel at four fixed sub-pixel positions and blend the
// fill color by the fraction that falls inside the shape. Strokes paint
// pixels whose distance from the outline is within half the stroke weight
// and fade over one further pixel outside it. Lines use Wu's algorithm.
//
// # Errors
//
// Drawing never fails. Writes outside the buffer are dropped and degenerate
// geometry draws nothing.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
