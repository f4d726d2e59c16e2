package sketch

// CanvasOption configures a Canvas during creation.
// Use functional options to customize the initial drawing state.
//
// Example:
//
//	// Default canvas: no fill, no stroke, stroke weight 1
//	c := sketch.NewCanvas(640, 360)
//
//	// White outline, two pixels wide
//	c := sketch.NewCanvas(640, 360,
//	    sketch.WithStroke(sketch.White),
//	    sketch.WithStrokeWeight(2),
//	)
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	fill         paint
	stroke       paint
	strokeWeight float32
	buffer       *PixelBuffer
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		strokeWeight: 1,
		buffer:       nil, // Will be allocated if nil
	}
}

// WithFill enables the fill pass with the given color.
func WithFill(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.fill = paint{color: c, enabled: true}
	}
}

// WithStroke enables the stroke pass with the given color.
func WithStroke(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.stroke = paint{color: c, enabled: true}
	}
}

// WithStrokeWeight sets the initial stroke weight.
// Non-positive weights are ignored.
func WithStrokeWeight(w float32) CanvasOption {
	return func(o *canvasOptions) {
		if w > 0 {
			o.strokeWeight = w
		}
	}
}

// WithPixelBuffer draws into an existing buffer instead of allocating one.
// The canvas takes ownership of the buffer; the caller must not write to it
// afterwards. The canvas dimensions are taken from the buffer.
//
// Example:
//
//	pb := sketch.NewPixelBuffer(640, 360)
//	c := sketch.NewCanvas(0, 0, sketch.WithPixelBuffer(pb))
func WithPixelBuffer(pb *PixelBuffer) CanvasOption {
	return func(o *canvasOptions) {
		o.buffer = pb
	}
}
