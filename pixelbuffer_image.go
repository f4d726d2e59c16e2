package sketch

import (
	"image"
	"image/color"
	"image/draw"
)

// ARGBModel converts any color.Color to a Color.
var ARGBModel color.Model = color.ModelFunc(argbModel)

func argbModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(n.R, n.G, n.B, n.A)
}

// Verify at compile time that PixelBuffer is a writable image.
var _ draw.Image = (*PixelBuffer)(nil)

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return ARGBModel
}

// Set implements the draw.Image interface. It overwrites without blending.
func (p *PixelBuffer) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, argbModel(c).(Color))
}

// CopyRGBA writes the buffer into dst as alpha-premultiplied RGBA bytes,
// 4 bytes per pixel in row-major order, the layout of image.RGBA.Pix and of
// GPU texture uploads. It returns the number of pixels written, which is
// limited by len(dst)/4.
func (p *PixelBuffer) CopyRGBA(dst []byte) int {
	n := min(len(dst)/4, len(p.data))
	for i, px := range p.data[:n] {
		c := Color(px)
		a := uint32(c.A())
		j := i * 4
		dst[j+0] = uint8(uint32(c.R()) * a / 255)
		dst[j+1] = uint8(uint32(c.G()) * a / 255)
		dst[j+2] = uint8(uint32(c.B()) * a / 255)
		dst[j+3] = uint8(a)
	}
	return n
}

// ToRGBA converts the buffer to an image.RGBA.
func (p *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	p.CopyRGBA(img.Pix)
	return img
}
