package sketch

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a packed 32-bit ARGB color.
// The byte layout from most to least significant is alpha, red, green, blue,
// which is the layout the host window copies to its display surface.
type Color uint32

// NewColor packs four channel bytes into a Color.
func NewColor(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied, as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// Hex returns the color as "#RRGGBB". Alpha is not included.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// String returns the channel form, e.g. "Color(r: 255, g: 0, b: 0, a: 255)".
func (c Color) String() string {
	return fmt.Sprintf("Color(r: %d, g: %d, b: %d, a: %d)", c.R(), c.G(), c.B(), c.A())
}

// Format implements fmt.Formatter.
//
//	%v, %s  channel form
//	%#v     hex form, "Color(#RRGGBB)"
//	%d      raw packed value, "Color(4294901760)"
func (c Color) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprintf(f, "Color(%s)", c.Hex())
			return
		}
		fmt.Fprint(f, c.String())
	case 'd':
		fmt.Fprintf(f, "Color(%d)", uint32(c))
	default:
		fmt.Fprint(f, c.String())
	}
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Malformed input yields opaque black.
func ParseHex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			n, ok := hexNibble(hex[i])
			if !ok {
				return Black
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexNibble(hex[i])
			lo, ok2 := hexNibble(hex[i+1])
			if !ok1 || !ok2 {
				return Black
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Black
	}

	return NewColor(v[0], v[1], v[2], v[3])
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// HSVToRGB converts hue, saturation and value to an opaque Color.
// h is in degrees and wraps modulo 360; s and v are in [0, 1].
func HSVToRGB(h, s, v float32) Color {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return NewColor(unitToByte(r+m), unitToByte(g+m), unitToByte(b+m), 255)
}

// unitToByte maps [0, 1] to [0, 255], rounding and clamping.
func unitToByte(x float32) uint8 {
	x = round(x * 255)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Common colors
var (
	Black       = NewColor(0, 0, 0, 255)
	White       = NewColor(255, 255, 255, 255)
	Red         = NewColor(255, 0, 0, 255)
	Green       = NewColor(0, 255, 0, 255)
	Blue        = NewColor(0, 0, 255, 255)
	Transparent = NewColor(0, 0, 0, 0)
)
