package sketch

import "github.com/chewxy/math32"

// round rounds half away from zero.
func round(x float32) float32 {
	if x < 0 {
		return -math32.Floor(-x + 0.5)
	}
	return math32.Floor(x + 0.5)
}

// fpart returns the fractional part of x in [0, 1).
func fpart(x float32) float32 {
	return x - math32.Floor(x)
}
