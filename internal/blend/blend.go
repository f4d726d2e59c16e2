// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend implements compositing on packed 32-bit ARGB pixels.
//
// Colors are straight (not premultiplied) alpha with the byte layout
// alpha, red, green, blue from most to least significant. Channel results
// are truncated toward zero when converted back to bytes, never rounded.
package blend

// Pack assembles a pixel from its channels.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a pixel into its channels.
func Unpack(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Over composites src over dst using src's alpha:
//
//	out = dst*(1-a) + src*a,  a = src.alpha/255
//
// The result is always opaque; the destination alpha is ignored.
func Over(dst, src uint32) uint32 {
	sa, sr, sg, sb := Unpack(src)
	_, dr, dg, db := Unpack(dst)

	alpha := float32(sa) / 255
	inv := 1 - alpha

	return Pack(255,
		mix(dr, sr, alpha, inv),
		mix(dg, sg, alpha, inv),
		mix(db, sb, alpha, inv),
	)
}

// mix blends one channel and truncates the result to a byte.
func mix(bg, fg uint8, alpha, inv float32) uint8 {
	return uint8(inv*float32(bg) + alpha*float32(fg))
}

// ScaleAlpha returns c with its alpha multiplied by coverage.
// The product is truncated; coverage is expected in [0, 1].
func ScaleAlpha(c uint32, coverage float32) uint32 {
	a := float32(uint8(c>>24)) * coverage
	switch {
	case a <= 0:
		a = 0
	case a >= 255:
		a = 255
	}
	return c&0x00FFFFFF | uint32(uint8(a))<<24
}
