// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides the per-pixel coverage estimators used by the
// canvas fill and stroke passes.
package raster

import "github.com/chewxy/math32"

// SampleOffsets are the sub-pixel positions tested by Coverage, relative to
// the pixel's top-left corner. They form a fixed 2x2 grid, so coverage is a
// deterministic box-filter estimate in steps of 1/4.
var SampleOffsets = [4][2]float32{
	{0.25, 0.25},
	{0.75, 0.25},
	{0.25, 0.75},
	{0.75, 0.75},
}

// Coverage returns the fraction of the pixel (px, py) that lies inside a
// region, estimated by testing each of SampleOffsets with inside.
func Coverage(px, py int, inside func(x, y float32) bool) float32 {
	x, y := float32(px), float32(py)
	hits := 0
	for _, o := range SampleOffsets {
		if inside(x+o[0], y+o[1]) {
			hits++
		}
	}
	return float32(hits) / float32(len(SampleOffsets))
}

// FringeWidth is the width in pixels of the soft outer edge of a stroke.
const FringeWidth = 1.0

// StrokeCoverage classifies a pixel at signed distance dist (negative
// inside) from an outline stroked with the given half width.
//
// Pixels with |dist| <= halfWidth are solid. Outside the shape, pixels up to
// FringeWidth beyond the band get a linearly falling coverage in (0, 1].
// The inner edge of the band is hard. Everything else is 0.
func StrokeCoverage(dist, halfWidth float32) (coverage float32, solid bool) {
	switch {
	case math32.Abs(dist) <= halfWidth:
		return 1, true
	case dist > halfWidth && dist <= halfWidth+FringeWidth:
		return halfWidth + FringeWidth - dist, false
	}
	return 0, false
}

// spanLimit bounds the pixel coordinates Span produces so that infinite
// extents convert to int safely.
const spanLimit = 1 << 24

// Span returns the integer pixel range [lo, hi] covering [minV, maxV],
// rounded outward. A NaN bound yields an empty range.
func Span(minV, maxV float32) (lo, hi int) {
	if math32.IsNaN(minV) || math32.IsNaN(maxV) {
		return 0, -1
	}
	lo = int(math32.Max(math32.Floor(minV), -spanLimit))
	hi = int(math32.Min(math32.Ceil(maxV), spanLimit))
	return lo, hi
}

// Clip narrows the inclusive range [lo, hi] to [0, size). The result may be
// empty (lo > hi).
func Clip(lo, hi, size int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > size-1 {
		hi = size - 1
	}
	return lo, hi
}
