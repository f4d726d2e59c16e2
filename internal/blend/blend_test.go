// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "testing"

func TestPackUnpack(t *testing.T) {
	c := Pack(0x11, 0x22, 0x33, 0x44)
	if c != 0x11223344 {
		t.Fatalf("Pack = %#08x, want 0x11223344", c)
	}
	a, r, g, b := Unpack(c)
	if a != 0x11 || r != 0x22 || g != 0x33 || b != 0x44 {
		t.Errorf("Unpack = (%#x, %#x, %#x, %#x)", a, r, g, b)
	}
}

func TestOver(t *testing.T) {
	tests := []struct {
		name string
		dst  uint32
		src  uint32
		want uint32
	}{
		{"opaque source replaces", Pack(255, 10, 20, 30), Pack(255, 200, 100, 50), Pack(255, 200, 100, 50)},
		{"transparent source keeps rgb", Pack(255, 10, 20, 30), Pack(0, 200, 100, 50), Pack(255, 10, 20, 30)},
		{"transparent source forces alpha", Pack(0, 10, 20, 30), Pack(0, 200, 100, 50), Pack(255, 10, 20, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Over(tt.dst, tt.src)
			if got != tt.want {
				t.Errorf("Over = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestOverHalfAlpha(t *testing.T) {
	// 128/255 of white over black is 128.0 in exact arithmetic; float32
	// error may put it a hair either side of the integer.
	a, r, g, b := Unpack(Over(Pack(255, 0, 0, 0), Pack(128, 255, 255, 255)))
	if a != 255 || r < 127 || r > 128 || g != r || b != r {
		t.Errorf("Over = (%d, %d, %d, %d), want opaque grey 127..128", a, r, g, b)
	}
}

func TestOverTruncates(t *testing.T) {
	// 0.4*100 + 0.6*201 with a=153/255=0.6 is 160.6; truncation gives 160.
	got := Over(Pack(255, 100, 100, 100), Pack(153, 201, 201, 201))
	_, r, _, _ := Unpack(got)
	if r != 160 {
		t.Errorf("red = %d, want 160 (truncated)", r)
	}
}

func TestScaleAlpha(t *testing.T) {
	tests := []struct {
		name     string
		c        uint32
		coverage float32
		wantA    uint8
	}{
		{"full", Pack(255, 1, 2, 3), 1, 255},
		{"none", Pack(255, 1, 2, 3), 0, 0},
		{"quarter truncated", Pack(255, 1, 2, 3), 0.25, 63},
		{"half of half", Pack(128, 1, 2, 3), 0.5, 64},
		{"negative clamps", Pack(255, 1, 2, 3), -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleAlpha(tt.c, tt.coverage)
			a, r, g, b := Unpack(got)
			if a != tt.wantA {
				t.Errorf("alpha = %d, want %d", a, tt.wantA)
			}
			if r != 1 || g != 2 || b != 3 {
				t.Errorf("rgb changed: (%d, %d, %d)", r, g, b)
			}
		})
	}
}
