package sketch

import (
	"math"
	"slices"
	"testing"
	"time"
)

// litPixels returns the coordinates whose color differs from bg.
func litPixels(pb *PixelBuffer, bg Color) map[[2]int]Color {
	lit := make(map[[2]int]Color)
	for y := 0; y < pb.Height(); y++ {
		for x := 0; x < pb.Width(); x++ {
			if c := pb.Pixel(x, y); c != bg {
				lit[[2]int{x, y}] = c
			}
		}
	}
	return lit
}

func TestDrawLineBresenham(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		want       [][2]int
	}{
		{"horizontal", Pt(0, 0), Pt(4, 0), [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
		{"diagonal", Pt(0, 0), Pt(3, 3), [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed vertical", Pt(2, 3), Pt(2, 0), [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"floors endpoints", Pt(1.9, 1.2), Pt(1.1, 1.8), [][2]int{{1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewPixelBuffer(8, 8)
			pb.Clear(Black)
			pb.DrawLine(tt.start, tt.end, Red)

			lit := litPixels(pb, Black)
			if len(lit) != len(tt.want) {
				t.Fatalf("lit %d pixels, want %d: %v", len(lit), len(tt.want), lit)
			}
			for _, p := range tt.want {
				if lit[p] != Red {
					t.Errorf("pixel %v = %v, want Red", p, lit[p])
				}
			}
		})
	}
}

func TestDrawLineAAHorizontal(t *testing.T) {
	pb := NewPixelBuffer(20, 5)
	pb.Clear(Black)
	pb.DrawLineAA(Pt(0, 0), Pt(10, 0), White)

	for x := 1; x < 10; x++ {
		if got := pb.Pixel(x, 0); got != White {
			t.Errorf("interior pixel (%d, 0) = %v, want White", x, got)
		}
	}
	for _, x := range []int{0, 10} {
		if r := pb.Pixel(x, 0).R(); r == 0 || r == 255 {
			t.Errorf("endpoint (%d, 0) red = %d, want partial coverage", x, r)
		}
	}
	for p := range litPixels(pb, Black) {
		if p[1] != 0 {
			t.Errorf("pixel %v outside row 0 was lit", p)
		}
		if p[0] > 10 {
			t.Errorf("pixel %v past the end was lit", p)
		}
	}
}

func TestDrawLineAAVertical(t *testing.T) {
	pb := NewPixelBuffer(5, 20)
	pb.Clear(Black)
	pb.DrawLineAA(Pt(2, 0), Pt(2, 10), White)

	for y := 1; y < 10; y++ {
		if got := pb.Pixel(2, y); got != White {
			t.Errorf("interior pixel (2, %d) = %v, want White", y, got)
		}
	}
	for p := range litPixels(pb, Black) {
		if p[0] != 2 {
			t.Errorf("pixel %v outside column 2 was lit", p)
		}
	}
}

func TestDrawLineAADiagonal(t *testing.T) {
	pb := NewPixelBuffer(12, 12)
	pb.Clear(Black)
	pb.DrawLineAA(Pt(0, 0), Pt(10, 10), White)

	for i := 1; i < 10; i++ {
		if got := pb.Pixel(i, i); got != White {
			t.Errorf("diagonal pixel (%d, %d) = %v, want White", i, i, got)
		}
	}
	for p := range litPixels(pb, Black) {
		if p[0] != p[1] {
			t.Errorf("off-diagonal pixel %v was lit", p)
		}
	}
}

func TestDrawLineAASplitsCoverage(t *testing.T) {
	// At y = 2.5 every interior column straddles rows 2 and 3 equally.
	pb := NewPixelBuffer(12, 6)
	pb.Clear(Black)
	pb.DrawLineAA(Pt(0, 2.5), Pt(10, 2.5), White)

	for x := 1; x < 10; x++ {
		a, b := pb.Pixel(x, 2).R(), pb.Pixel(x, 3).R()
		if a < 126 || a > 128 || b < 126 || b > 128 {
			t.Errorf("column %d: rows 2/3 red = %d/%d, want about 127 each", x, a, b)
		}
	}
}

func TestDrawLineAADirectionIndependent(t *testing.T) {
	a, b := Pt(1.3, 2.7), Pt(17.2, 9.1)

	fwd := NewPixelBuffer(20, 12)
	fwd.Clear(Black)
	fwd.DrawLineAA(a, b, Green)

	rev := NewPixelBuffer(20, 12)
	rev.Clear(Black)
	rev.DrawLineAA(b, a, Green)

	if !slices.Equal(fwd.Buffer(), rev.Buffer()) {
		t.Error("DrawLineAA(a, b) and DrawLineAA(b, a) differ")
	}
}

func TestDrawLineAAClips(t *testing.T) {
	pb := NewPixelBuffer(10, 10)
	pb.Clear(Black)
	pb.DrawLineAA(Pt(-50, -20), Pt(60, 30), White)
	pb.DrawLineAA(Pt(-5, 50), Pt(-5, -50), White)
	pb.DrawLine(Pt(-50, 5), Pt(50, 5), White)

	if len(pb.Buffer()) != 100 {
		t.Fatal("buffer resized")
	}
}

// finishesWithin fails the test if draw does not return within d.
func finishesWithin(t *testing.T, d time.Duration, draw func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		draw()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("draw did not return within %v", d)
	}
}

func TestDrawLineFarEndpointsBounded(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name       string
		start, end Point
	}{
		{"far left", Pt(-4e8, 0), Pt(5, 0)},
		{"far steep", Pt(3, 4e8), Pt(3, -4e8)},
		{"far both", Pt(-1e30, -1e30), Pt(1e30, 1e30)},
		{"nan x", Pt(nan, 0), Pt(5, 5)},
		{"nan y", Pt(0, 0), Pt(5, nan)},
		{"infinite", Pt(0, 0), Pt(inf, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewPixelBuffer(10, 10)
			finishesWithin(t, 2*time.Second, func() {
				pb.DrawLineAA(tt.start, tt.end, White)
				pb.DrawLine(tt.start, tt.end, White)
			})
		})
	}
}

func TestDrawLineAAFarEndpointMatchesNear(t *testing.T) {
	// A horizontal line from far off the left edge lights row 3 across the
	// whole buffer, exactly like one starting just outside it.
	far := NewPixelBuffer(10, 6)
	far.Clear(Black)
	far.DrawLineAA(Pt(-4e6, 3), Pt(20, 3), White)

	near := NewPixelBuffer(10, 6)
	near.Clear(Black)
	near.DrawLineAA(Pt(-5, 3), Pt(20, 3), White)

	if !slices.Equal(far.Buffer(), near.Buffer()) {
		t.Error("far and near starting points drew different pixels")
	}
	for x := 0; x < 10; x++ {
		if got := far.Pixel(x, 3); got != White {
			t.Errorf("pixel (%d, 3) = %v, want White", x, got)
		}
	}
}

func TestDrawLineNonFiniteDrawsNothing(t *testing.T) {
	pb := NewPixelBuffer(10, 10)
	pb.Clear(Black)
	before := slices.Clone(pb.Buffer())

	nan := float32(math.NaN())
	pb.DrawLineAA(Pt(nan, 0), Pt(5, 5), White)
	pb.DrawLine(Pt(nan, 0), Pt(5, 5), White)

	if !slices.Equal(pb.Buffer(), before) {
		t.Error("line with a NaN endpoint modified the buffer")
	}
}

func TestDrawLineClippedMatchesInside(t *testing.T) {
	pb := NewPixelBuffer(10, 10)
	pb.Clear(Black)
	pb.DrawLine(Pt(-1e6, 4), Pt(1e6, 4), Red)

	for x := 0; x < 10; x++ {
		if got := pb.Pixel(x, 4); got != Red {
			t.Errorf("pixel (%d, 4) = %v, want Red", x, got)
		}
	}
	if n := len(litPixels(pb, Black)); n != 10 {
		t.Errorf("lit %d pixels, want 10", n)
	}
}
