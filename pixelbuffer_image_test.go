package sketch

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestPixelBufferImage(t *testing.T) {
	pb := NewPixelBuffer(6, 4)

	if got := pb.Bounds(); got != image.Rect(0, 0, 6, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(6,4)", got)
	}
	if pb.ColorModel() != ARGBModel {
		t.Error("ColorModel() is not ARGBModel")
	}

	pb.Set(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	if got := pb.Pixel(2, 1); got != NewColor(10, 20, 30, 40) {
		t.Errorf("Set then Pixel = %v, want (10, 20, 30, 40)", got)
	}
	if got := pb.At(2, 1); got != NewColor(10, 20, 30, 40) {
		t.Errorf("At(2, 1) = %v, want (10, 20, 30, 40)", got)
	}
	if got := pb.At(-1, 0); got != Transparent {
		t.Errorf("At(-1, 0) = %v, want Transparent", got)
	}
}

func TestARGBModel(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"color passthrough", NewColor(1, 2, 3, 4), NewColor(1, 2, 3, 4)},
		{"nrgba", color.NRGBA{R: 1, G: 2, B: 3, A: 4}, NewColor(1, 2, 3, 4)},
		{"opaque rgba", color.RGBA{R: 255, G: 128, A: 255}, NewColor(255, 128, 0, 255)},
		{"gray", color.Gray{Y: 77}, NewColor(77, 77, 77, 255)},
		{"transparent", color.Transparent, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ARGBModel.Convert(tt.in); got != tt.want {
				t.Errorf("Convert(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDrawIntoPixelBuffer(t *testing.T) {
	pb := NewPixelBuffer(5, 5)
	pb.Clear(Black)

	blue := image.NewUniform(color.RGBA{B: 255, A: 255})
	draw.Draw(pb, image.Rect(1, 1, 3, 3), blue, image.Point{}, draw.Src)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := Black
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = Blue
			}
			if got := pb.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCopyRGBA(t *testing.T) {
	pb := NewPixelBuffer(2, 1)
	pb.SetPixel(0, 0, NewColor(255, 0, 0, 128))
	pb.SetPixel(1, 0, NewColor(10, 20, 30, 255))

	dst := make([]byte, 8)
	if n := pb.CopyRGBA(dst); n != 2 {
		t.Fatalf("CopyRGBA = %d, want 2", n)
	}

	want := []byte{128, 0, 0, 128, 10, 20, 30, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}

	short := make([]byte, 6)
	if n := pb.CopyRGBA(short); n != 1 {
		t.Errorf("CopyRGBA(short) = %d, want 1", n)
	}
}

func TestToRGBA(t *testing.T) {
	pb := NewPixelBuffer(3, 2)
	pb.Clear(White)
	pb.SetPixel(2, 1, Red)

	img := pb.ToRGBA()
	if img.Bounds() != pb.Bounds() {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), pb.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("RGBAAt(2, 1) = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("RGBAAt(0, 0) = %v, want white", got)
	}
}
