package main

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/integration/runner"
)

func TestRotatingEllipseSetup(t *testing.T) {
	r := runner.MustNew(&rotatingEllipse{}, runner.DefaultConfig())
	if got := r.Config().Title; got != "Rotating Ellipse" {
		t.Errorf("Title = %q, want Rotating Ellipse", got)
	}
}

func TestRotatingEllipseWraps(t *testing.T) {
	s := &rotatingEllipse{angle: 2*math32.Pi - 0.001}
	s.Update()
	if s.angle < 0 || s.angle > 0.01 {
		t.Errorf("angle after wrap = %v", s.angle)
	}
}

func TestRotatingEllipseDraw(t *testing.T) {
	c := sketch.NewCanvas(640, 360)
	s := &rotatingEllipse{}
	s.Draw(c)

	pb := c.PixelBuffer()
	// At angle 0 the 50x50 box's top-left is (410, 180), so the outline
	// passes through (435, 180) and (410, 205).
	for _, p := range [][2]int{{435, 180}, {410, 205}, {460, 205}} {
		if got := pb.Pixel(p[0], p[1]); got != sketch.White {
			t.Errorf("outline pixel %v = %v, want White", p, got)
		}
	}
	if got := pb.Pixel(435, 205); got != sketch.Black {
		t.Errorf("center = %v, want Black", got)
	}
	if got := pb.Pixel(0, 0); got != sketch.Black {
		t.Errorf("background = %v, want Black", got)
	}
}
