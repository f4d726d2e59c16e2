package main

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/integration/runner"
)

// rotatingEllipse moves a stroked circle around the center of the canvas.
type rotatingEllipse struct {
	angle float32
}

func (s *rotatingEllipse) Setup(cfg *runner.Config) {
	cfg.Title = "Rotating Ellipse"
	sketch.Logger().Info("setting up the application")
}

func (s *rotatingEllipse) Update() {
	s.angle += 0.0025
	if s.angle > 2*math32.Pi {
		s.angle -= 2 * math32.Pi
	}
}

func (s *rotatingEllipse) Draw(c *sketch.Canvas) {
	c.Background(sketch.Black)
	c.SetStroke(sketch.White)
	c.SetStrokeWeight(2)

	cx := float32(c.Width()) / 2
	cy := float32(c.Height()) / 2
	const radius = 90

	x := cx + radius*math32.Cos(s.angle)
	y := cy + radius*math32.Sin(s.angle)

	c.Ellipse(x, y, 50, 50)
}
