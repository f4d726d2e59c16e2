// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost presents a sketch in a desktop window using ebiten.
//
// The window runs at the sketch's frame rate. Each tick steps the runner
// and, when the canvas changed, uploads it to a texture that is drawn at
// the window's logical size. Pressing Escape or closing the window ends
// the loop.
package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/integration/runner"
)

// ErrNilRunner is returned when Run is called without a runner.
var ErrNilRunner = errors.New("ebitenhost: nil runner")

// Option configures the window.
type Option func(*options)

type options struct {
	scale     int
	resizable bool
}

// WithScale multiplies the initial window size by n. Values below 1 are
// ignored.
func WithScale(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.scale = n
		}
	}
}

// WithResizable lets the user resize the window. The canvas keeps its
// size and is scaled to fit.
func WithResizable(resizable bool) Option {
	return func(o *options) {
		o.resizable = resizable
	}
}

// Run opens a window for r and blocks until it closes.
// A window closed by the user or by Escape returns nil.
func Run(r *runner.Runner, opts ...Option) error {
	if r == nil {
		return ErrNilRunner
	}
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := r.Config()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*o.scale, cfg.Height*o.scale)
	ebiten.SetTPS(cfg.FrameRate)
	if o.resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	sketch.Logger().Info("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	g := newGame(r, func() bool { return ebiten.IsKeyPressed(ebiten.KeyEscape) })
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}

	sketch.Logger().Info("window closed", "frames", r.Frames())
	return err
}

// game adapts a runner to ebiten.Game.
type game struct {
	r       *runner.Runner
	quit    func() bool
	img     *ebiten.Image
	scratch []byte
}

func newGame(r *runner.Runner, quit func() bool) *game {
	return &game{r: r, quit: quit}
}

func (g *game) Update() error {
	if g.quit() {
		return ebiten.Termination
	}
	_, err := g.r.Step()
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	if err := g.r.Present(g.upload); err != nil {
		sketch.Logger().Warn("present failed", "err", err)
	}
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

// upload copies the canvas into the window texture, recreating the
// texture when the canvas size changed.
func (g *game) upload(pb *sketch.PixelBuffer) error {
	w, h := pb.Width(), pb.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.scratch = make([]byte, 4*w*h)
	}
	pb.CopyRGBA(g.scratch)
	g.img.WritePixels(g.scratch)
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.r.Config()
	return cfg.Width, cfg.Height
}
