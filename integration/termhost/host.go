// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termhost presents a sketch in a terminal using tcell.
//
// Every terminal cell shows two vertically stacked pixels with the upper
// half block rune: the foreground color is the top pixel and the
// background color the bottom one. Canvases larger than the terminal are
// scaled down to fit, keeping their aspect ratio.
package termhost

import (
	"context"
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/integration/runner"
)

// halfBlock is the upper half block, U+2580.
const halfBlock = '▀'

// ErrNilRunner is returned when Run is called without a runner.
var ErrNilRunner = errors.New("termhost: nil runner")

// Run presents r on screen at the sketch's frame rate until ctx is done or
// the user presses Escape, Ctrl-C or q. It initializes screen and
// finalizes it before returning.
//
// A quit key returns nil; a cancelled ctx returns ctx.Err().
func Run(ctx context.Context, r *runner.Runner, screen tcell.Screen) error {
	return run(ctx, r, screen, nil)
}

// run is Run with a hook called once the screen is initialized and
// events are being read.
func run(ctx context.Context, r *runner.Runner, screen tcell.Screen, ready func()) error {
	if r == nil {
		return ErrNilRunner
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once the screen is finalized.
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	cfg := r.Config()
	t := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer t.Stop()

	sketch.Logger().Info("terminal opened", "title", cfg.Title)
	if ready != nil {
		ready()
	}

	var frame *image.RGBA
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			quit, resized := handleEvent(ev)
			if quit {
				sketch.Logger().Info("terminal closed", "frames", r.Frames())
				return nil
			}
			if resized && frame != nil {
				screen.Sync()
				Render(screen, frame)
			}

		case <-t.C:
			if _, err := r.Step(); err != nil {
				return err
			}
			err := r.Present(func(pb *sketch.PixelBuffer) error {
				frame = pb.ToRGBA()
				Render(screen, frame)
				return nil
			})
			if err != nil {
				sketch.Logger().Warn("present failed", "err", err)
			}
		}
	}
}

// handleEvent classifies a terminal event.
func handleEvent(ev tcell.Event) (quit, resized bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, false
		case tcell.KeyRune:
			return ev.Rune() == 'q', false
		}
	case *tcell.EventResize:
		return false, true
	}
	return false, false
}

// Render draws img onto screen with two pixels per cell and shows it.
func Render(screen tcell.Screen, img *image.RGBA) {
	cols, rows := screen.Size()
	screen.Clear()

	src := fit(img, cols, rows*2)
	b := src.Bounds()
	for cy := 0; cy*2 < b.Dy(); cy++ {
		for x := 0; x < b.Dx(); x++ {
			top := src.RGBAAt(b.Min.X+x, b.Min.Y+cy*2)
			var bottom color.RGBA
			if cy*2+1 < b.Dy() {
				bottom = src.RGBAAt(b.Min.X+x, b.Min.Y+cy*2+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
	screen.Show()
}

// fit returns img unchanged if it fits in w x h pixels, and otherwise a
// copy scaled down to fit with the same aspect ratio.
func fit(img *image.RGBA, w, h int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	scale := min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	dw := max(int(float64(b.Dx())*scale), 1)
	dh := max(int(float64(b.Dy())*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
