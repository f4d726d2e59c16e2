// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch"
)

// ErrClosed is returned when operations are attempted on a closed runner.
var ErrClosed = errors.New("runner: runner is closed")

// Sketch is an application drawn frame by frame.
type Sketch interface {
	// Setup is called once, before the canvas exists. It may adjust cfg.
	Setup(cfg *Config)

	// Update advances the sketch's state by one frame.
	Update()

	// Draw renders the current state onto the canvas.
	Draw(c *sketch.Canvas)
}

// Runner owns a sketch's canvas and steps it frame by frame.
//
// Runner is NOT safe for concurrent use.
type Runner struct {
	sketch Sketch
	cfg    Config
	canvas *sketch.Canvas
	frames uint64
	dirty  bool // canvas changed since the host last presented it
	redraw bool // a SingleFrame sketch must draw again after a resize
	closed bool
}

// New calls s.Setup with cfg, validates the result and allocates the
// canvas at the configured size.
func New(s Sketch, cfg Config) (*Runner, error) {
	if s == nil {
		return nil, errors.New("runner: nil sketch")
	}

	s.Setup(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sketch.Logger().Info("sketch ready",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"frame_rate", cfg.FrameRate,
		"loop", cfg.Loop)

	return &Runner{
		sketch: s,
		cfg:    cfg,
		canvas: sketch.NewCanvas(cfg.Width, cfg.Height),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(s Sketch, cfg Config) *Runner {
	r, err := New(s, cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// Config returns the configuration in effect after Setup.
func (r *Runner) Config() Config {
	return r.cfg
}

// Canvas returns the canvas the sketch draws on.
// Returns nil if the runner is closed.
func (r *Runner) Canvas() *sketch.Canvas {
	if r.closed {
		return nil
	}
	return r.canvas
}

// Frames returns how many times the sketch has been drawn.
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Done reports whether further steps would leave the canvas unchanged.
// It is true for a SingleFrame sketch once its frame is drawn, and for a
// closed runner.
func (r *Runner) Done() bool {
	return r.closed || (r.cfg.Loop == SingleFrame && r.frames > 0 && !r.redraw)
}

// Step runs one frame: Update then Draw, unless Done.
// It reports whether the sketch drew.
func (r *Runner) Step() (bool, error) {
	if r.closed {
		return false, ErrClosed
	}
	if r.Done() {
		return false, nil
	}

	r.sketch.Update()
	r.sketch.Draw(r.canvas)
	r.frames++
	r.dirty = true
	r.redraw = false

	sketch.Logger().Debug("frame drawn", "frame", r.frames)
	return true, nil
}

// IsDirty reports whether the canvas changed since the last Present.
func (r *Runner) IsDirty() bool {
	return r.dirty
}

// Present hands the canvas buffer to fn if it changed since the last call,
// then clears the dirty flag. fn must not keep the buffer.
func (r *Runner) Present(fn func(pb *sketch.PixelBuffer) error) error {
	if r.closed {
		return ErrClosed
	}
	if !r.dirty {
		return nil
	}
	if err := fn(r.canvas.PixelBuffer()); err != nil {
		return fmt.Errorf("runner: present failed: %w", err)
	}
	r.dirty = false
	return nil
}

// Resize changes the canvas dimensions. The canvas is cleared and marked
// dirty; a SingleFrame sketch is drawn again on the next Step.
func (r *Runner) Resize(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if r.cfg.Width == width && r.cfg.Height == height {
		return nil
	}

	r.canvas.Resize(width, height)
	r.cfg.Width, r.cfg.Height = width, height
	r.redraw = true
	r.dirty = true
	return nil
}

// Close releases the canvas. Close is idempotent.
func (r *Runner) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.canvas = nil
	sketch.Logger().Info("sketch closed")
	return nil
}
