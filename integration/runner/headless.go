// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/sketch"
)

// RunHeadless steps r at its configured frame rate without presenting it.
//
// It returns nil once frames frames have been drawn (0 means no limit) or
// once a SingleFrame sketch has drawn its frame, and ctx.Err() if ctx is
// cancelled first.
func RunHeadless(ctx context.Context, r *Runner, frames uint64) error {
	if r.closed {
		return ErrClosed
	}

	d := time.Second / time.Duration(r.cfg.FrameRate)
	if d <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameRate, r.cfg.FrameRate)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	sketch.Logger().Info("headless loop started", "frame_rate", r.cfg.FrameRate, "frames", frames)

	start := r.frames
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if _, err := r.Step(); err != nil {
				return err
			}
			if r.Done() || (frames > 0 && r.frames-start >= frames) {
				sketch.Logger().Info("headless loop stopped", "frames", r.frames-start)
				return nil
			}
		}
	}
}
