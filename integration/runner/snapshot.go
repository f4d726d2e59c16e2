// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when a snapshot path has an extension
// other than .png or .bmp.
var ErrUnsupportedFormat = errors.New("runner: unsupported snapshot format")

// Snapshot returns a copy of the canvas as an image.RGBA.
func (r *Runner) Snapshot() (*image.RGBA, error) {
	if r.closed {
		return nil, ErrClosed
	}
	return r.canvas.PixelBuffer().ToRGBA(), nil
}

// SaveSnapshot writes the canvas to path. The format follows the file
// extension: .png or .bmp.
func (r *Runner) SaveSnapshot(path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	img, err := r.Snapshot()
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("runner: encode %s: %w", path, err)
	}
	return f.Close()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
