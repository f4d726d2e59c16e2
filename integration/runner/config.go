// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults used by DefaultConfig.
const (
	DefaultTitle     = "2D Canvas"
	DefaultWidth     = 640
	DefaultHeight    = 360
	DefaultFrameRate = 60
)

// MaxFrameRate is the highest frame rate whose frame period is still a
// positive time.Duration.
const MaxFrameRate = int(time.Second)

// Configuration errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("runner: invalid dimensions")

	// ErrInvalidFrameRate is returned when the frame rate is not positive or
	// exceeds MaxFrameRate.
	ErrInvalidFrameRate = errors.New("runner: invalid frame rate")

	// ErrUnknownLoopMode is returned when a loop mode name is not recognized.
	ErrUnknownLoopMode = errors.New("runner: unknown loop mode")

	// ErrUnknownConfigKey is returned when a config file sets a key that
	// Config does not have.
	ErrUnknownConfigKey = errors.New("runner: unknown config key")
)

// LoopMode selects how often the sketch is updated and drawn.
type LoopMode int

const (
	// Continuous updates and draws the sketch on every frame.
	Continuous LoopMode = iota

	// SingleFrame updates and draws the sketch once.
	SingleFrame
)

// String returns the config-file spelling of the mode.
func (m LoopMode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case SingleFrame:
		return "single"
	default:
		return fmt.Sprintf("LoopMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m LoopMode) MarshalText() ([]byte, error) {
	switch m {
	case Continuous, SingleFrame:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownLoopMode, int(m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts "continuous" and "single" (or "single-frame"), case-insensitively.
func (m *LoopMode) UnmarshalText(text []byte) error {
	mode, err := ParseLoopMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseLoopMode parses a loop mode name.
func ParseLoopMode(s string) (LoopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuous":
		return Continuous, nil
	case "single", "single-frame", "singleframe":
		return SingleFrame, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLoopMode, s)
}

// Config holds the window and loop settings of a sketch.
//
// A sketch may change any field from its Setup method; the runner
// validates the result afterwards.
type Config struct {
	Title     string   `toml:"title"`
	Width     int      `toml:"width"`
	Height    int      `toml:"height"`
	FrameRate int      `toml:"frame_rate"`
	Loop      LoopMode `toml:"loop"`
}

// DefaultConfig returns a 640x360 window titled "2D Canvas" running
// continuously at 60 frames per second.
func DefaultConfig() Config {
	return Config{
		Title:     DefaultTitle,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FrameRate: DefaultFrameRate,
		Loop:      Continuous,
	}
}

// Size sets the canvas dimensions.
func (c *Config) Size(width, height int) {
	c.Width, c.Height = width, height
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.FrameRate <= 0 || c.FrameRate > MaxFrameRate {
		return fmt.Errorf("%w: %d", ErrInvalidFrameRate, c.FrameRate)
	}
	switch c.Loop {
	case Continuous, SingleFrame:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownLoopMode, int(c.Loop))
	}
	return nil
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their DefaultConfig values.
//
// Example file:
//
//	title = "Rotating Ellipse"
//	width = 640
//	height = 360
//	frame_rate = 60
//	loop = "continuous"
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("runner: load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("runner: load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig is like LoadConfig but reads the TOML document from data.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("runner: parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("runner: parse config: %w", err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: %s", ErrUnknownConfigKey, strings.Join(keys, ", "))
}
