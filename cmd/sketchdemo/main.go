// Command sketchdemo runs the rotating-ellipse sketch.
//
// Usage:
//
//	sketchdemo [-host window|term|headless] [-config file.toml] [-frames n] [-out frame.png] [-v]
//
// The window host needs a desktop session. The terminal host needs a
// true-color terminal. The headless host draws -frames frames (or one
// frame for a single-frame sketch) and writes the last one to -out.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/integration/ebitenhost"
	"github.com/gogpu/sketch/integration/runner"
	"github.com/gogpu/sketch/integration/termhost"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sketchdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		host    = flag.String("host", "window", "where to present: window, term or headless")
		config  = flag.String("config", "", "TOML config file")
		frames  = flag.Uint64("frames", 120, "frames to draw in headless mode (0 = until interrupted)")
		out     = flag.String("out", "", "write the last frame to this .png or .bmp file")
		scale   = flag.Int("scale", 1, "window scale factor")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := runner.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = runner.LoadConfig(*config); err != nil {
			return err
		}
	}

	r, err := runner.New(&rotatingEllipse{}, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *host {
	case "window":
		err = ebitenhost.Run(r, ebitenhost.WithScale(*scale))
	case "term":
		var screen tcell.Screen
		if screen, err = tcell.NewScreen(); err == nil {
			err = termhost.Run(ctx, r, screen)
		}
	case "headless":
		err = runner.RunHeadless(ctx, r, *frames)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		return fmt.Errorf("unknown host %q", *host)
	}
	if err != nil {
		return err
	}

	if *out != "" {
		if err := r.SaveSnapshot(*out); err != nil {
			return err
		}
		sketch.Logger().Info("snapshot saved", "path", *out, "frames", r.Frames())
	}
	return nil
}
