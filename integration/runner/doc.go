// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package runner drives a sketch: an application with a setup step and a
// per-frame update and draw.
//
// The runner owns the sketch.Canvas and decides when the sketch's Update
// and Draw are called. Presenting the canvas is left to a host:
//
//	sketch (Setup/Update/Draw) -> Runner -> Canvas buffer -> host
//
// Three hosts exist: RunHeadless in this package, which never opens a
// window, integration/ebitenhost for a desktop window and
// integration/termhost for a terminal.
//
// # Usage
//
//	r, err := runner.New(&mySketch{}, runner.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	if err := runner.RunHeadless(ctx, r, 120); err != nil {
//	    log.Fatal(err)
//	}
//	_ = r.SaveSnapshot("frame.png")
//
// # Loop modes
//
// In Continuous mode every Step calls Update then Draw. In SingleFrame mode
// only the first Step does; later steps leave the canvas as it is, so the
// host keeps presenting the same picture until it closes.
//
// # Thread Safety
//
// Runner is NOT safe for concurrent use. Hosts call it from one goroutine.
package runner
