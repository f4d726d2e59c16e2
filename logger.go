package sketch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so slog skips
// building the record and disabled logging costs a single atomic load.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var silent = slog.New(discardHandler{})

// current is the logger shared by sketch and its integration packages.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes sketch's log output to l. Passing nil silences it again,
// which is also the initial state.
//
// Levels:
//   - [slog.LevelDebug]: canvas allocation and resizing, frames drawn
//   - [slog.LevelInfo]: sketch and host lifecycle (setup, window opened, loop stopped)
//   - [slog.LevelWarn]: a frame the host could not present
//
// SetLogger may be called from any goroutine, including while drawing.
//
//	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}
