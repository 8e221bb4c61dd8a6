package srp

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// be called while a draw is in flight without synchronization.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the diagnostics logger for srp.
//
// By default srp produces no log output. This is independent of the
// message callback (see SetMessageCallback): the message callback is part
// of the rendering contract and reports conditions a caller of DrawBuffer
// needs to observe (OOB draw ranges, dropped vertices, failed texture
// loads), while this logger is an opt-in operability aid for
// library-internal lifecycle events. Pass nil to restore the default silent
// behavior.
//
// The only event srp logs is a [slog.LevelInfo] "texture decoded" record
// (path and format) from NewTexture; nothing is logged at other levels.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current diagnostics logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
