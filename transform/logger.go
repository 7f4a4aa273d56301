package transform

import "log/slog"

// Logger is the minimal logging interface used during transformation.
// It matches the log/slog calling convention so a *slog.Logger can be
// adapted directly, without forcing the dependency on callers.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a Logger that includes the given attributes in each
	// output operation.
	With(args ...any) Logger
}

// NopLogger discards all log output. It is the default when no logger is
// configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NopLogger) Info(string, ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(string, ...any) {}

// Error implements Logger.
func (NopLogger) Error(string, ...any) {}

// With implements Logger.
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter adapts a *slog.Logger to the Logger interface.
type SlogAdapter struct {
	L *slog.Logger
}

// NewSlogAdapter wraps an existing slog.Logger. A nil argument wraps
// slog.Default().
func NewSlogAdapter(l *slog.Logger) SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	return SlogAdapter{L: l}
}

// Debug implements Logger.
func (s SlogAdapter) Debug(msg string, args ...any) { s.L.Debug(msg, args...) }

// Info implements Logger.
func (s SlogAdapter) Info(msg string, args ...any) { s.L.Info(msg, args...) }

// Warn implements Logger.
func (s SlogAdapter) Warn(msg string, args ...any) { s.L.Warn(msg, args...) }

// Error implements Logger.
func (s SlogAdapter) Error(msg string, args ...any) { s.L.Error(msg, args...) }

// With implements Logger.
func (s SlogAdapter) With(args ...any) Logger { return SlogAdapter{L: s.L.With(args...)} }
