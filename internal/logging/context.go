package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey carries the command logger through a context.
type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger. main attaches the default
// logger before executing the root command; tests attach one writing to a
// buffer.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached with WithLogger, falling back to
// Default when ctx is nil or carries none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
