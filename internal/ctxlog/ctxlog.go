// Package ctxlog passes a *slog.Logger through context.Context so deep call
// sites log through the instance the application configured instead of the
// process-wide default.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with our context entry.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, falling back to
// slog.Default() when the context carries none. The fallback keeps bare
// contexts usable in tests.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
