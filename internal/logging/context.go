package logging

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger returns a context carrying l. The HTTP middleware uses this to
// hand handlers a logger already annotated with the request method and path.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, l)
}

// From returns the logger carried by ctx. Requests that never passed through
// the logging middleware, and background work, fall back to the process-wide
// default so log calls are always safe.
func From(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}
