package tool

import (
	"context"
	"fmt"
)

// UpdateFunc receives progress messages while a tool runs, so that the
// caller can show what the agent is doing.
type UpdateFunc func(ctx context.Context, message string)

type contextKey struct{}

// WithUpdate returns a new context that carries the given UpdateFunc.
func WithUpdate(ctx context.Context, fn UpdateFunc) context.Context {
	return context.WithValue(ctx, contextKey{}, fn)
}

// Update reports message to the UpdateFunc in ctx, if any.
func Update(ctx context.Context, message string) {
	if fn, ok := ctx.Value(contextKey{}).(UpdateFunc); ok {
		fn(ctx, message)
	}
}

// Updatef is Update with fmt.Sprintf formatting.
func Updatef(ctx context.Context, format string, args ...any) {
	if _, ok := ctx.Value(contextKey{}).(UpdateFunc); !ok {
		return
	}
	Update(ctx, fmt.Sprintf(format, args...))
}
