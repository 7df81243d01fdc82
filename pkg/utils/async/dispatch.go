package async

import (
	"context"

	"github.com/secmon-lab/hermes/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine with a background context that
// keeps the caller's logger. Errors and panics are logged, not returned.
// done, if not nil, is closed when handler returns.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) (done <-chan struct{}) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	ch := make(chan struct{})

	go func() {
		defer close(ch)
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", err.Error())
		}
	}()

	return ch
}
