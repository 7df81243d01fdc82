package slack

import (
	"context"
	"time"
)

var (
	WithSleep = withSleep
	WithClock = withClock

	SanitizeQuery = sanitizeQuery
	ClampLimit    = clampLimit
	RankScore     = rankScore
	SleepContext  = sleepContext
)

// TransportForTest wraps the retrying transport for tests
type TransportForTest struct {
	tr *transport
}

func NewTransportForTest(maxAttempts int, baseDelay, maxRetryAfter time.Duration, sleep func(ctx context.Context, d time.Duration) error) *TransportForTest {
	return &TransportForTest{
		tr: &transport{
			maxAttempts:   maxAttempts,
			baseDelay:     baseDelay,
			maxRetryAfter: maxRetryAfter,
			sleep:         sleep,
		},
	}
}

func (x *TransportForTest) Call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	return x.tr.call(ctx, method, fn)
}

func Paginate[T any](ctx context.Context, x *TransportForTest, limit, pageCap int, fetch func(ctx context.Context, cursor string, pageSize int) ([]T, string, error)) ([]T, error) {
	return paginate[T](ctx, x.tr, "test.list", limit, pageCap, fetch)
}

func ValidateChannelID(channelID string) error { return validateChannelID(channelID) }
func ValidateTS(field, ts string) error { return validateTS(field, ts) }
func ValidateText(text string) error { return validateText(text) }
