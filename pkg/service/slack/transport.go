package slack

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"github.com/slack-go/slack"
)

const (
	// DefaultMaxAttempts bounds the number of calls made for one operation under rate limiting
	DefaultMaxAttempts = 5
	// DefaultBaseDelay is the first fallback delay when Slack gives no Retry-After hint
	DefaultBaseDelay = time.Second
	// DefaultMaxRetryAfter caps how long a single Retry-After hint can make us wait
	DefaultMaxRetryAfter = time.Minute
	// DefaultCallTimeout is the wall clock budget of a single API call
	DefaultCallTimeout = 30 * time.Second
)

// transport runs Slack API calls with bounded retries on rate limiting
type transport struct {
	maxAttempts   int
	baseDelay     time.Duration
	maxRetryAfter time.Duration
	callTimeout   time.Duration
	sleep         func(ctx context.Context, d time.Duration) error
}

// sleepContext waits for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// call runs fn, retrying while Slack reports rate limiting. Any other failure
// is returned on the first attempt as *APIError.
func (x *transport) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	logger := logging.From(ctx)

	for attempt := 0; ; attempt++ {
		err := x.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return goerr.Wrap(err, "Slack API call aborted", goerr.V("method", method))
		}

		hint, hasHint, limited := rateLimitHint(err)
		if !limited {
			return newAPIError(method, err)
		}

		if attempt+1 >= x.maxAttempts {
			return &APIError{
				Kind:     ErrorKindRateLimited,
				Code:     codeRateLimited,
				Method:   method,
				Attempts: attempt + 1,
				cause:    err,
			}
		}

		delay := x.backoff(attempt, hint, hasHint)
		logger.Warn("Slack API rate limited, retrying",
			"method", method,
			"attempt", attempt+1,
			"delay", delay.String(),
			"server_hint", hasHint,
		)

		if err := x.sleep(ctx, delay); err != nil {
			return goerr.Wrap(err, "retry wait aborted", goerr.V("method", method))
		}
	}
}

func (x *transport) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	if x.callTimeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, x.callTimeout)
	defer cancel()
	return fn(callCtx)
}

// backoff returns the wait before the next attempt. A server hint wins over
// the exponential fallback; both are capped by maxRetryAfter when it is set.
func (x *transport) backoff(attempt int, hint time.Duration, hasHint bool) time.Duration {
	delay := hint
	if !hasHint {
		delay = exponential(x.baseDelay, attempt)
	}
	if delay < 0 {
		delay = 0
	}
	if x.maxRetryAfter > 0 && delay > x.maxRetryAfter {
		delay = x.maxRetryAfter
	}
	return delay
}

// exponential returns base * 2^attempt, saturating at the largest Duration
func exponential(base time.Duration, attempt int) time.Duration {
	if base <= 0 || attempt < 0 {
		return base
	}
	if attempt >= 63 || base > time.Duration(math.MaxInt64>>attempt) {
		return time.Duration(math.MaxInt64)
	}
	return base << attempt
}

// rateLimitHint reports whether err is a rate limit signal and, if Slack sent
// one, the Retry-After hint.
func rateLimitHint(err error) (hint time.Duration, hasHint bool, limited bool) {
	var rle *slack.RateLimitedError
	if errors.As(err, &rle) {
		return rle.RetryAfter, true, true
	}

	var sce slack.StatusCodeError
	if errors.As(err, &sce) && sce.Code == http.StatusTooManyRequests {
		return 0, false, true
	}

	var ser slack.SlackErrorResponse
	if errors.As(err, &ser) && kindOfCode(ser.Err) == ErrorKindRateLimited {
		return 0, false, true
	}

	return 0, false, false
}

// newAPIError classifies a non rate limit failure
func newAPIError(method string, err error) *APIError {
	apiErr := &APIError{
		Method: method,
		cause:  err,
	}

	var ser slack.SlackErrorResponse
	var sce slack.StatusCodeError
	switch {
	case errors.As(err, &ser):
		apiErr.Code = ser.Err
		apiErr.Kind = kindOfCode(ser.Err)
	case errors.As(err, &sce):
		apiErr.Code = http.StatusText(sce.Code)
		apiErr.Status = sce.Code
		apiErr.Kind = ErrorKindServer
	case errors.Is(err, context.DeadlineExceeded):
		apiErr.Code = "timeout"
		apiErr.Kind = ErrorKindTimeout
	default:
		apiErr.Code = "network_error"
		apiErr.Kind = ErrorKindNetwork
	}

	return apiErr
}
