package slack

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration and input validation
var (
	ErrTokenRequired        = errors.New("Slack user token is required")
	ErrBotTokenNotSupported = errors.New("bot tokens are not supported, configure a Slack user token (xoxp-) instead")
	ErrInvalidToken         = errors.New("Slack token is not a user token, expected the xoxp- prefix")
	ErrInvalidInput         = errors.New("invalid input")
)

// ErrorKind classifies errors returned by the Slack API
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindInvalidAuth
	ErrorKindMissingScope
	ErrorKindChannelNotFound
	ErrorKindThreadNotFound
	ErrorKindUserNotFound
	ErrorKindNotInChannel
	ErrorKindArchived
	ErrorKindRestricted
	ErrorKindMessageTooLong
	ErrorKindNoText
	ErrorKindRateLimited
	ErrorKindServer
	ErrorKindTimeout
	ErrorKindNetwork
)

// codeRateLimited is the error code recorded when retries are exhausted
const codeRateLimited = "ratelimited"

var errorKindByCode = map[string]ErrorKind{
	"invalid_auth":           ErrorKindInvalidAuth,
	"not_authed":             ErrorKindInvalidAuth,
	"account_inactive":       ErrorKindInvalidAuth,
	"token_revoked":          ErrorKindInvalidAuth,
	"token_expired":          ErrorKindInvalidAuth,
	"missing_scope":          ErrorKindMissingScope,
	"not_allowed_token_type": ErrorKindMissingScope,
	"channel_not_found":      ErrorKindChannelNotFound,
	"thread_not_found":       ErrorKindThreadNotFound,
	"message_not_found":      ErrorKindThreadNotFound,
	"user_not_found":         ErrorKindUserNotFound,
	"users_not_found":        ErrorKindUserNotFound,
	"not_in_channel":         ErrorKindNotInChannel,
	"is_archived":            ErrorKindArchived,
	"restricted_action":      ErrorKindRestricted,
	"no_permission":          ErrorKindRestricted,
	"access_denied":          ErrorKindRestricted,
	"cant_post":              ErrorKindRestricted,
	"msg_too_long":           ErrorKindMessageTooLong,
	"no_text":                ErrorKindNoText,
	"ratelimited":            ErrorKindRateLimited,
	"rate_limited":           ErrorKindRateLimited,
	"fatal_error":            ErrorKindServer,
	"internal_error":         ErrorKindServer,
	"service_unavailable":    ErrorKindServer,
	"request_timeout":        ErrorKindTimeout,
}

// kindOfCode maps a Slack error code to its ErrorKind
func kindOfCode(code string) ErrorKind {
	if kind, ok := errorKindByCode[code]; ok {
		return kind
	}
	return ErrorKindUnknown
}

// APIError is returned by every Service operation that reached the Slack API
// and failed. Error() yields a plain sentence for end users; Code keeps the
// raw Slack error code for programmatic handling.
type APIError struct {
	Kind   ErrorKind
	Code   string
	Method string

	// Attempts is the number of calls made, set for ErrorKindRateLimited
	Attempts int
	// Status is the HTTP status, set for ErrorKindServer
	Status int

	cause error
}

func (e *APIError) Error() string {
	return e.Message()
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Message returns the human readable description of the error
func (e *APIError) Message() string {
	switch e.Kind {
	case ErrorKindInvalidAuth:
		return "Slack rejected the credential; check that the configured user token is valid and has not been revoked"
	case ErrorKindMissingScope:
		return "the Slack token lacks a permission needed for this operation; re-authorize the app with the required scopes"
	case ErrorKindChannelNotFound:
		return "channel not found; check the channel ID and that the user can access it"
	case ErrorKindThreadNotFound:
		return "thread not found; check the thread timestamp"
	case ErrorKindUserNotFound:
		return "user not found"
	case ErrorKindNotInChannel:
		return "the user is not a member of this channel; join it before reading or posting"
	case ErrorKindArchived:
		return "the channel is archived"
	case ErrorKindRestricted:
		return "this action is not permitted for the user in this workspace"
	case ErrorKindMessageTooLong:
		return "the message text is too long"
	case ErrorKindNoText:
		return "the message text is empty"
	case ErrorKindRateLimited:
		return fmt.Sprintf("Slack rate limit exceeded after %d attempts; try again later", e.Attempts)
	case ErrorKindServer:
		return fmt.Sprintf("Slack returned a server error (HTTP %d); try again later", e.Status)
	case ErrorKindTimeout:
		return "the Slack API did not respond in time; try again later"
	case ErrorKindNetwork:
		return "could not reach the Slack API; check network connectivity"
	default:
		return fmt.Sprintf("remote API error: %s", e.Code)
	}
}

// KindOf returns the ErrorKind of err, or ErrorKindUnknown if err is not an APIError
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ErrorKindUnknown
}

// UserMessage returns a sentence describing err that is safe to show to end users
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if errors.Is(err, ErrInvalidInput) {
		return err.Error()
	}
	for _, sentinel := range []error{ErrTokenRequired, ErrBotTokenNotSupported, ErrInvalidToken} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "the Slack request failed unexpectedly"
}
