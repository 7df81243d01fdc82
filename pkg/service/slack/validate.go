package slack

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// MaxMessageLength is the longest message text Slack accepts
	MaxMessageLength = 40000
	// MaxQueryLength caps search queries before they are sent
	MaxQueryLength = 500
)

var (
	channelIDPattern = regexp.MustCompile(`^[CDG][A-Z0-9]+$`)
	userIDPattern    = regexp.MustCompile(`^[UWB][A-Z0-9]+$`)
	tsPattern        = regexp.MustCompile(`^\d{10}\.\d{6}$`)
)

// ValidateToken checks that token is a Slack user token. The token value is
// never included in the returned error.
func ValidateToken(token string) error {
	switch {
	case token == "":
		return ErrTokenRequired
	case strings.HasPrefix(token, "xoxb-"):
		return ErrBotTokenNotSupported
	case strings.HasPrefix(token, "xoxp-"), strings.HasPrefix(token, "xoxe.xoxp-"):
		return nil
	default:
		return ErrInvalidToken
	}
}

func validateChannelID(channelID string) error {
	if !channelIDPattern.MatchString(channelID) {
		return goerr.Wrap(ErrInvalidInput, "channel ID must start with C, D or G followed by upper case letters or digits",
			goerr.V("channel_id", channelID))
	}
	return nil
}

func validateUserID(userID string) error {
	if !userIDPattern.MatchString(userID) {
		return goerr.Wrap(ErrInvalidInput, "user ID must start with U, W or B followed by upper case letters or digits",
			goerr.V("user_id", userID))
	}
	return nil
}

// validateTS checks a message timestamp such as "1700000000.123456"
func validateTS(field, ts string) error {
	if !tsPattern.MatchString(ts) {
		return goerr.Wrap(ErrInvalidInput, field+" must be a Slack timestamp like 1700000000.123456",
			goerr.V(field, ts))
	}
	return nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return goerr.Wrap(ErrInvalidInput, "message text is empty")
	}
	if n := utf8.RuneCountInString(text); n > MaxMessageLength {
		return goerr.Wrap(ErrInvalidInput, "message text is too long",
			goerr.V("length", n),
			goerr.V("max", MaxMessageLength))
	}
	return nil
}

// sanitizeQuery flattens line breaks and caps the query length
func sanitizeQuery(query string) string {
	query = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(query)
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) > MaxQueryLength {
		query = string([]rune(query)[:MaxQueryLength])
	}
	return query
}

// clampLimit returns def for non-positive values and maxLimit for values above it
func clampLimit(limit, def, maxLimit int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
