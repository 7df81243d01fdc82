package slack

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the layout of human readable message times
const TimestampLayout = "2006-01-02 15:04:05 MST"

// Message is a channel or thread message with its markup rewritten
type Message struct {
	TS        string `json:"ts"`
	UserID    string `json:"user_id,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`

	ThreadTS   string `json:"thread_ts,omitempty"`
	ReplyCount int    `json:"reply_count,omitempty"`
	IsParent   bool   `json:"is_parent,omitempty"`
}

// ParseTS converts a Slack message timestamp ("1700000000.123456") to time.
// It returns false for malformed input.
func ParseTS(ts string) (time.Time, bool) {
	secPart, fracPart, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	var nsec int64
	if fracPart != "" {
		// right-pad to nanoseconds
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		fracPart += strings.Repeat("0", 9-len(fracPart))
		nsec, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
	}

	return time.Unix(sec, nsec).UTC(), true
}

// FormatTS renders a Slack timestamp for humans. Malformed input is returned as is.
func FormatTS(ts string) string {
	t, ok := ParseTS(ts)
	if !ok {
		return ts
	}
	return t.Format(TimestampLayout)
}
