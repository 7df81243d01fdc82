package slack

// SendResult is the outcome of posting a message. A failed send is reported
// here instead of as an error, and Error is always a plain sentence.
type SendResult struct {
	OK        bool   `json:"ok"`
	ChannelID string `json:"channel_id,omitempty"`
	TS        string `json:"ts,omitempty"`
	Error     string `json:"error,omitempty"`

	// Disabled is set when sending is turned off by configuration
	Disabled bool `json:"disabled,omitempty"`
}

// NewSendFailure builds a failed SendResult
func NewSendFailure(channelID, message string) *SendResult {
	return &SendResult{
		OK:        false,
		ChannelID: channelID,
		Error:     message,
	}
}
