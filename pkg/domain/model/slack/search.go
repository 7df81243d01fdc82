package slack

// SearchResult is a single message hit of a workspace search
type SearchResult struct {
	ChannelID   string  `json:"channel_id"`
	ChannelName string  `json:"channel_name,omitempty"`
	TS          string  `json:"ts"`
	UserID      string  `json:"user_id,omitempty"`
	UserName    string  `json:"user_name,omitempty"`
	Text        string  `json:"text"`
	Timestamp   string  `json:"timestamp"`
	Permalink   string  `json:"permalink,omitempty"`
	Score       float64 `json:"score"`
}
