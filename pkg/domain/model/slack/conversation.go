package slack

import "github.com/secmon-lab/hermes/pkg/domain/types"

// Conversation is a channel, private channel, direct message or group DM
type Conversation struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name,omitempty"`
	Type     types.ConversationType `json:"type"`
	IsMember bool                   `json:"is_member"`

	// UserID and UserName are set for direct messages only
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
}
