package slack

import (
	"context"

	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/domain/types"
)

// Service provides read and write access to a Slack workspace on behalf of a user
type Service interface {
	// ListConversations lists channels, private channels, DMs and group DMs
	// visible to the user. DM counterparts are resolved to display names.
	ListConversations(ctx context.Context, input ListConversationsInput) ([]*model.Conversation, error)

	// ListUsers returns workspace members from the cached directory
	ListUsers(ctx context.Context, input ListUsersInput) ([]*model.User, error)

	// GetMessages returns recent messages of a channel, newest first, with
	// deleted messages dropped and markup rewritten
	GetMessages(ctx context.Context, input GetMessagesInput) ([]*model.Message, error)

	// GetThread returns a thread's parent and replies in chronological order
	GetThread(ctx context.Context, input GetThreadInput) ([]*model.Message, error)

	// SendMessage posts a message with link and media previews disabled.
	// Failures are reported in the result, never as an error.
	SendMessage(ctx context.Context, input SendMessageInput) *model.SendResult

	// SearchMessages runs a workspace message search
	SearchMessages(ctx context.Context, input SearchInput) ([]*model.SearchResult, error)

	// ResolveUser returns the display name for userID, or userID itself when
	// it cannot be resolved
	ResolveUser(ctx context.Context, userID string) string

	// RefreshDirectory drops the cached user directory and builds it again
	RefreshDirectory(ctx context.Context) error
}

// ListConversationsInput holds parameters of ListConversations
type ListConversationsInput struct {
	// Types filters conversation kinds. Empty means all kinds.
	Types           []types.ConversationType
	ExcludeArchived bool
	Limit           int
}

// ListUsersInput holds parameters of ListUsers
type ListUsersInput struct {
	Limit       int
	ExcludeBots bool
}

// GetMessagesInput holds parameters of GetMessages
type GetMessagesInput struct {
	ChannelID string
	Limit     int
	// Oldest and Latest bound the time range by message timestamp (optional)
	Oldest         string
	Latest         string
	IncludeThreads bool
}

// GetThreadInput holds parameters of GetThread
type GetThreadInput struct {
	ChannelID string
	ThreadTS  string
	Limit     int
}

// SendMessageInput holds parameters of SendMessage
type SendMessageInput struct {
	ChannelID string
	Text      string
	// ThreadTS posts the message as a thread reply when set
	ThreadTS string
}

// SearchInput holds parameters of SearchMessages
type SearchInput struct {
	Query string
	Limit int
}
