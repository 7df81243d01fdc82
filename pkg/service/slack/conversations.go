package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/domain/types"
	"github.com/slack-go/slack"
)

const (
	// conversationsPageSize is the maximum page size of conversations.list
	conversationsPageSize = 1000
	// DefaultConversationLimit is the number of conversations listed when no limit is given
	DefaultConversationLimit = 100
)

// ListConversations retrieves conversations of the requested kinds
func (c *client) ListConversations(ctx context.Context, input ListConversationsInput) ([]*model.Conversation, error) {
	kinds := input.Types
	if len(kinds) == 0 {
		kinds = types.AllConversationTypes()
	}

	typeNames := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if !k.IsValid() {
			return nil, goerr.Wrap(ErrInvalidInput, "unknown conversation type", goerr.V("type", k))
		}
		typeNames = append(typeNames, k.String())
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultConversationLimit
	}

	channels, err := paginate(ctx, c.transport, "conversations.list", limit, conversationsPageSize,
		func(ctx context.Context, cursor string, pageSize int) ([]slack.Channel, string, error) {
			return c.api.GetConversationsContext(ctx, &slack.GetConversationsParameters{
				Cursor:          cursor,
				Limit:           pageSize,
				Types:           typeNames,
				ExcludeArchived: input.ExcludeArchived,
			})
		})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conversations")
	}

	var dir model.Directory
	result := make([]*model.Conversation, 0, len(channels))
	for _, ch := range channels {
		conv := &model.Conversation{
			ID:       ch.ID,
			Name:     ch.Name,
			Type:     types.ClassifyConversation(ch.IsIM, ch.IsMpIM, ch.IsPrivate),
			IsMember: ch.IsMember,
		}

		if conv.Type == types.ConversationTypeIM {
			// Slack omits is_member for DMs, the user is always part of their own DM
			conv.IsMember = true
			conv.UserID = ch.User
			if dir == nil {
				dir = c.directoryOrEmpty(ctx)
			}
			conv.UserName = dir.Resolve(ch.User)
			if conv.Name == "" {
				conv.Name = conv.UserName
			}
		}

		result = append(result, conv)
	}

	return result, nil
}
