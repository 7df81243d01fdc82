package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/slack-go/slack"
)

const (
	// historyPageSize is the maximum page size of conversations.history
	historyPageSize = 1000
	// repliesPageSize is the maximum page size of conversations.replies
	repliesPageSize = 1000
	// DefaultMessageLimit is the number of messages fetched when no limit is given
	DefaultMessageLimit = 20
	// DefaultThreadLimit is the number of thread messages fetched when no limit is given
	DefaultThreadLimit = 100
)

// GetMessages retrieves recent messages of a channel with a single API call
func (c *client) GetMessages(ctx context.Context, input GetMessagesInput) ([]*model.Message, error) {
	if err := validateChannelID(input.ChannelID); err != nil {
		return nil, err
	}
	if input.Oldest != "" {
		if err := validateTS("oldest", input.Oldest); err != nil {
			return nil, err
		}
	}
	if input.Latest != "" {
		if err := validateTS("latest", input.Latest); err != nil {
			return nil, err
		}
	}

	params := &slack.GetConversationHistoryParameters{
		ChannelID: input.ChannelID,
		Limit:     clampLimit(input.Limit, DefaultMessageLimit, historyPageSize),
		Oldest:    input.Oldest,
		Latest:    input.Latest,
	}

	var resp *slack.GetConversationHistoryResponse
	err := c.transport.call(ctx, "conversations.history", func(ctx context.Context) error {
		var err error
		resp, err = c.api.GetConversationHistoryContext(ctx, params)
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get channel history", goerr.V("channel_id", input.ChannelID))
	}

	dir := c.directoryOrEmpty(ctx)
	messages := make([]*model.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		if isRemoved(m) {
			continue
		}
		messages = append(messages, toMessage(m, dir, input.IncludeThreads))
	}

	return messages, nil
}

// GetThread retrieves all messages of a thread, following cursors
func (c *client) GetThread(ctx context.Context, input GetThreadInput) ([]*model.Message, error) {
	if err := validateChannelID(input.ChannelID); err != nil {
		return nil, err
	}
	if err := validateTS("thread_ts", input.ThreadTS); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultThreadLimit
	}

	replies, err := paginate(ctx, c.transport, "conversations.replies", limit, repliesPageSize,
		func(ctx context.Context, cursor string, pageSize int) ([]slack.Message, string, error) {
			msgs, hasMore, next, err := c.api.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
				ChannelID: input.ChannelID,
				Timestamp: input.ThreadTS,
				Cursor:    cursor,
				Limit:     pageSize,
			})
			if err != nil {
				return nil, "", err
			}
			if !hasMore {
				next = ""
			}
			return msgs, next, nil
		})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get thread replies",
			goerr.V("channel_id", input.ChannelID),
			goerr.V("thread_ts", input.ThreadTS))
	}

	dir := c.directoryOrEmpty(ctx)
	messages := make([]*model.Message, 0, len(replies))
	for _, m := range replies {
		if isRemoved(m) {
			continue
		}
		msg := toMessage(m, dir, true)
		msg.IsParent = m.Timestamp == input.ThreadTS
		messages = append(messages, msg)
	}

	return messages, nil
}

// isRemoved reports whether m is a deletion tombstone or a hidden event
func isRemoved(m slack.Message) bool {
	switch m.SubType {
	case "message_deleted", "tombstone":
		return true
	}
	return m.Hidden || m.DeletedTimestamp != ""
}

func toMessage(m slack.Message, dir model.Directory, withThread bool) *model.Message {
	msg := &model.Message{
		TS:        m.Timestamp,
		UserID:    m.User,
		UserName:  authorName(m.User, m.Username, m.BotID, dir),
		Text:      Rewrite(m.Text, dir),
		Timestamp: model.FormatTS(m.Timestamp),
	}

	if withThread {
		msg.ThreadTS = m.ThreadTimestamp
		msg.ReplyCount = m.ReplyCount
	}

	return msg
}

// authorName picks the name shown for a message author. Bot and integration
// messages carry no user ID.
func authorName(userID, username, botID string, dir model.Directory) string {
	switch {
	case userID != "":
		return dir.Resolve(userID)
	case username != "":
		return username
	default:
		return botID
	}
}
