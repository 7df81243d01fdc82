package slack

import (
	"context"

	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"github.com/slack-go/slack"
)

// SendMessage posts text to a channel or thread. Link and media unfurling
// are always disabled; callers cannot turn them back on.
func (c *client) SendMessage(ctx context.Context, input SendMessageInput) *model.SendResult {
	logger := logging.From(ctx)

	if err := validateChannelID(input.ChannelID); err != nil {
		return model.NewSendFailure(input.ChannelID, UserMessage(err))
	}
	if err := validateText(input.Text); err != nil {
		return model.NewSendFailure(input.ChannelID, UserMessage(err))
	}
	if input.ThreadTS != "" {
		if err := validateTS("thread_ts", input.ThreadTS); err != nil {
			return model.NewSendFailure(input.ChannelID, UserMessage(err))
		}
	}

	opts := []slack.MsgOption{
		slack.MsgOptionText(input.Text, false),
	}
	if input.ThreadTS != "" {
		opts = append(opts, slack.MsgOptionTS(input.ThreadTS))
	}
	opts = append(opts,
		slack.MsgOptionDisableLinkUnfurl(),
		slack.MsgOptionDisableMediaUnfurl(),
	)

	var channelID, ts string
	err := c.transport.call(ctx, "chat.postMessage", func(ctx context.Context) error {
		var err error
		channelID, ts, err = c.api.PostMessageContext(ctx, input.ChannelID, opts...)
		return err
	})
	if err != nil {
		logger.Warn("failed to send Slack message",
			"channel_id", input.ChannelID,
			"error", err.Error(),
		)
		return model.NewSendFailure(input.ChannelID, UserMessage(err))
	}

	logger.Info("Slack message sent", "channel_id", channelID, "ts", ts)
	return &model.SendResult{
		OK:        true,
		ChannelID: channelID,
		TS:        ts,
	}
}
