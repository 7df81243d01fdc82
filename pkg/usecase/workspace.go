package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/domain/types"
	"github.com/secmon-lab/hermes/pkg/service/slack"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
)

// WorkspaceUseCase runs Slack operations and renders their results. It owns
// the send gate.
type WorkspaceUseCase struct {
	slack       slack.Service
	sendEnabled bool
}

// NewWorkspaceUseCase creates a new WorkspaceUseCase instance
func NewWorkspaceUseCase(slackService slack.Service, sendEnabled bool) *WorkspaceUseCase {
	return &WorkspaceUseCase{
		slack:       slackService,
		sendEnabled: sendEnabled,
	}
}

// SendEnabled reports whether SendMessage reaches Slack
func (uc *WorkspaceUseCase) SendEnabled() bool {
	return uc.sendEnabled
}

func (uc *WorkspaceUseCase) ListConversations(ctx context.Context, input slack.ListConversationsInput, format types.OutputFormat) (string, error) {
	convs, err := uc.slack.ListConversations(ctx, input)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list conversations")
	}
	return render(tmplConversations, format, convs)
}

func (uc *WorkspaceUseCase) ListUsers(ctx context.Context, input slack.ListUsersInput, format types.OutputFormat) (string, error) {
	users, err := uc.slack.ListUsers(ctx, input)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list users")
	}
	return render(tmplUsers, format, users)
}

func (uc *WorkspaceUseCase) GetMessages(ctx context.Context, input slack.GetMessagesInput, format types.OutputFormat) (string, error) {
	msgs, err := uc.slack.GetMessages(ctx, input)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get messages", goerr.V("channel_id", input.ChannelID))
	}
	return render(tmplMessages, format, msgs)
}

func (uc *WorkspaceUseCase) GetThread(ctx context.Context, input slack.GetThreadInput, format types.OutputFormat) (string, error) {
	msgs, err := uc.slack.GetThread(ctx, input)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get thread",
			goerr.V("channel_id", input.ChannelID),
			goerr.V("thread_ts", input.ThreadTS))
	}
	return render(tmplMessages, format, msgs)
}

func (uc *WorkspaceUseCase) SearchMessages(ctx context.Context, input slack.SearchInput, format types.OutputFormat) (string, error) {
	results, err := uc.slack.SearchMessages(ctx, input)
	if err != nil {
		return "", goerr.Wrap(err, "failed to search messages")
	}
	return render(tmplSearch, format, results)
}

// SendMessage posts a message when the send gate is open. With the gate
// closed no request is made and a Disabled result is returned.
func (uc *WorkspaceUseCase) SendMessage(ctx context.Context, input slack.SendMessageInput) *model.SendResult {
	if !uc.sendEnabled {
		logging.From(ctx).Info("message sending is disabled, skipped",
			"channel_id", input.ChannelID)
		return &model.SendResult{
			OK:        false,
			ChannelID: input.ChannelID,
			Error:     SendDisabledMessage,
			Disabled:  true,
		}
	}
	return uc.slack.SendMessage(ctx, input)
}

// RenderSendResult formats the outcome of SendMessage
func RenderSendResult(result *model.SendResult, format types.OutputFormat) (string, error) {
	return render(tmplSend, format, result)
}
