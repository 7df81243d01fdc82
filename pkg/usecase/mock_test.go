package usecase_test

import (
	"context"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/mock"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

// mockSlackService is a mock Slack service. Unset functions return empty results.
type mockSlackService struct {
	listConversationsFn func(ctx context.Context, input slack.ListConversationsInput) ([]*model.Conversation, error)
	listUsersFn         func(ctx context.Context, input slack.ListUsersInput) ([]*model.User, error)
	getMessagesFn       func(ctx context.Context, input slack.GetMessagesInput) ([]*model.Message, error)
	getThreadFn         func(ctx context.Context, input slack.GetThreadInput) ([]*model.Message, error)
	searchMessagesFn    func(ctx context.Context, input slack.SearchInput) ([]*model.SearchResult, error)

	sent []slack.SendMessageInput
}

var _ slack.Service = (*mockSlackService)(nil)

func (m *mockSlackService) ListConversations(ctx context.Context, input slack.ListConversationsInput) ([]*model.Conversation, error) {
	if m.listConversationsFn != nil {
		return m.listConversationsFn(ctx, input)
	}
	return []*model.Conversation{}, nil
}

func (m *mockSlackService) ListUsers(ctx context.Context, input slack.ListUsersInput) ([]*model.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx, input)
	}
	return []*model.User{}, nil
}

func (m *mockSlackService) GetMessages(ctx context.Context, input slack.GetMessagesInput) ([]*model.Message, error) {
	if m.getMessagesFn != nil {
		return m.getMessagesFn(ctx, input)
	}
	return []*model.Message{}, nil
}

func (m *mockSlackService) GetThread(ctx context.Context, input slack.GetThreadInput) ([]*model.Message, error) {
	if m.getThreadFn != nil {
		return m.getThreadFn(ctx, input)
	}
	return []*model.Message{}, nil
}

func (m *mockSlackService) SendMessage(ctx context.Context, input slack.SendMessageInput) *model.SendResult {
	m.sent = append(m.sent, input)
	return &model.SendResult{OK: true, ChannelID: input.ChannelID, TS: "1700000000.000900"}
}

func (m *mockSlackService) SearchMessages(ctx context.Context, input slack.SearchInput) ([]*model.SearchResult, error) {
	if m.searchMessagesFn != nil {
		return m.searchMessagesFn(ctx, input)
	}
	return []*model.SearchResult{}, nil
}

func (m *mockSlackService) ResolveUser(ctx context.Context, userID string) string {
	return userID
}

func (m *mockSlackService) RefreshDirectory(ctx context.Context) error {
	return nil
}

// newAnswerLLM returns an LLM client whose sessions reply with the given
// responses in order, repeating the last one.
func newAnswerLLM(responses ...*gollem.Response) *mock.LLMClientMock {
	return &mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			var n int
			return &mock.SessionMock{
				GenerateFunc: func(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
					resp := responses[min(n, len(responses)-1)]
					n++
					return resp, nil
				},
			}, nil
		},
	}
}
