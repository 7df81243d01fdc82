// Package workspace provides gollem tools that expose a Slack workspace to an agent.
package workspace

import (
	"context"
	"fmt"

	"github.com/m-mizutani/gollem"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/domain/types"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

// Workspace runs Slack operations and renders their results
type Workspace interface {
	ListConversations(ctx context.Context, input slack.ListConversationsInput, format types.OutputFormat) (string, error)
	ListUsers(ctx context.Context, input slack.ListUsersInput, format types.OutputFormat) (string, error)
	GetMessages(ctx context.Context, input slack.GetMessagesInput, format types.OutputFormat) (string, error)
	GetThread(ctx context.Context, input slack.GetThreadInput, format types.OutputFormat) (string, error)
	SearchMessages(ctx context.Context, input slack.SearchInput, format types.OutputFormat) (string, error)
	SendMessage(ctx context.Context, input slack.SendMessageInput) *model.SendResult
}

// New builds the six Slack tools backed by ws
func New(ws Workspace) []gollem.Tool {
	return []gollem.Tool{
		&listConversationsTool{ws: ws},
		&listUsersTool{ws: ws},
		&getMessagesTool{ws: ws},
		&getThreadTool{ws: ws},
		&sendMessageTool{ws: ws},
		&searchMessagesTool{ws: ws},
	}
}

// formatParam is shared by every read tool
var formatParam = &gollem.Parameter{
	Type:        gollem.TypeString,
	Description: "Output format: markdown (default) or json",
	Required:    false,
}

func result(rendered string) map[string]any {
	return map[string]any{"result": rendered}
}

func extractString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// extractInt returns 0 when key is absent
func extractInt(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T", key, v)
	}
}

func extractBool(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func extractFormat(args map[string]any) (types.OutputFormat, error) {
	return types.ParseOutputFormat(extractString(args, "format"))
}
