package workspace

import (
	"context"
	"fmt"

	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/agent/tool"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

// getMessagesTool reads the recent history of a conversation
type getMessagesTool struct {
	ws Workspace
}

func (t *getMessagesTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "slack__get_messages",
		Description: "Get recent messages of a Slack conversation, newest first.",
		Parameters: map[string]*gollem.Parameter{
			"channel_id": {
				Type:        gollem.TypeString,
				Description: "Conversation ID such as C0123ABCD",
				Required:    true,
			},
			"limit": {
				Type:        gollem.TypeInteger,
				Description: "Number of messages, 1 to 1000 (default 20)",
				Required:    false,
			},
			"oldest": {
				Type:        gollem.TypeString,
				Description: "Only messages after this timestamp, e.g. 1700000000.000000",
				Required:    false,
			},
			"latest": {
				Type:        gollem.TypeString,
				Description: "Only messages before this timestamp",
				Required:    false,
			},
			"include_threads": {
				Type:        gollem.TypeBoolean,
				Description: "Include thread_ts and reply counts so threads can be opened with slack__get_thread",
				Required:    false,
			},
			"format": formatParam,
		},
	}
}

func (t *getMessagesTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	channelID := extractString(args, "channel_id")
	if channelID == "" {
		return nil, fmt.Errorf("channel_id is required")
	}
	format, err := extractFormat(args)
	if err != nil {
		return nil, err
	}
	limit, err := extractInt(args, "limit")
	if err != nil {
		return nil, err
	}

	tool.Updatef(ctx, "Reading messages in %s...", channelID)
	rendered, err := t.ws.GetMessages(ctx, slack.GetMessagesInput{
		ChannelID:      channelID,
		Limit:          limit,
		Oldest:         extractString(args, "oldest"),
		Latest:         extractString(args, "latest"),
		IncludeThreads: extractBool(args, "include_threads"),
	}, format)
	if err != nil {
		return nil, err
	}
	return result(rendered), nil
}

// getThreadTool reads a whole thread
type getThreadTool struct {
	ws Workspace
}

func (t *getThreadTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "slack__get_thread",
		Description: "Get the parent message and replies of a Slack thread.",
		Parameters: map[string]*gollem.Parameter{
			"channel_id": {
				Type:        gollem.TypeString,
				Description: "Conversation ID of the thread",
				Required:    true,
			},
			"thread_ts": {
				Type:        gollem.TypeString,
				Description: "Timestamp of the parent message, e.g. 1700000000.000100",
				Required:    true,
			},
			"limit": {
				Type:        gollem.TypeInteger,
				Description: "Maximum number of messages (default 100)",
				Required:    false,
			},
			"format": formatParam,
		},
	}
}

func (t *getThreadTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	channelID := extractString(args, "channel_id")
	if channelID == "" {
		return nil, fmt.Errorf("channel_id is required")
	}
	threadTS := extractString(args, "thread_ts")
	if threadTS == "" {
		return nil, fmt.Errorf("thread_ts is required")
	}
	format, err := extractFormat(args)
	if err != nil {
		return nil, err
	}
	limit, err := extractInt(args, "limit")
	if err != nil {
		return nil, err
	}

	tool.Updatef(ctx, "Reading thread %s in %s...", threadTS, channelID)
	rendered, err := t.ws.GetThread(ctx, slack.GetThreadInput{
		ChannelID: channelID,
		ThreadTS:  threadTS,
		Limit:     limit,
	}, format)
	if err != nil {
		return nil, err
	}
	return result(rendered), nil
}
