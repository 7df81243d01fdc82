package workspace

import (
	"context"

	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/agent/tool"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

// sendMessageTool posts as the user. The outcome is always returned as a
// result, never as an error, so the agent can read why a send failed.
type sendMessageTool struct {
	ws Workspace
}

func (t *sendMessageTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "slack__send_message",
		Description: "Post a message to a Slack conversation as the user. Link previews are never shown. Use thread_ts to reply in a thread.",
		Parameters: map[string]*gollem.Parameter{
			"channel_id": {
				Type:        gollem.TypeString,
				Description: "Conversation ID to post to",
				Required:    true,
			},
			"text": {
				Type:        gollem.TypeString,
				Description: "Message text",
				Required:    true,
			},
			"thread_ts": {
				Type:        gollem.TypeString,
				Description: "Parent message timestamp to reply in a thread (optional)",
				Required:    false,
			},
		},
	}
}

func (t *sendMessageTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	input := slack.SendMessageInput{
		ChannelID: extractString(args, "channel_id"),
		Text:      extractString(args, "text"),
		ThreadTS:  extractString(args, "thread_ts"),
	}

	tool.Updatef(ctx, "Posting message to %s...", input.ChannelID)
	res := t.ws.SendMessage(ctx, input)

	out := map[string]any{
		"ok":         res.OK,
		"channel_id": res.ChannelID,
	}
	if res.TS != "" {
		out["ts"] = res.TS
	}
	if res.Error != "" {
		out["error"] = res.Error
	}
	if res.Disabled {
		out["disabled"] = true
	}
	return out, nil
}
