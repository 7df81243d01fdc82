package workspace

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/agent/tool"
	"github.com/secmon-lab/hermes/pkg/domain/types"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

// listConversationsTool lists channels, DMs and group DMs
type listConversationsTool struct {
	ws Workspace
}

func (t *listConversationsTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "slack__list_conversations",
		Description: "List Slack conversations visible to the user. Returns channel IDs needed by the other slack__ tools.",
		Parameters: map[string]*gollem.Parameter{
			"types": {
				Type:        gollem.TypeString,
				Description: "Comma separated conversation types: public_channel, private_channel, im, mpim. Defaults to all.",
				Required:    false,
			},
			"exclude_archived": {
				Type:        gollem.TypeBoolean,
				Description: "Skip archived channels",
				Required:    false,
			},
			"limit": {
				Type:        gollem.TypeInteger,
				Description: "Maximum number of conversations (default 100)",
				Required:    false,
			},
			"format": formatParam,
		},
	}
}

func (t *listConversationsTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	format, err := extractFormat(args)
	if err != nil {
		return nil, err
	}
	limit, err := extractInt(args, "limit")
	if err != nil {
		return nil, err
	}

	var kinds []types.ConversationType
	if raw := extractString(args, "types"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			kind, err := types.ParseConversationType(strings.TrimSpace(name))
			if err != nil {
				return nil, goerr.Wrap(err, "invalid types parameter", goerr.V("types", raw))
			}
			kinds = append(kinds, kind)
		}
	}

	tool.Update(ctx, "Listing conversations...")
	rendered, err := t.ws.ListConversations(ctx, slack.ListConversationsInput{
		Types:           kinds,
		ExcludeArchived: extractBool(args, "exclude_archived"),
		Limit:           limit,
	}, format)
	if err != nil {
		return nil, err
	}
	return result(rendered), nil
}

// listUsersTool lists workspace members from the cached directory
type listUsersTool struct {
	ws Workspace
}

func (t *listUsersTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "slack__list_users",
		Description: "List members of the Slack workspace with their IDs and names.",
		Parameters: map[string]*gollem.Parameter{
			"limit": {
				Type:        gollem.TypeInteger,
				Description: "Maximum number of users (default 100)",
				Required:    false,
			},
			"exclude_bots": {
				Type:        gollem.TypeBoolean,
				Description: "Leave bot users out",
				Required:    false,
			},
			"format": formatParam,
		},
	}
}

func (t *listUsersTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	format, err := extractFormat(args)
	if err != nil {
		return nil, err
	}
	limit, err := extractInt(args, "limit")
	if err != nil {
		return nil, err
	}

	tool.Update(ctx, "Listing users...")
	rendered, err := t.ws.ListUsers(ctx, slack.ListUsersInput{
		Limit:       limit,
		ExcludeBots: extractBool(args, "exclude_bots"),
	}, format)
	if err != nil {
		return nil, err
	}
	return result(rendered), nil
}
