package workspace

import (
	"context"
	"fmt"

	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/agent/tool"
	"github.com/secmon-lab/hermes/pkg/service/slack"
)

type searchMessagesTool struct {
	ws Workspace
}

func (t *searchMessagesTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "slack__search_messages",
		Description: "Search messages across the Slack workspace. Supports Slack search modifiers such as in:#channel and from:@user.",
		Parameters: map[string]*gollem.Parameter{
			"query": {
				Type:        gollem.TypeString,
				Description: "Search query",
				Required:    true,
			},
			"limit": {
				Type:        gollem.TypeInteger,
				Description: "Number of results, 1 to 100 (default 20)",
				Required:    false,
			},
			"format": formatParam,
		},
	}
}

func (t *searchMessagesTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	query := extractString(args, "query")
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	format, err := extractFormat(args)
	if err != nil {
		return nil, err
	}
	limit, err := extractInt(args, "limit")
	if err != nil {
		return nil, err
	}

	tool.Updatef(ctx, "Searching for %q...", query)
	rendered, err := t.ws.SearchMessages(ctx, slack.SearchInput{
		Query: query,
		Limit: limit,
	}, format)
	if err != nil {
		return nil, err
	}
	return result(rendered), nil
}
