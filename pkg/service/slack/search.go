package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/slack-go/slack"
)

const (
	// searchPageSize is the maximum count of search.messages
	searchPageSize = 100
	// DefaultSearchLimit is the number of results returned when no limit is given
	DefaultSearchLimit = 20
)

// SearchMessages searches messages in the workspace, best matches first
func (c *client) SearchMessages(ctx context.Context, input SearchInput) ([]*model.SearchResult, error) {
	query := sanitizeQuery(input.Query)
	if query == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "search query is empty")
	}

	params := slack.NewSearchParameters()
	params.Sort = "score"
	params.SortDirection = "desc"
	params.Count = clampLimit(input.Limit, DefaultSearchLimit, searchPageSize)

	var found *slack.SearchMessages
	err := c.transport.call(ctx, "search.messages", func(ctx context.Context) error {
		var err error
		found, err = c.api.SearchMessagesContext(ctx, query, params)
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search messages")
	}

	dir := c.directoryOrEmpty(ctx)
	n := len(found.Matches)
	results := make([]*model.SearchResult, 0, n)
	for i, m := range found.Matches {
		results = append(results, &model.SearchResult{
			ChannelID:   m.Channel.ID,
			ChannelName: m.Channel.Name,
			TS:          m.Timestamp,
			UserID:      m.User,
			UserName:    authorName(m.User, m.Username, "", dir),
			Text:        Rewrite(m.Text, dir),
			Timestamp:   model.FormatTS(m.Timestamp),
			Permalink:   m.Permalink,
			Score:       rankScore(i, n),
		})
	}

	return results, nil
}

// rankScore turns a result position into a relevance score in (0, 1]. Slack
// orders results by its own score, which slack-go does not decode.
func rankScore(i, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(n-i) / float64(n)
}
