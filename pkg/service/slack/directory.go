package slack

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"github.com/slack-go/slack"
)

const (
	// usersPageSize is the page size Slack recommends for users.list
	usersPageSize = 200
	// usersPending stands in for the cursor slack-go keeps inside UserPagination
	usersPending = "pending"
	// DefaultUserLimit is the number of users listed when no limit is given
	DefaultUserLimit = 100
)

// directory returns the cached user directory, building it on a miss
func (c *client) directory(ctx context.Context) (model.Directory, error) {
	return c.cache.GetOrCompute(ctx, KeyDirectory, c.loadDirectory)
}

// loadDirectory fetches every workspace member and builds the id to user map.
// Deleted accounts are left out.
func (c *client) loadDirectory(ctx context.Context) (model.Directory, error) {
	pager := c.api.GetUsersPaginated(slack.GetUsersOptionLimit(usersPageSize))

	users, err := paginate(ctx, c.transport, "users.list", 0, usersPageSize,
		func(ctx context.Context, _ string, _ int) ([]slack.User, string, error) {
			next, err := pager.Next(ctx)
			if pager.Done(err) {
				return nil, "", nil
			}
			if err != nil {
				return nil, "", err
			}
			pager = next
			return next.Users, usersPending, nil
		})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list Slack users")
	}

	dir := make(model.Directory, len(users))
	for _, u := range users {
		if u.Deleted {
			continue
		}
		dir[u.ID] = &model.User{
			ID:          u.ID,
			Name:        u.Name,
			RealName:    firstNonEmpty(u.RealName, u.Profile.RealName),
			DisplayName: u.Profile.DisplayName,
			IsBot:       u.IsBot,
		}
	}

	logging.From(ctx).Debug("user directory loaded", "count", len(dir))
	return dir, nil
}

// ResolveUser returns the display name for userID, falling back to the ID
func (c *client) ResolveUser(ctx context.Context, userID string) string {
	if err := validateUserID(userID); err != nil {
		return userID
	}
	return c.directoryOrEmpty(ctx).Resolve(userID)
}

// RefreshDirectory drops the cached directory and builds it again
func (c *client) RefreshDirectory(ctx context.Context) error {
	c.cache.Invalidate(KeyDirectory)
	if _, err := c.directory(ctx); err != nil {
		return goerr.Wrap(err, "failed to refresh user directory")
	}
	return nil
}

// ListUsers retrieves workspace members from the cached directory, ordered by ID
func (c *client) ListUsers(ctx context.Context, input ListUsersInput) ([]*model.User, error) {
	dir, err := c.directory(ctx)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultUserLimit
	}

	users := make([]*model.User, 0, len(dir))
	for _, u := range dir {
		if input.ExcludeBots && u.IsBot {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
