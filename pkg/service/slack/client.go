package slack

import (
	"context"
	"net/http"
	"time"

	model "github.com/secmon-lab/hermes/pkg/domain/model/slack"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"github.com/secmon-lab/hermes/pkg/utils/ttlcache"
	"github.com/slack-go/slack"
)

const (
	// DefaultDirectoryTTL is the default lifetime of the cached user directory
	DefaultDirectoryTTL = 10 * time.Minute
)

// CacheKey identifies an entry in the client cache
type CacheKey string

const (
	// KeyDirectory holds the id to user map of the workspace
	KeyDirectory CacheKey = "user_directory"
)

// client implements Service interface
type client struct {
	api       *slack.Client
	transport *transport
	cache     *ttlcache.Cache[CacheKey, model.Directory]

	apiURL       string
	httpClient   *http.Client
	directoryTTL time.Duration
	clock        func() time.Time
}

// Option is a functional option for client configuration
type Option func(*client)

// WithAPIURL points the client at another Slack API endpoint. The URL must end with "/".
func WithAPIURL(url string) Option {
	return func(c *client) {
		c.apiURL = url
	}
}

// WithHTTPClient sets the HTTP client used for API calls
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithMaxAttempts sets how many times a rate limited call is attempted
func WithMaxAttempts(n int) Option {
	return func(c *client) {
		c.transport.maxAttempts = n
	}
}

// WithBaseDelay sets the first backoff delay used when Slack sends no Retry-After hint
func WithBaseDelay(d time.Duration) Option {
	return func(c *client) {
		c.transport.baseDelay = d
	}
}

// WithMaxRetryAfter caps a single backoff wait, including server hints
func WithMaxRetryAfter(d time.Duration) Option {
	return func(c *client) {
		c.transport.maxRetryAfter = d
	}
}

// WithCallTimeout sets the timeout of each API call attempt
func WithCallTimeout(d time.Duration) Option {
	return func(c *client) {
		c.transport.callTimeout = d
	}
}

// WithDirectoryTTL sets how long the user directory stays cached
func WithDirectoryTTL(ttl time.Duration) Option {
	return func(c *client) {
		c.directoryTTL = ttl
	}
}

func withSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *client) {
		c.transport.sleep = sleep
	}
}

func withClock(now func() time.Time) Option {
	return func(c *client) {
		c.clock = now
	}
}

// New creates a new Slack service with the provided user token. Bot tokens
// are rejected before any network activity.
func New(token string, opts ...Option) (Service, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}

	c := &client{
		transport: &transport{
			maxAttempts:   DefaultMaxAttempts,
			baseDelay:     DefaultBaseDelay,
			maxRetryAfter: DefaultMaxRetryAfter,
			callTimeout:   DefaultCallTimeout,
			sleep:         sleepContext,
		},
		httpClient:   &http.Client{},
		directoryTTL: DefaultDirectoryTTL,
		clock:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport.maxAttempts <= 0 {
		c.transport.maxAttempts = DefaultMaxAttempts
	}

	slackOpts := []slack.Option{slack.OptionHTTPClient(c.httpClient)}
	if c.apiURL != "" {
		slackOpts = append(slackOpts, slack.OptionAPIURL(c.apiURL))
	}
	c.api = slack.New(token, slackOpts...)
	c.cache = ttlcache.New[CacheKey, model.Directory](c.directoryTTL, ttlcache.WithClock(c.clock))

	return c, nil
}

// directoryOrEmpty loads the directory for rendering. A failed load degrades
// to an empty directory so that user IDs are shown instead of names.
func (c *client) directoryOrEmpty(ctx context.Context) model.Directory {
	dir, err := c.directory(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to load user directory, showing raw user IDs",
			"error", err.Error())
		return model.Directory{}
	}
	return dir
}
