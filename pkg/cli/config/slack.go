package config

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hermes/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

const (
	flagSlackUserToken = "slack-user-token"
	flagSlackAPIURL    = "slack-api-url"
	flagEnableSend     = "enable-send"
)

type Slack struct {
	userToken     string
	apiURL        string
	maxAttempts   int
	baseDelay     time.Duration
	maxRetryAfter time.Duration
	callTimeout   time.Duration
	directoryTTL  time.Duration
	enableSend    bool
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagSlackUserToken,
			Usage:       "Slack user OAuth token (xoxp-). Bot tokens are not supported",
			Category:    "Slack",
			Destination: &x.userToken,
			Sources:     cli.EnvVars("HERMES_SLACK_USER_TOKEN"),
		},
		&cli.StringFlag{
			Name:        flagSlackAPIURL,
			Usage:       "Slack Web API base URL, for proxies and testing",
			Category:    "Slack",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("HERMES_SLACK_API_URL"),
		},
		&cli.IntFlag{
			Name:        "slack-max-attempts",
			Usage:       "Maximum attempts of a rate limited API call",
			Category:    "Slack",
			Value:       slack.DefaultMaxAttempts,
			Destination: &x.maxAttempts,
			Sources:     cli.EnvVars("HERMES_SLACK_MAX_ATTEMPTS"),
		},
		&cli.DurationFlag{
			Name:        "slack-base-delay",
			Usage:       "First backoff delay when Slack sends no Retry-After",
			Category:    "Slack",
			Value:       slack.DefaultBaseDelay,
			Destination: &x.baseDelay,
			Sources:     cli.EnvVars("HERMES_SLACK_BASE_DELAY"),
		},
		&cli.DurationFlag{
			Name:        "slack-max-retry-after",
			Usage:       "Upper bound of a single backoff wait",
			Category:    "Slack",
			Value:       slack.DefaultMaxRetryAfter,
			Destination: &x.maxRetryAfter,
			Sources:     cli.EnvVars("HERMES_SLACK_MAX_RETRY_AFTER"),
		},
		&cli.DurationFlag{
			Name:        "slack-call-timeout",
			Usage:       "Timeout of a single API call",
			Category:    "Slack",
			Value:       slack.DefaultCallTimeout,
			Destination: &x.callTimeout,
			Sources:     cli.EnvVars("HERMES_SLACK_CALL_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:        "slack-directory-ttl",
			Usage:       "How long the user directory stays cached",
			Category:    "Slack",
			Value:       slack.DefaultDirectoryTTL,
			Destination: &x.directoryTTL,
			Sources:     cli.EnvVars("HERMES_SLACK_DIRECTORY_TTL"),
		},
		&cli.BoolFlag{
			Name:        flagEnableSend,
			Usage:       "Allow posting messages as the user",
			Category:    "Slack",
			Destination: &x.enableSend,
			Sources:     cli.EnvVars("HERMES_ENABLE_SEND"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("user-token.len", len(x.userToken)),
		slog.String("api-url", x.apiURL),
		slog.Int("max-attempts", x.maxAttempts),
		slog.String("base-delay", x.baseDelay.String()),
		slog.String("max-retry-after", x.maxRetryAfter.String()),
		slog.String("call-timeout", x.callTimeout.String()),
		slog.String("directory-ttl", x.directoryTTL.String()),
		slog.Bool("enable-send", x.enableSend),
	)
}

// SendEnabled reports whether --enable-send is set
func (x *Slack) SendEnabled() bool {
	return x.enableSend
}

// Configure creates the Slack service. The token is validated before any
// network activity.
func (x *Slack) Configure() (slack.Service, error) {
	var opts []slack.Option

	if x.apiURL != "" {
		u, err := url.Parse(x.apiURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, goerr.Wrap(ErrInvalidSlackURL, "failed to configure Slack", goerr.V(APIURLKey, x.apiURL))
		}
		apiURL := x.apiURL
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		opts = append(opts, slack.WithAPIURL(apiURL))
	}
	if x.maxAttempts > 0 {
		opts = append(opts, slack.WithMaxAttempts(x.maxAttempts))
	}
	if x.baseDelay > 0 {
		opts = append(opts, slack.WithBaseDelay(x.baseDelay))
	}
	if x.maxRetryAfter > 0 {
		opts = append(opts, slack.WithMaxRetryAfter(x.maxRetryAfter))
	}
	if x.callTimeout > 0 {
		opts = append(opts, slack.WithCallTimeout(x.callTimeout))
	}
	if x.directoryTTL > 0 {
		opts = append(opts, slack.WithDirectoryTTL(x.directoryTTL))
	}

	svc, err := slack.New(x.userToken, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Slack",
			goerr.V("user_token_len", len(x.userToken)))
	}
	return svc, nil
}
