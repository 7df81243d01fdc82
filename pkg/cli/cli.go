package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/cli/config"
	"github.com/secmon-lab/hermes/pkg/service/slack"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	app := newApp(version)

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		_, _ = fmt.Fprintln(stderr(app), "Error:", describe(err))
		return err
	}

	return nil
}

// appOption customizes the command tree, used to inject dependencies in tests
type appOption func(*appConfig)

type appConfig struct {
	llmClient gollem.LLMClient
}

func withLLMClient(client gollem.LLMClient) appOption {
	return func(cfg *appConfig) {
		cfg.llmClient = client
	}
}

func newApp(version string, opts ...appOption) *cli.Command {
	var appCfg appConfig
	for _, opt := range opts {
		opt(&appCfg)
	}

	var loggerCfg config.Logger
	var closer func()

	return &cli.Command{
		Name:    "hermes",
		Usage:   "Read and search a Slack workspace as a user, from the shell or an LLM agent",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting hermes", "logger", loggerCfg)
			return logging.With(ctx, logging.Default()), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdConversations(),
			cmdUsers(),
			cmdHistory(),
			cmdThread(),
			cmdSearch(),
			cmdSend(),
			cmdAsk(appCfg.llmClient),
		},
	}
}

// describe returns the message shown to the user for err. Slack failures use
// the fixed sentence table; everything else is shown as is.
func describe(err error) string {
	var apiErr *slack.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}

func stdout(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(c *cli.Command) io.Writer {
	if w := c.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
