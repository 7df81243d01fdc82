package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hermes/pkg/agent/tool"
	"github.com/secmon-lab/hermes/pkg/cli/config"
	"github.com/secmon-lab/hermes/pkg/service/worker"
	"github.com/secmon-lab/hermes/pkg/usecase"
	"github.com/secmon-lab/hermes/pkg/utils/async"
	"github.com/secmon-lab/hermes/pkg/utils/errutil"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// cmdAsk answers a question with an LLM agent using the workspace tools.
// llmClient overrides the Gemini configuration when set.
func cmdAsk(llmClient gollem.LLMClient) *cli.Command {
	var ws workspaceCommand
	var geminiCfg config.Gemini
	var language string
	var refreshInterval time.Duration
	var quiet bool

	flags := ws.flags(
		&cli.StringFlag{
			Name:        "language",
			Usage:       "Language of the answer",
			Value:       usecase.DefaultLanguage,
			Destination: &language,
			Sources:     cli.EnvVars("HERMES_LANGUAGE"),
		},
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "Rebuild the user directory in the background at this interval (0 disables)",
			Destination: &refreshInterval,
			Sources:     cli.EnvVars("HERMES_REFRESH_INTERVAL"),
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "Do not print tool progress",
			Destination: &quiet,
		},
	)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:      "ask",
		Aliases:   []string{"a"},
		Usage:     "Ask an AI agent about the workspace",
		ArgsUsage: "QUESTION...",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := ws.configureSlack(ctx, c)
			if err != nil {
				return err
			}

			client := llmClient
			if client == nil {
				logging.From(ctx).Debug("Gemini configuration", "gemini", geminiCfg)
				client, err = geminiCfg.Configure(ctx)
				if err != nil {
					return err
				}
			}
			if client == nil {
				return goerr.Wrap(usecase.ErrLLMNotConfigured, "set --gemini-project or HERMES_GEMINI_PROJECT")
			}

			uc := usecase.New(svc,
				usecase.WithSendEnabled(ws.slackCfg.SendEnabled()),
				usecase.WithLLMClient(client),
				usecase.WithLanguage(language),
			)

			if refreshInterval > 0 {
				w := worker.NewDirectoryRefreshWorker(svc, refreshInterval)
				if err := w.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start directory refresh worker")
				}
				defer w.Stop()
			} else {
				// Warm the directory while the model thinks about the first call
				async.Dispatch(ctx, svc.RefreshDirectory)
			}

			if !quiet {
				errOut := stderr(c)
				ctx = tool.WithUpdate(ctx, func(ctx context.Context, message string) {
					_, _ = fmt.Fprintln(errOut, message)
				})
			}

			answer, err := uc.Agent.Ask(ctx, strings.Join(c.Args().Slice(), " "))
			if err != nil {
				return errutil.Handle(ctx, err, "failed to answer question")
			}
			output(ctx, c, answer)
			return nil
		},
	}
}
