package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hermes/pkg/cli/config"
	"github.com/secmon-lab/hermes/pkg/domain/types"
	"github.com/secmon-lab/hermes/pkg/service/slack"
	"github.com/secmon-lab/hermes/pkg/usecase"
	"github.com/secmon-lab/hermes/pkg/utils/errutil"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"github.com/secmon-lab/hermes/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// workspaceCommand carries what every Slack subcommand shares: the Slack
// configuration and the output format.
type workspaceCommand struct {
	slackCfg   config.Slack
	format     string
	configPath string
}

func (x *workspaceCommand) flags(extra ...cli.Flag) []cli.Flag {
	flags := append([]cli.Flag{}, extra...)
	flags = append(flags, &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "Output format (markdown, json)",
		Value:       types.OutputFormatMarkdown.String(),
		Destination: &x.format,
		Sources:     cli.EnvVars("HERMES_FORMAT"),
		Validator: func(s string) error {
			_, err := types.ParseOutputFormat(s)
			return err
		},
	})
	flags = append(flags, &cli.StringFlag{
		Name:        "config",
		Usage:       "TOML settings file, overridden by flags and environment variables",
		Destination: &x.configPath,
		Sources:     cli.EnvVars("HERMES_CONFIG"),
	})
	return append(flags, x.slackCfg.Flags()...)
}

// configureSlack applies the settings file, if any, and creates the Slack service
func (x *workspaceCommand) configureSlack(ctx context.Context, c *cli.Command) (slack.Service, error) {
	if x.configPath != "" {
		file, err := config.LoadFile(x.configPath)
		if err != nil {
			return nil, err
		}
		x.slackCfg.ApplyFile(file.Slack, c.IsSet)
	}

	logging.From(ctx).Debug("Slack configuration", "slack", x.slackCfg)
	return x.slackCfg.Configure()
}

func (x *workspaceCommand) setup(ctx context.Context, c *cli.Command) (*usecase.WorkspaceUseCase, types.OutputFormat, error) {
	format, err := types.ParseOutputFormat(x.format)
	if err != nil {
		return nil, "", goerr.Wrap(usecase.ErrInvalidOutputFormat, err.Error())
	}

	svc, err := x.configureSlack(ctx, c)
	if err != nil {
		return nil, "", err
	}

	uc := usecase.New(svc, usecase.WithSendEnabled(x.slackCfg.SendEnabled()))
	return uc.Workspace, format, nil
}

// output writes rendered text to the command's stdout with a trailing newline
func output(ctx context.Context, c *cli.Command, text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	safe.Write(ctx, stdout(c), []byte(text))
}

func cmdConversations() *cli.Command {
	var ws workspaceCommand
	var typeNames []string
	var excludeArchived bool
	var limit int

	flags := ws.flags(
		&cli.StringSliceFlag{
			Name:        "types",
			Usage:       "Conversation kinds to list (public_channel, private_channel, im, mpim)",
			Destination: &typeNames,
		},
		&cli.BoolFlag{
			Name:        "exclude-archived",
			Usage:       "Skip archived conversations",
			Destination: &excludeArchived,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of conversations",
			Value:       slack.DefaultConversationLimit,
			Destination: &limit,
		},
	)

	return &cli.Command{
		Name:    "conversations",
		Aliases: []string{"c"},
		Usage:   "List channels, group and direct messages visible to the user",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, format, err := ws.setup(ctx, c)
			if err != nil {
				return err
			}

			input := slack.ListConversationsInput{
				ExcludeArchived: excludeArchived,
				Limit:           limit,
			}
			for _, raw := range typeNames {
				for _, name := range strings.Split(raw, ",") {
					name = strings.TrimSpace(name)
					if name == "" {
						continue
					}
					t, err := types.ParseConversationType(name)
					if err != nil {
						return goerr.Wrap(slack.ErrInvalidInput, err.Error())
					}
					input.Types = append(input.Types, t)
				}
			}

			text, err := uc.ListConversations(ctx, input, format)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to list conversations")
			}
			output(ctx, c, text)
			return nil
		},
	}
}

func cmdUsers() *cli.Command {
	var ws workspaceCommand
	var excludeBots bool
	var limit int

	flags := ws.flags(
		&cli.BoolFlag{
			Name:        "exclude-bots",
			Usage:       "Skip bot users",
			Destination: &excludeBots,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of users",
			Value:       slack.DefaultUserLimit,
			Destination: &limit,
		},
	)

	return &cli.Command{
		Name:    "users",
		Aliases: []string{"u"},
		Usage:   "List active workspace members",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, format, err := ws.setup(ctx, c)
			if err != nil {
				return err
			}

			text, err := uc.ListUsers(ctx, slack.ListUsersInput{
				Limit:       limit,
				ExcludeBots: excludeBots,
			}, format)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to list users")
			}
			output(ctx, c, text)
			return nil
		},
	}
}

func cmdHistory() *cli.Command {
	var ws workspaceCommand
	var input slack.GetMessagesInput

	flags := ws.flags(
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Conversation ID",
			Required:    true,
			Destination: &input.ChannelID,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of messages",
			Value:       slack.DefaultMessageLimit,
			Destination: &input.Limit,
		},
		&cli.StringFlag{
			Name:        "oldest",
			Usage:       "Only messages after this timestamp",
			Destination: &input.Oldest,
		},
		&cli.StringFlag{
			Name:        "latest",
			Usage:       "Only messages before this timestamp",
			Destination: &input.Latest,
		},
		&cli.BoolFlag{
			Name:        "include-threads",
			Usage:       "Show reply counts of thread parents",
			Destination: &input.IncludeThreads,
		},
	)

	return &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "Show recent messages of a conversation, newest first",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, format, err := ws.setup(ctx, c)
			if err != nil {
				return err
			}

			text, err := uc.GetMessages(ctx, input, format)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to get messages")
			}
			output(ctx, c, text)
			return nil
		},
	}
}

func cmdThread() *cli.Command {
	var ws workspaceCommand
	var input slack.GetThreadInput

	flags := ws.flags(
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Conversation ID",
			Required:    true,
			Destination: &input.ChannelID,
		},
		&cli.StringFlag{
			Name:        "ts",
			Usage:       "Timestamp of the thread parent",
			Required:    true,
			Destination: &input.ThreadTS,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of messages",
			Value:       slack.DefaultThreadLimit,
			Destination: &input.Limit,
		},
	)

	return &cli.Command{
		Name:    "thread",
		Aliases: []string{"t"},
		Usage:   "Show a thread, parent first",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, format, err := ws.setup(ctx, c)
			if err != nil {
				return err
			}

			text, err := uc.GetThread(ctx, input, format)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to get thread")
			}
			output(ctx, c, text)
			return nil
		},
	}
}

func cmdSearch() *cli.Command {
	var ws workspaceCommand
	var input slack.SearchInput

	flags := ws.flags(
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of matches",
			Value:       slack.DefaultSearchLimit,
			Destination: &input.Limit,
		},
	)

	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Search messages with Slack search syntax",
		ArgsUsage: "QUERY...",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, format, err := ws.setup(ctx, c)
			if err != nil {
				return err
			}

			input.Query = strings.Join(c.Args().Slice(), " ")
			text, err := uc.SearchMessages(ctx, input, format)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to search messages")
			}
			output(ctx, c, text)
			return nil
		},
	}
}
