package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hermes/pkg/service/slack"
	"github.com/secmon-lab/hermes/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// ErrMessageNotSent is returned by send when the message was not posted
var ErrMessageNotSent = goerr.New("message was not sent")

func cmdSend() *cli.Command {
	var ws workspaceCommand
	var input slack.SendMessageInput

	flags := ws.flags(
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Conversation ID",
			Required:    true,
			Destination: &input.ChannelID,
		},
		&cli.StringFlag{
			Name:        "thread-ts",
			Usage:       "Reply in the thread with this parent timestamp",
			Destination: &input.ThreadTS,
		},
	)

	return &cli.Command{
		Name:      "send",
		Usage:     "Post a message as the user (requires --enable-send)",
		ArgsUsage: "TEXT...",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, format, err := ws.setup(ctx, c)
			if err != nil {
				return err
			}

			input.Text = strings.Join(c.Args().Slice(), " ")
			result := uc.SendMessage(ctx, input)

			text, err := usecase.RenderSendResult(result, format)
			if err != nil {
				return err
			}
			output(ctx, c, text)

			if !result.OK {
				return goerr.Wrap(ErrMessageNotSent, result.Error,
					goerr.V("channel_id", result.ChannelID),
					goerr.V("disabled", result.Disabled))
			}
			return nil
		},
	}
}
