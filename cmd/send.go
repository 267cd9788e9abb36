package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/chatgate/internal/adapters/render/reply"
	"github.com/bnema/chatgate/internal/application"
	"github.com/spf13/cobra"
)

type sendOutput struct {
	Handled        bool               `json:"handled"`
	ShouldContinue bool               `json:"should_continue"`
	Reply          *application.Reply `json:"reply,omitempty"`
}

func newSendCmd(app *app) *cobra.Command {
	var flags messageFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Dispatch one chat message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := strings.Join(args, " ")
			msg := flags.message(body)
			app.sessions.Ensure(cmd.Context(), msg.SessionKey)

			dispatch := func() *application.CommandResult {
				return app.dispatcher.Dispatch(cmd.Context(), msg)
			}

			var result *application.CommandResult
			if asJSON {
				result = dispatch()
			} else {
				spun, err := dispatchWithSpinner(cmd.Context(), cmd.ErrOrStderr(), body, dispatch)
				if err != nil {
					return err
				}
				result = spun
			}
			app.sessions.Wait()

			if asJSON {
				return writeSendJSON(cmd, result)
			}

			rendered, err := app.replyRenderer(reply.Exchange{Input: body, Result: result}, reply.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render reply: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the command result as JSON")

	return cmd
}

func writeSendJSON(cmd *cobra.Command, result *application.CommandResult) error {
	output := sendOutput{}
	if result != nil {
		output.Handled = true
		output.ShouldContinue = result.ShouldContinue
		output.Reply = result.Reply
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}
