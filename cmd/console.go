package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bnema/chatgate/internal/adapters/render/reply"
	"github.com/bnema/chatgate/internal/adapters/watch"
	"github.com/spf13/cobra"
)

func newConsoleCmd(app *app) *cobra.Command {
	var flags messageFlags
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Read chat messages from stdin, one per line, and print replies",
		Long:  "console runs a local chat loop. Each input line is dispatched as a message; lines no command claims are queued for the agent. The loop listens for SIGUSR1 in-process restarts and reloads the config file when it changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.signals.Listen(ctx, func(reason string) { app.restartInProcess(ctx, reason) }); err != nil {
				return fmt.Errorf("listen for restart signal: %w", err)
			}

			if !noWatch {
				watcher := watch.New(app.configRepo.Path(), func(ctx context.Context) {
					if err := app.live.Reload(ctx); err != nil {
						app.logger.Warn("reload config", "error", err)
					}
				}, app.logger)
				go func() {
					if err := watcher.Run(ctx); err != nil {
						app.logger.Warn("config watcher stopped", "error", err)
					}
				}()
			}

			defer app.sessions.Wait()
			return runConsole(ctx, cmd, app, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the config file when it changes")

	return cmd
}

func runConsole(ctx context.Context, cmd *cobra.Command, app *app, flags messageFlags) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		msg := flags.message(line)
		app.sessions.Ensure(ctx, msg.SessionKey)
		result := app.dispatcher.Dispatch(ctx, msg)
		if result == nil {
			app.queues.EnqueueFollowup(msg.SessionKey, line)
		}

		rendered, err := app.replyRenderer(reply.Exchange{Input: line, Result: result}, reply.RenderOptions{Echo: true})
		if err != nil {
			return fmt.Errorf("render reply: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read console input: %w", err)
	}
	return nil
}
