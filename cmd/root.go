package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chatgate",
		Short:         "chatgate: command dispatch for a chat automation gateway",
		Long:          "chatgate interprets operator control commands (/config, /debug, /activation, /send, /usage, /restart, /stop and abort phrases) and applies them to the gateway config, debug overrides, session store and running agents.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSendCmd(app),
		newConsoleCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
