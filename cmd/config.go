package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the gateway config file",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), app.configRepo.Path())
				return err
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Check the config file against the validation rules",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				snapshot, err := app.configRepo.ReadSnapshot(cmd.Context())
				if err != nil {
					return err
				}

				issues := snapshot.Issues
				if snapshot.Valid {
					issues = app.validator.Validate(snapshot.Parsed).Issues
				}
				if len(issues) == 0 {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", snapshot.Path)
					return err
				}

				for _, issue := range issues {
					path := issue.Path
					if path == "" {
						path = "<root>"
					}
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, issue.Message); err != nil {
						return err
					}
				}
				return fmt.Errorf("%s: %d issue(s)", snapshot.Path, len(issues))
			},
		},
	)

	return configCmd
}
