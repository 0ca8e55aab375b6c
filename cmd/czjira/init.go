package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createInitCommand creates the init command.
func createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the project",
		Long:  "Write the default commit types to .czjira.yml in the project root if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliApp, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			path, created, err := cliApp.InitConfig()
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}

			if created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
			}
			return nil
		},
	}
}
