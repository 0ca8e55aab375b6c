package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createTypesCommand creates the types command.
func createTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the configured commit types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliApp, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			types, err := cliApp.Types()
			if err != nil {
				return fmt.Errorf("failed to list types: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), types)
			if err != nil {
				return fmt.Errorf("failed to print types: %w", err)
			}
			return nil
		},
	}
}
