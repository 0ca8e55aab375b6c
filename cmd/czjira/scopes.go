package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// createScopesCommand creates the scopes command.
func createScopesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scopes",
		Short: "List the workspace packages offered as scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliApp, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			scopes, err := cliApp.Scopes(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the app
			}
			if len(scopes) == 0 {
				return nil
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(scopes, "\n"))
			if err != nil {
				return fmt.Errorf("failed to print scopes: %w", err)
			}
			return nil
		},
	}
}
