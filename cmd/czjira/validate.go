package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long: "Load the configuration czjira would use here (--config, the project's " +
			".czjira.yml, the user config, or the defaults) and report problems with it",
		Args: cobra.NoArgs,
		RunE: runValidateCommand,
	}
}

func runValidateCommand(cmd *cobra.Command, _ []string) error {
	cliApp, err := createAppFromCommand(cmd)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result, err := cliApp.ValidateConfig()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("failed to print validation result: %w", err)
	}
	return nil
}
