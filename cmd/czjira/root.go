package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/czjira/internal/app"
	"github.com/wizzomafizzo/czjira/internal/logging"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "czjira",
		Short:         "Conventional commits with Jira smart commits for lerna monorepos",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: .czjira.yml in the project, then the user config)")
	rootCmd.PersistentFlags().StringP("directory", "C", "", "Run as if started in this directory")

	rootCmd.AddCommand(
		createCommitCommand(),
		createInitCommand(),
		createScopesCommand(),
		createTypesCommand(),
		createValidateCommand(),
	)

	return rootCmd
}

// createAppFromCommand reads the persistent flags and creates the app.
func createAppFromCommand(cmd *cobra.Command) (*app.App, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	workDir, err := cmd.Flags().GetString("directory")
	if err != nil {
		return nil, fmt.Errorf("failed to get directory flag: %w", err)
	}

	cliApp, err := app.NewAppWithOptions(app.AppOptions{
		Fs:         afero.NewOsFs(),
		ConfigPath: configPath,
		WorkDir:    workDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}
	return cliApp, nil
}

// initLogging attaches a file logger for the app's project and config to ctx.
func initLogging(ctx context.Context, cliApp *app.App) (context.Context, error) {
	ctx, err := logging.New(ctx, afero.NewOsFs(), logging.Config{
		ProjectRoot: cliApp.ProjectRoot(),
		ConfigPath:  cliApp.ConfigPath(),
		Level:       cliApp.Config().LogLevel(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return ctx, nil
}
