package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/czjira/internal/app"
	"github.com/wizzomafizzo/czjira/internal/gitcommit"
	"github.com/wizzomafizzo/czjira/internal/history"
	"github.com/wizzomafizzo/czjira/internal/logging"
	"github.com/wizzomafizzo/czjira/internal/prompt"
)

// createCommitCommand creates the commit command. Arguments after "--" go to git commit.
func createCommitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit [-- git commit args...]",
		Short: "Compose a commit message and commit",
		Long: "Ask for the type, scope, description and Jira details of the change, " +
			"then run git commit with the composed message",
		RunE: runCommitCommand,
	}

	cmd.Flags().Bool("dry-run", false, "Print the message instead of committing")
	cmd.Flags().Bool("retry", false, "Commit the last composed message again without prompting")

	return cmd
}

func runCommitCommand(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	retry, err := cmd.Flags().GetBool("retry")
	if err != nil {
		return fmt.Errorf("failed to get retry flag: %w", err)
	}

	cliApp, err := createAppFromCommand(cmd)
	if err != nil {
		return err
	}

	ctx, err := initLogging(cmd.Context(), cliApp)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}

	opts := app.CommitOptions{
		Committer: newCommitter(dryRun, cliApp.ProjectRoot(), cmd.OutOrStdout(), args),
		Out:       cmd.OutOrStdout(),
		Retry:     retry,
	}

	store, err := history.OpenDefault(ctx, afero.NewOsFs())
	if err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("commit history unavailable")
	} else {
		defer func() { _ = store.Close() }()
		opts.History = store
	}

	if !retry {
		prompter := prompt.NewLinerPrompter()
		defer func() { _ = prompter.Close() }()
		opts.Engine = prompt.NewEngine(prompter, cmd.OutOrStdout())
	}

	err = cliApp.Commit(ctx, opts)
	if prompt.IsCancelled(err) {
		_, _ = color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "Commit aborted")
		return nil
	}
	return err //nolint:wrapcheck // app errors are already descriptive
}

// newCommitter prints the message on dry runs and runs git otherwise.
func newCommitter(dryRun bool, projectRoot string, out io.Writer, gitArgs []string) func(context.Context, string) error {
	if dryRun {
		return gitcommit.PrintCommitter{Out: out}.Commit
	}
	return gitcommit.NewGitCommitter(projectRoot, out, gitArgs...).Commit
}
