// Package app wires configuration, workspace resolution and the commit prompt together
// for the czjira commands.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/adapter"
	"github.com/wizzomafizzo/czjira/internal/choices"
	"github.com/wizzomafizzo/czjira/internal/config"
	"github.com/wizzomafizzo/czjira/internal/constants"
	"github.com/wizzomafizzo/czjira/internal/logging"
	"github.com/wizzomafizzo/czjira/internal/project"
	"github.com/wizzomafizzo/czjira/internal/workspace"
)

// AppOptions contains configuration options for creating an App
type AppOptions struct {
	Fs         afero.Fs
	ConfigPath string
	WorkDir    string
}

// App holds the resolved project and configuration of one invocation.
type App struct {
	fs          afero.Fs
	config      *config.Config
	resolver    *workspace.Resolver
	configPath  string
	workDir     string
	projectRoot string
}

// CommitOptions carries the terminal side of a commit session.
type CommitOptions struct {
	Engine    adapter.Asker
	Committer func(context.Context, string) error
	History   adapter.HistoryStore
	Out       io.Writer
	Retry     bool
}

// NewAppWithOptions resolves the project root from WorkDir and loads the configuration.
// An empty ConfigPath selects the project config, then the user config, then defaults.
func NewAppWithOptions(opts AppOptions) (*App, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	workDir, err := absWorkDir(opts.WorkDir)
	if err != nil {
		return nil, err
	}
	projectRoot := project.FindRootFrom(fs, workDir)

	cfg, configPath, err := config.Resolve(fs, opts.ConfigPath, projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &App{
		fs:          fs,
		config:      cfg,
		resolver:    workspace.NewResolver(fs),
		configPath:  configPath,
		workDir:     workDir,
		projectRoot: projectRoot,
	}, nil
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// ProjectRoot returns the detected project root.
func (a *App) ProjectRoot() string {
	return a.projectRoot
}

// ConfigPath returns the loaded config file, or "" for the built-in defaults.
func (a *App) ConfigPath() string {
	return a.configPath
}

// ValidateConfig reports which configuration is in use. Loading already validated it.
func (a *App) ValidateConfig() (string, error) {
	if err := a.config.Validate(); err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}

	source := a.configPath
	if source == "" {
		source = "built-in defaults"
	}
	return fmt.Sprintf("Configuration is valid (%s): %d commit types\n", source, len(a.config.Types)), nil
}

// Types renders the commit type choices, one per line.
func (a *App) Types() (string, error) {
	typeChoices, err := choices.BuildTypeChoices(a.config.Types)
	if err != nil {
		return "", err //nolint:wrapcheck // configuration errors are reported as is
	}

	var b strings.Builder
	for _, c := range typeChoices {
		_, _ = b.WriteString(c.Name + "\n")
	}
	return b.String(), nil
}

// InitConfig writes the default configuration to the project's .czjira.yml unless the
// file already exists. It returns the path and whether the file was created.
func (a *App) InitConfig() (string, bool, error) {
	path := filepath.Join(a.projectRoot, constants.ConfigFilename)

	if _, statErr := a.fs.Stat(path); !os.IsNotExist(statErr) {
		if statErr != nil {
			return "", false, fmt.Errorf("failed to stat %s: %w", path, statErr)
		}
		return path, false, nil
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return "", false, fmt.Errorf("failed to generate default config: %w", err)
	}

	if err := afero.WriteFile(a.fs, path, data, 0o600); err != nil {
		return "", false, fmt.Errorf("failed to write config file to %s: %w", path, err)
	}
	return path, true, nil
}

// Scopes lists the scope names of the workspace the app was started in.
func (a *App) Scopes(ctx context.Context) ([]string, error) {
	packages, err := a.resolver.ResolvePackages(ctx, a.workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scopes: %w", err)
	}
	return packages, nil
}

// Commit runs the prompt, or with Retry reuses the last message, and commits the result.
func (a *App) Commit(ctx context.Context, opts CommitOptions) error {
	prompter, err := adapter.New(adapter.Options{
		Resolver:    a.resolver,
		History:     opts.History,
		Out:         opts.Out,
		Cwd:         a.workDir,
		ProjectRoot: a.projectRoot,
		Types:       a.config.Types,
	})
	if err != nil {
		return fmt.Errorf("failed to create prompt: %w", err)
	}

	commit := func(msg string) error {
		return opts.Committer(ctx, msg)
	}

	logging.Get(ctx).Info().Bool("retry", opts.Retry).Msg("starting commit")

	if opts.Retry {
		return prompter.Retry(ctx, commit) //nolint:wrapcheck // sentinel errors are matched by callers
	}
	return prompter.Prompter(ctx, opts.Engine, commit) //nolint:wrapcheck // already descriptive
}

func absWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return abs, nil
}
