// Package gitcommit hands a composed commit message to git.
package gitcommit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/wizzomafizzo/czjira/internal/logging"
)

// ErrEmptyMessage is returned when there is nothing to commit with.
var ErrEmptyMessage = errors.New("empty commit message")

// Committer receives the final commit message.
type Committer interface {
	Commit(ctx context.Context, message string) error
}

// GitCommitter runs `git commit -F -` with the message on stdin.
type GitCommitter struct {
	Exec  func(ctx context.Context, name string, args ...string) *exec.Cmd
	Out   io.Writer
	Dir   string
	Extra []string
}

// NewGitCommitter returns a committer running git in dir with extra arguments
// appended to `git commit`.
func NewGitCommitter(dir string, out io.Writer, extra ...string) *GitCommitter {
	return &GitCommitter{
		Exec:  exec.CommandContext,
		Out:   out,
		Dir:   dir,
		Extra: extra,
	}
}

// Args returns the git arguments used for a commit.
func (g *GitCommitter) Args() []string {
	args := []string{"commit", "-F", "-"}
	return append(args, g.Extra...)
}

// Commit runs git with message on stdin.
func (g *GitCommitter) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	args := g.Args()
	logging.Get(ctx).Debug().Strs("args", args).Str("dir", g.Dir).Msg("running git")

	cmd := g.Exec(ctx, "git", args...)
	cmd.Dir = g.Dir
	cmd.Stdin = strings.NewReader(message)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if g.Out != nil {
		cmd.Stdout = g.Out
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit failed: %w\n%s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// PrintCommitter writes the message instead of committing it.
type PrintCommitter struct {
	Out io.Writer
}

// Commit prints message.
func (p PrintCommitter) Commit(_ context.Context, message string) error {
	if _, err := io.WriteString(p.Out, message); err != nil {
		return fmt.Errorf("failed to write commit message: %w", err)
	}
	return nil
}
