// Package adapter drives the commit prompt: it asks the questions, composes the
// message and hands it to the commit consumer.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/czjira/internal/choices"
	"github.com/wizzomafizzo/czjira/internal/constants"
	"github.com/wizzomafizzo/czjira/internal/history"
	"github.com/wizzomafizzo/czjira/internal/logging"
	"github.com/wizzomafizzo/czjira/internal/message"
	"github.com/wizzomafizzo/czjira/internal/prompt"
)

// Banner is printed before the first question.
var Banner = fmt.Sprintf(
	"\nLine 1 will be cropped at %d characters. All other lines will be wrapped after %d characters.\n",
	constants.MaxLineWidth, constants.MaxLineWidth)

// WorkflowSpaceMessage explains why a workflow answer was rejected.
const WorkflowSpaceMessage = "Workflows cannot have spaces in smart commits. " +
	"If your workflow name has a space, use a dash (-)"

// ErrCommitFailed wraps errors returned by the commit consumer.
var ErrCommitFailed = errors.New("commit failed")

// Asker runs a question session.
type Asker interface {
	Ask(ctx context.Context, questions []prompt.Question) (prompt.Answers, error)
}

// ScopeResolver lists the packages offered as scopes.
type ScopeResolver interface {
	ResolvePackages(ctx context.Context, cwd string) ([]string, error)
}

// HistoryStore remembers composed messages per project.
type HistoryStore interface {
	Save(ctx context.Context, projectRoot string, entry history.Entry) error
	Last(ctx context.Context, projectRoot string) (*history.Entry, error)
}

// Adapter holds what a prompt session needs besides the engine.
type Adapter struct {
	resolver    ScopeResolver
	history     HistoryStore
	out         io.Writer
	now         func() time.Time
	cwd         string
	projectRoot string
	types       []choices.Choice
}

// Options configures an Adapter. History is optional.
type Options struct {
	Resolver    ScopeResolver
	History     HistoryStore
	Out         io.Writer
	Cwd         string
	ProjectRoot string
	Types       []choices.TypeDescriptor
}

// New builds the type choices up front so configuration errors surface before any
// question is asked.
func New(opts Options) (*Adapter, error) {
	typeChoices, err := choices.BuildTypeChoices(opts.Types)
	if err != nil {
		return nil, err //nolint:wrapcheck // configuration errors are reported as is
	}
	if opts.Resolver == nil {
		return nil, fmt.Errorf("%w: scope resolver is required", choices.ErrConfiguration)
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	return &Adapter{
		resolver:    opts.Resolver,
		history:     opts.History,
		out:         out,
		now:         time.Now,
		cwd:         opts.Cwd,
		projectRoot: opts.ProjectRoot,
		types:       typeChoices,
	}, nil
}

// Questions returns the question sequence in the order it is asked.
func (a *Adapter) Questions() []prompt.Question {
	return []prompt.Question{
		{
			Kind:    prompt.List,
			Name:    constants.FieldType,
			Message: "Select the type of change that you're committing:",
			Choices: a.types,
		},
		{
			Kind:        prompt.List,
			Name:        constants.FieldScope,
			Message:     "Scope of this change (which service has changed):",
			ChoicesFunc: a.scopeChoices,
		},
		{
			Name:    constants.FieldSubject,
			Message: "Write a short, imperative tense description of the change:",
		},
		{
			Name:    constants.FieldBody,
			Message: "Provide a longer description of the change:",
		},
		{
			Name:    constants.FieldBreaking,
			Message: "List any breaking changes:",
		},
		{
			Name:    constants.FieldIssues,
			Message: "JIRA issue:",
		},
		{
			Name:    constants.FieldComment,
			Message: "JIRA issue comment (optional):",
			When:    hasIssues,
		},
		{
			Name:     constants.FieldWorkflow,
			Message:  "JIRA workflow command (testing, closed, etc.) (optional):",
			When:     hasIssues,
			Validate: ValidateWorkflow,
		},
		{
			Name:    constants.FieldTime,
			Message: "JIRA time spent (i.e. 1w 2d 4h 30m) (optional):",
			When:    hasIssues,
		},
	}
}

// Prompter asks every question, composes the message and calls commit exactly once.
// Nothing is committed when the session fails.
func (a *Adapter) Prompter(ctx context.Context, engine Asker, commit func(string) error) error {
	_, _ = color.New(color.FgYellow).Fprintln(a.out, Banner)

	values, err := engine.Ask(ctx, a.Questions())
	if err != nil {
		return err //nolint:wrapcheck // prompt errors already name the question
	}

	answers := message.AnswersFromMap(values)
	msg := message.Compose(answers)

	logging.Get(ctx).Debug().
		Str("type", answers.Type).
		Str("scope", answers.Scope).
		Str("issues", answers.Issues).
		Msg("composed commit message")

	if err := commit(msg); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	a.remember(ctx, answers, msg)
	return nil
}

// Retry commits the last message stored for the project again without prompting.
func (a *Adapter) Retry(ctx context.Context, commit func(string) error) error {
	if a.history == nil {
		return history.ErrNoHistory
	}

	entry, err := a.history.Last(ctx, a.projectRoot)
	if err != nil {
		return err //nolint:wrapcheck // ErrNoHistory is matched by callers
	}

	logging.Get(ctx).Debug().Time("created_at", entry.CreatedAt).Msg("retrying previous commit message")

	if err := commit(entry.Message); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	return nil
}

// ValidateWorkflow rejects workflow names containing whitespace.
func ValidateWorkflow(input string) (bool, string) {
	if strings.ContainsFunc(input, unicode.IsSpace) {
		return false, WorkflowSpaceMessage
	}
	return true, ""
}

func (a *Adapter) scopeChoices(ctx context.Context, _ prompt.Answers) ([]choices.Choice, error) {
	packages, err := a.resolver.ResolvePackages(ctx, a.cwd)
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by the engine with the question name
	}
	return choices.ScopeChoices(packages), nil
}

// remember is best effort: the commit already happened.
func (a *Adapter) remember(ctx context.Context, answers message.Answers, msg string) {
	if a.history == nil {
		return
	}

	err := a.history.Save(ctx, a.projectRoot, history.Entry{
		Answers:   answers,
		Message:   msg,
		CreatedAt: a.now(),
	})
	if err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("failed to save commit history")
	}
}

func hasIssues(answers prompt.Answers) bool {
	return strings.TrimSpace(answers[constants.FieldIssues]) != ""
}
