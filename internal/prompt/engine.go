package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/czjira/internal/choices"
	"github.com/wizzomafizzo/czjira/internal/logging"
)

// Kind selects how a question is answered.
type Kind int

const (
	// Input reads free text.
	Input Kind = iota
	// List picks one of the question's choices.
	List
)

const inputPrompt = "> "

// Answers maps question names to answers. Skipped questions are absent.
type Answers map[string]string

// Question is one step of a prompt session. When, if set, sees the answers given so far
// and decides whether the question is asked at all. ChoicesFunc, if set, is called when
// the question is reached and replaces Choices.
type Question struct {
	When        func(Answers) bool
	ChoicesFunc func(context.Context, Answers) ([]choices.Choice, error)
	Validate    func(string) (bool, string)
	Name        string
	Message     string
	Choices     []choices.Choice
	Kind        Kind
}

// Engine asks questions one at a time through a Prompter.
type Engine struct {
	prompter Prompter
	out      io.Writer
}

// NewEngine creates an engine that reads through prompter and writes questions to out.
func NewEngine(prompter Prompter, out io.Writer) *Engine {
	return &Engine{prompter: prompter, out: out}
}

// Ask runs the questions in order. An error from a ChoicesFunc ends the session.
func (e *Engine) Ask(ctx context.Context, questions []Question) (Answers, error) {
	answers := make(Answers, len(questions))

	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err //nolint:wrapcheck // cancellation is returned as is
		}
		if q.When != nil && !q.When(answers) {
			logging.Get(ctx).Debug().Str("question", q.Name).Msg("question skipped")
			continue
		}

		var (
			answer string
			err    error
		)
		switch q.Kind {
		case List:
			answer, err = e.askList(ctx, q, answers)
		default:
			answer, err = e.askInput(q)
		}
		if err != nil {
			return nil, err
		}

		answers[q.Name] = answer
	}

	return answers, nil
}

func (e *Engine) askInput(q Question) (string, error) {
	setCompletions(e.prompter, nil)

	for {
		_, _ = color.New(color.FgCyan).Fprintln(e.out, "? "+q.Message)

		answer, err := TextInputWithPrompter(e.prompter, inputPrompt)
		if err != nil {
			return "", fmt.Errorf("%s: %w", q.Name, err)
		}

		if q.Validate != nil {
			if ok, msg := q.Validate(answer); !ok {
				_, _ = color.New(color.FgRed).Fprintln(e.out, ">> "+msg)
				continue
			}
		}

		return answer, nil
	}
}

func (e *Engine) askList(ctx context.Context, q Question, answers Answers) (string, error) {
	options := q.Choices
	if q.ChoicesFunc != nil {
		var err error
		options, err = q.ChoicesFunc(ctx, answers)
		if err != nil {
			return "", fmt.Errorf("failed to load choices for %s: %w", q.Name, err)
		}
	}
	if len(options) == 0 {
		return "", fmt.Errorf("%s: no choices available", q.Name)
	}

	values := make([]string, 0, len(options))
	for _, c := range options {
		values = append(values, c.Value)
	}
	setCompletions(e.prompter, values)

	for {
		_, _ = color.New(color.FgCyan).Fprintln(e.out, "? "+q.Message)
		for i, c := range options {
			_, _ = fmt.Fprintf(e.out, "  %2d) %s\n", i+1, c.Name)
		}

		input, err := TextInputWithPrompter(e.prompter, fmt.Sprintf("Choose [1-%d]: ", len(options)))
		if err != nil {
			return "", fmt.Errorf("%s: %w", q.Name, err)
		}

		if choice, ok := pick(options, input); ok {
			return choice.Value, nil
		}
		_, _ = color.New(color.FgRed).Fprintf(e.out, ">> %q is not one of the choices\n", strings.TrimSpace(input))
	}
}

// pick matches input against a choice value, then the 1-based choice number, then a
// choice display name.
func pick(options []choices.Choice, input string) (choices.Choice, bool) {
	input = strings.TrimSpace(input)

	for _, c := range options {
		if c.Value != "" && c.Value == input {
			return c, true
		}
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return choices.Choice{}, false
	}

	for _, c := range options {
		if c.Name == input {
			return c, true
		}
	}
	return choices.Choice{}, false
}

// IsCancelled reports whether err means the user aborted the session.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
