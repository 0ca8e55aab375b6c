// Package prompt asks questions on the terminal and collects the answers.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// setCompletions offers values on Tab when the prompter is backed by liner.
func setCompletions(prompter Prompter, values []string) {
	linerPrompter, ok := prompter.(*LinerPrompter)
	if !ok {
		return
	}
	if values == nil {
		linerPrompter.SetCompleter(nil)
		return
	}
	linerPrompter.SetCompleter(func(line string) []string {
		var result []string
		for _, v := range values {
			if v != "" && len(v) >= len(line) && v[:len(line)] == line {
				result = append(result, v)
			}
		}
		return result
	})
}

// TextInputWithPrompter reads one line of input using a custom prompter
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	result, err := prompter.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return result, nil
}
