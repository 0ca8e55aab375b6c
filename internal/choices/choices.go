// Package choices turns commit types and workspace packages into selectable options.
package choices

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrConfiguration is returned when the commit type configuration cannot produce choices.
var ErrConfiguration = errors.New("invalid commit type configuration")

// SkipName is the display name of the scope choice that leaves the scope empty.
const SkipName = "skip"

// TypeDescriptor describes one commit type, e.g. "feat".
type TypeDescriptor struct {
	Key         string `yaml:"-"`
	Description string `yaml:"description"`
}

// Choice is one selectable option. Name is displayed, Value is recorded as the answer.
type Choice struct {
	Name  string
	Value string
}

// BuildTypeChoices aligns the type descriptions in a column after the longest key.
// Order is preserved.
func BuildTypeChoices(types []TypeDescriptor) ([]Choice, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no commit types defined", ErrConfiguration)
	}

	longest := 0
	seen := make(map[string]struct{}, len(types))
	for i, t := range types {
		if strings.TrimSpace(t.Key) == "" {
			return nil, fmt.Errorf("%w: type %d has an empty key", ErrConfiguration, i+1)
		}
		if strings.TrimSpace(t.Description) == "" {
			return nil, fmt.Errorf("%w: type %q is missing a description", ErrConfiguration, t.Key)
		}
		if _, dup := seen[t.Key]; dup {
			return nil, fmt.Errorf("%w: type %q is defined more than once", ErrConfiguration, t.Key)
		}
		seen[t.Key] = struct{}{}

		if n := utf8.RuneCountInString(t.Key); n > longest {
			longest = n
		}
	}

	length := longest + 1
	result := make([]Choice, 0, len(types))
	for _, t := range types {
		result = append(result, Choice{
			Name:  rightPad(t.Key+":", length) + " " + t.Description,
			Value: t.Key,
		})
	}

	return result, nil
}

// ScopeChoices lists one choice per package followed by the skip option.
func ScopeChoices(packages []string) []Choice {
	result := make([]Choice, 0, len(packages)+1)
	for _, name := range packages {
		result = append(result, Choice{Name: name, Value: name})
	}
	return append(result, Choice{Name: SkipName, Value: ""})
}

func rightPad(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
