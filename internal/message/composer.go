// Package message renders collected answers into a conventional commit message with
// Jira smart commit directives.
package message

import (
	"strings"
	"unicode/utf8"

	"github.com/wizzomafizzo/czjira/internal/constants"
)

// MaxLineWidth is the hard limit of the head line and the wrap width of the body and footer.
const MaxLineWidth = constants.MaxLineWidth

const breakingPrefix = "BREAKING CHANGE: "

// Answers holds everything the user answered. Unanswered fields are empty.
type Answers struct {
	Type     string `json:"type"`
	Scope    string `json:"scope"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Breaking string `json:"breaking"`
	Issues   string `json:"issues"`
	Comment  string `json:"comment,omitempty"`
	Workflow string `json:"workflow,omitempty"`
	Time     string `json:"time,omitempty"`
}

// AnswersFromMap builds Answers from the field name keyed record collected by the prompt.
func AnswersFromMap(values map[string]string) Answers {
	return Answers{
		Type:     values[constants.FieldType],
		Scope:    values[constants.FieldScope],
		Subject:  values[constants.FieldSubject],
		Body:     values[constants.FieldBody],
		Breaking: values[constants.FieldBreaking],
		Issues:   values[constants.FieldIssues],
		Comment:  values[constants.FieldComment],
		Workflow: values[constants.FieldWorkflow],
		Time:     values[constants.FieldTime],
	}
}

// Compose builds the final commit message. Empty sections keep their blank line separators.
func Compose(a Answers) string {
	opts := DefaultWrapOptions()

	head := Head(a)
	body := Wrap(a.Body, opts)
	footer := Footer(a, opts)
	jira := JiraBlock(a)

	return head + "\n\n" + body + "\n\n" + footer + "\n\n" + jira + "\n\n"
}

// Head returns the first line, cut at MaxLineWidth characters even in the middle of a word.
func Head(a Answers) string {
	head := a.Type + DecorateScope(a.Scope) + ": " + strings.TrimSpace(a.Subject) + " " + strings.TrimSpace(a.Issues)
	return truncate(head, MaxLineWidth)
}

// DecorateScope wraps a non-blank scope in parentheses.
func DecorateScope(scope string) string {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return ""
	}
	return "(" + scope + ")"
}

// Breaking returns the wrapped breaking change block, or "" when there is none.
// A leading "BREAKING CHANGE: " typed by the user is not repeated.
func Breaking(breaking string, opts WrapOptions) string {
	breaking = strings.TrimSpace(breaking)
	if breaking == "" {
		return ""
	}
	breaking = breakingPrefix + strings.TrimPrefix(breaking, breakingPrefix)
	return Wrap(breaking, opts)
}

// Footer joins the non-empty footer sections with a blank line.
func Footer(a Answers, opts WrapOptions) string {
	return strings.Join(nonEmpty(Breaking(a.Breaking, opts)), "\n\n")
}

// JiraBlock returns the smart commit directives for the issue, one per line.
// Without an issue the block is empty whatever the other Jira answers are.
func JiraBlock(a Answers) string {
	issues := strings.TrimSpace(a.Issues)
	if issues == "" {
		return ""
	}
	issues += " "

	var workflow, spent, comment string
	if a.Workflow != "" {
		workflow = issues + "#" + a.Workflow
	}
	if a.Time != "" {
		spent = issues + "#time " + a.Time
	}
	if a.Comment != "" {
		comment = issues + "#comment " + a.Comment
	}

	return strings.Join(nonEmpty(workflow, spent, comment), "\n")
}

func nonEmpty(values ...string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
