package message

import (
	"regexp"
	"strconv"
	"strings"
)

// WrapOptions controls how Wrap breaks text into lines.
type WrapOptions struct {
	Newline string
	Indent  string
	Width   int
	Trim    bool
}

// DefaultWrapOptions are the options used for the body and footer of a commit message.
func DefaultWrapOptions() WrapOptions {
	return WrapOptions{
		Trim:    true,
		Newline: "\n",
		Indent:  "",
		Width:   MaxLineWidth,
	}
}

const defaultWidth = 50

var (
	defaultLinePattern = linePattern(MaxLineWidth)
	trailingBlanks     = regexp.MustCompile(`(?m)[ \t]*$`)
)

// linePattern matches either up to width characters followed by whitespace (or the end of
// the text), or a single word that is longer than width.
func linePattern(width int) *regexp.Regexp {
	return regexp.MustCompile(`.{1,` + strconv.Itoa(width) + `}([\s\x{200B}]+|$)|[^\s\x{200B}]+?([\s\x{200B}]+|$)`)
}

// Wrap word-wraps text to the configured width. Words longer than the width are kept whole
// and existing line breaks are kept as separators.
func Wrap(text string, opts WrapOptions) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	pattern := defaultLinePattern
	if width != MaxLineWidth {
		pattern = linePattern(width)
	}

	newline := opts.Newline
	if newline == "" {
		newline = "\n" + opts.Indent
	}

	lines := pattern.FindAllString(text, -1)
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\n")
	}

	result := opts.Indent + strings.Join(lines, newline)
	if opts.Trim {
		result = trailingBlanks.ReplaceAllString(result, "")
	}

	return result
}
