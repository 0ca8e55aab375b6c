package message

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected string
		opts     WrapOptions
	}{
		{
			name:     "empty",
			text:     "",
			opts:     DefaultWrapOptions(),
			expected: "",
		},
		{
			name:     "short line unchanged",
			text:     "hello world",
			opts:     DefaultWrapOptions(),
			expected: "hello world",
		},
		{
			name:     "breaks at whitespace",
			text:     "aaaa bbbb cccc",
			opts:     WrapOptions{Width: 10, Newline: "\n", Trim: true},
			expected: "aaaa bbbb\ncccc",
		},
		{
			name:     "keeps long words whole",
			text:     strings.Repeat("x", 120) + " yy",
			opts:     DefaultWrapOptions(),
			expected: strings.Repeat("x", 120) + "\nyy",
		},
		{
			name:     "keeps blank lines between paragraphs",
			text:     "first paragraph\n\nsecond paragraph",
			opts:     DefaultWrapOptions(),
			expected: "first paragraph\n\nsecond paragraph",
		},
		{
			name:     "trims trailing blanks",
			text:     "hello   ",
			opts:     DefaultWrapOptions(),
			expected: "hello",
		},
		{
			name:     "without trim keeps trailing space",
			text:     "aaaa bbbb cccc",
			opts:     WrapOptions{Width: 10, Newline: "\n"},
			expected: "aaaa bbbb \ncccc",
		},
		{
			name:     "indent",
			text:     "aaaa bbbb cccc",
			opts:     WrapOptions{Width: 10, Indent: "  ", Trim: true},
			expected: "  aaaa bbbb\n  cccc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Wrap(tt.text, tt.opts))
		})
	}
}

func TestWrap_LinesFitWidth(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	wrapped := Wrap(text, DefaultWrapOptions())

	lines := strings.Split(wrapped, "\n")
	assert.Greater(t, len(lines), 5)
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), MaxLineWidth)
		assert.False(t, strings.HasSuffix(line, " "), "line should be trimmed: %q", line)
	}
}
