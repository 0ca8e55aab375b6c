package project

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/repo/packages/api/src", 0o750))
	for _, file := range files {
		require.NoError(t, afero.WriteFile(fs, file, []byte("{}"), 0o600))
	}
	return fs
}

func TestFindRootFrom(t *testing.T) {
	t.Setenv("CZJIRA_PROJECT_DIR", "")

	tests := []struct {
		name     string
		start    string
		expected string
		files    []string
	}{
		{
			name:     "lerna.json beats nearer package.json",
			files:    []string{"/work/repo/lerna.json", "/work/repo/package.json", "/work/repo/packages/api/package.json"},
			start:    "/work/repo/packages/api/src",
			expected: "/work/repo",
		},
		{
			name:     "nearest package.json without lerna",
			files:    []string{"/work/repo/packages/api/package.json"},
			start:    "/work/repo/packages/api/src",
			expected: "/work/repo/packages/api",
		},
		{
			name:     "git directory",
			files:    []string{"/work/repo/.git"},
			start:    "/work/repo/packages/api/src",
			expected: "/work/repo",
		},
		{
			name:     "falls back to start directory",
			start:    "/work/repo/packages/api/src",
			expected: "/work/repo/packages/api/src",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newProjectFs(t, tt.files...)
			assert.Equal(t, tt.expected, FindRootFrom(fs, tt.start))
		})
	}
}

func TestFindRootFrom_EnvOverride(t *testing.T) {
	fs := newProjectFs(t, "/work/repo/lerna.json")
	require.NoError(t, fs.MkdirAll("/elsewhere", 0o750))

	t.Setenv("CZJIRA_PROJECT_DIR", "/elsewhere")
	assert.Equal(t, "/elsewhere", FindRootFrom(fs, "/work/repo/packages/api"))

	t.Setenv("CZJIRA_PROJECT_DIR", "/does/not/exist")
	assert.Equal(t, "/work/repo", FindRootFrom(fs, "/work/repo/packages/api"))
}
