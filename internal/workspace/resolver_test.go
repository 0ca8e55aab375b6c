package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/czjira/internal/testutil"
)

func TestResolvePackages_Legacy(t *testing.T) {
	t.Parallel()

	ctx, getLogOutput := testutil.NewTestContext(t)
	fs := newWorkspaceFs(t, map[string]string{
		"/repo/node_modules/lerna/package.json": lernaManifest("2.5.0"),
		"/repo/lerna.json":                      `{"lerna": "2.5.0", "packages": ["packages/*"]}`,
		"/repo/packages/web/package.json":       pkg("@acme/web"),
		"/repo/packages/api/package.json":       pkg("api"),
	})

	names, err := NewResolver(fs).ResolvePackages(ctx, root)
	require.NoError(t, err)

	assert.Equal(t, []string{"api", "web"}, names)
	assert.Contains(t, getLogOutput(), `"legacy":true`)
}

func TestResolvePackages_Modern(t *testing.T) {
	t.Parallel()

	ctx, getLogOutput := testutil.NewTestContext(t)
	fs := newWorkspaceFs(t, map[string]string{
		"/repo/node_modules/lerna/package.json": lernaManifest("3.1.0"),
		"/repo/lerna.json":                      `{"version": "independent", "useWorkspaces": true}`,
		"/repo/package.json":                    `{"name": "root", "workspaces": {"packages": ["services/*", "libs/*"]}}`,
		"/repo/services/users/package.json":     pkg("@acme/users"),
		"/repo/libs/auth/package.json":          pkg("@acme/auth"),
		"/repo/libs/ui/package.json":            pkg("ui"),
	})

	names, err := NewResolver(fs).ResolvePackages(ctx, root)
	require.NoError(t, err)

	assert.Equal(t, []string{"users", "auth", "ui"}, names)
	assert.Contains(t, getLogOutput(), `"legacy":false`)
}

func TestResolvePackages_ModernFromSubdirectory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		files map[string]string
		name  string
		cwd   string
	}{
		{
			name: "lerna.json above package",
			files: map[string]string{
				"/repo/lerna.json": `{"packages": ["modules/*"]}`,
			},
			cwd: "/repo/modules/api",
		},
		{
			name: "lerna.json above nested source directory",
			files: map[string]string{
				"/repo/lerna.json": `{"packages": ["modules/*"]}`,
			},
			cwd: "/repo/modules/web/src/components",
		},
		{
			name: "lerna key in root package.json",
			files: map[string]string{
				"/repo/package.json": `{"name": "root", "lerna": {"packages": ["modules/*"]}}`,
			},
			cwd: "/repo/modules/api",
		},
		{
			name: "useWorkspaces from package directory",
			files: map[string]string{
				"/repo/lerna.json":   `{"useWorkspaces": true}`,
				"/repo/package.json": `{"name": "root", "workspaces": ["modules/*"]}`,
			},
			cwd: "/repo/modules/web",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, getLogOutput := testutil.NewTestContext(t)
			files := map[string]string{
				"/repo/node_modules/lerna/package.json": lernaManifest("3.1.0"),
				"/repo/modules/api/package.json":        pkg("@acme/api"),
				"/repo/modules/web/package.json":        pkg("web"),
			}
			for path, content := range tt.files {
				files[path] = content
			}
			fs := newWorkspaceFs(t, files)
			require.NoError(t, fs.MkdirAll(tt.cwd, 0o750))

			fromRoot, err := NewResolver(fs).ResolvePackages(ctx, root)
			require.NoError(t, err)

			fromSubdirectory, err := NewResolver(fs).ResolvePackages(ctx, tt.cwd)
			require.NoError(t, err)

			assert.Equal(t, []string{"api", "web"}, fromSubdirectory)
			assert.Equal(t, fromRoot, fromSubdirectory)
			assert.Contains(t, getLogOutput(), `"lerna_root":"/repo"`)
		})
	}
}

func TestResolvePackages_LegacyFromSubdirectory(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	fs := newWorkspaceFs(t, map[string]string{
		"/repo/node_modules/lerna/package.json": lernaManifest("2.11.0"),
		"/repo/lerna.json":                      `{"lerna": "2.11.0", "packages": ["*"]}`,
		"/repo/package.json":                    `{"name": "root"}`,
		"/repo/packages/api/package.json":       pkg("@acme/api"),
		"/repo/packages/web/package.json":       pkg("web"),
	})

	names, err := NewResolver(fs).ResolvePackages(ctx, "/repo/packages")
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "web"}, names)

	names, err = NewResolver(fs).ResolvePackages(ctx, root)
	require.NoError(t, err)
	assert.Empty(t, names, "globs expand relative to the working directory")
}

func TestResolvePackages_UsesStubLibrary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		expected []string
	}{
		{name: "legacy", version: "2.5.0", expected: []string{"legacy-pkg"}},
		{name: "modern", version: "3.1.0", expected: []string{"modern-pkg"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := newWorkspaceFs(t, map[string]string{
				"/repo/node_modules/lerna/package.json": lernaManifest(tt.version),
			})

			names, err := NewResolverWithLibrary(fs, newStubLibrary()).ResolvePackages(context.Background(), root)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestResolvePackages_DependencyMissing(t *testing.T) {
	t.Parallel()

	fs := newWorkspaceFs(t, map[string]string{
		"/repo/lerna.json":                pkg("root"),
		"/repo/packages/api/package.json": pkg("api"),
	})

	names, err := NewResolver(fs).ResolvePackages(context.Background(), root)
	require.ErrorIs(t, err, ErrDependencyMissing)
	assert.Nil(t, names)
}

func TestResolvePackages_QueryFailure(t *testing.T) {
	t.Parallel()

	fs := newWorkspaceFs(t, map[string]string{
		"/repo/node_modules/lerna/package.json": lernaManifest("3.1.0"),
		"/repo/lerna.json":                      `{"packages": `,
	})

	names, err := NewResolver(fs).ResolvePackages(context.Background(), root)
	require.ErrorIs(t, err, ErrWorkspaceQuery)
	assert.Nil(t, names)
}

func TestResolvePackages_StubQueryFailure(t *testing.T) {
	t.Parallel()

	lib := newStubLibrary()
	lib.legacy.err = errors.Join(ErrWorkspaceQuery, errors.New("boom"))
	fs := newWorkspaceFs(t, map[string]string{
		"/repo/node_modules/lerna/package.json": lernaManifest("2.0.0"),
	})

	_, err := NewResolverWithLibrary(fs, lib).ResolvePackages(context.Background(), root)
	require.ErrorIs(t, err, ErrWorkspaceQuery)
}

func TestScopeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
	}{
		{name: "api", expected: "api"},
		{name: "@acme/api", expected: "api"},
		{name: "@acme/api/extra", expected: "api"},
		{name: "@acme", expected: ""},
		{name: "not@scoped", expected: "not@scoped"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ScopeName(tt.name))
		})
	}
}
