package workspace

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const root = "/repo"

func newWorkspaceFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))
	}
	return fs
}

func lernaManifest(version string) string {
	return `{"name": "lerna", "version": "` + version + `"}`
}

func pkg(name string) string {
	return `{"name": "` + name + `", "version": "1.0.0"}`
}

func packageNames(packages []Package) []string {
	names := make([]string, 0, len(packages))
	for _, p := range packages {
		names = append(names, p.Name)
	}
	return names
}

// stubQuery returns fixed packages and records nothing else.
type stubQuery struct {
	err      error
	packages []Package
}

func (s *stubQuery) PackageConfigs(context.Context) ([]string, error) {
	return []string{DefaultPackageGlob}, nil
}

func (s *stubQuery) Packages(context.Context) ([]Package, error) {
	return s.packages, s.err
}

// stubLibrary exposes both API generations and records which one was used.
type stubLibrary struct {
	legacy     *stubQuery
	modern     *stubQuery
	legacyRoot string
	modernRoot string
}

func newStubLibrary() *stubLibrary {
	return &stubLibrary{
		legacy: &stubQuery{packages: []Package{{Name: "legacy-pkg"}}},
		modern: &stubQuery{packages: []Package{{Name: "@org/modern-pkg"}}},
	}
}

func (s *stubLibrary) Legacy(root string) WorkspaceQuery {
	s.legacyRoot = root
	return s.legacy
}

func (s *stubLibrary) Modern(root string) WorkspaceQuery {
	s.modernRoot = root
	return s.modern
}
