// Package workspace resolves the packages of a lerna monorepo so they can be offered as
// commit scopes.
package workspace

import (
	"context"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/logging"
)

// Resolver lists the scope names of the workspace a directory belongs to.
type Resolver struct {
	fs      afero.Fs
	library Library
}

// NewResolver creates a Resolver reading manifests from fs.
func NewResolver(fs afero.Fs) *Resolver {
	return NewResolverWithLibrary(fs, NewFSLibrary(fs))
}

// NewResolverWithLibrary creates a Resolver that enumerates packages through lib.
func NewResolverWithLibrary(fs afero.Fs, lib Library) *Resolver {
	return &Resolver{fs: fs, library: lib}
}

// ResolvePackages returns the package names of the workspace at cwd, in the order lerna
// reports them, with any @org/ prefix removed.
func (r *Resolver) ResolvePackages(ctx context.Context, cwd string) ([]string, error) {
	install, err := LocateLerna(r.fs, cwd)
	if err != nil {
		return nil, err
	}

	query, err := NewWorkspaceQuery(r.library, install.Version, cwd)
	if err != nil {
		return nil, err
	}

	ctx = logging.With(ctx, "lerna", install.Dir)
	logging.Get(ctx).Debug().
		Str("version", install.Version).
		Bool("legacy", install.IsLegacy()).
		Msg("resolved lerna installation")

	packages, err := query.Packages(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // queries return ErrWorkspaceQuery wrapped errors
	}

	names := make([]string, 0, len(packages))
	for _, pkg := range packages {
		names = append(names, ScopeName(pkg.Name))
	}
	return names, nil
}

// ScopeName strips the organization from a scoped package name: "@org/name" becomes "name".
func ScopeName(name string) string {
	if !strings.HasPrefix(name, "@") {
		return name
	}
	parts := strings.Split(name, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
