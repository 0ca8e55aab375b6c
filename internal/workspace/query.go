package workspace

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/logging"
)

// WorkspaceQuery enumerates the packages of one workspace.
type WorkspaceQuery interface {
	// PackageConfigs returns the package globs of the workspace.
	PackageConfigs(ctx context.Context) ([]string, error)
	// Packages returns the workspace packages in glob order.
	Packages(ctx context.Context) ([]Package, error)
}

// Library exposes both generations of the lerna package API, each bound to the directory
// the command runs in.
type Library interface {
	// Legacy is the Repository + PackageUtilities API of lerna before 3.0.0.
	Legacy(cwd string) WorkspaceQuery
	// Modern is the Project API of lerna 3.0.0 and later.
	Modern(cwd string) WorkspaceQuery
}

// NewWorkspaceQuery picks the API matching the installed lerna version.
func NewWorkspaceQuery(lib Library, version, cwd string) (WorkspaceQuery, error) {
	if !validVersion(version) {
		return nil, fmt.Errorf("%w: invalid lerna version %q", ErrDependencyMissing, version)
	}
	if compareVersions(version, ModernVersion) < 0 {
		return lib.Legacy(cwd), nil
	}
	return lib.Modern(cwd), nil
}

// FSLibrary implements Library by reading the workspace manifests directly.
type FSLibrary struct {
	fs afero.Fs
}

// NewFSLibrary creates a Library backed by fs.
func NewFSLibrary(fs afero.Fs) *FSLibrary {
	return &FSLibrary{fs: fs}
}

// Legacy returns a LegacyWorkspaceQuery for cwd.
func (l *FSLibrary) Legacy(cwd string) WorkspaceQuery {
	return &LegacyWorkspaceQuery{fs: l.fs, cwd: cwd}
}

// Modern returns a ModernWorkspaceQuery for cwd.
func (l *FSLibrary) Modern(cwd string) WorkspaceQuery {
	return &ModernWorkspaceQuery{fs: l.fs, cwd: cwd}
}

// LegacyWorkspaceQuery follows lerna 2.x: package configs come from the nearest lerna.json
// at or above cwd, or from the package.json next to it when useWorkspaces is set, falling
// back to the default glob in both cases. Globs are expanded relative to cwd.
type LegacyWorkspaceQuery struct {
	fs  afero.Fs
	cwd string
}

func (q *LegacyWorkspaceQuery) PackageConfigs(_ context.Context) ([]string, error) {
	repoRoot, _, err := findConfigRoot(q.fs, q.cwd, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
	}

	config, _, err := readLernaConfig(q.fs, repoRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
	}

	if config.UseWorkspaces {
		manifest, err := readManifest(q.fs, repoRoot)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
		}
		var list []string
		if err := unmarshalList(manifest.Workspaces, &list); err == nil && len(list) > 0 {
			return list, nil
		}
		return []string{DefaultPackageGlob}, nil
	}

	if len(config.Packages) > 0 {
		return config.Packages, nil
	}
	return []string{DefaultPackageGlob}, nil
}

func (q *LegacyWorkspaceQuery) Packages(ctx context.Context) ([]Package, error) {
	configs, err := q.PackageConfigs(ctx)
	if err != nil {
		return nil, err
	}
	return getPackages(ctx, q.fs, configs, q.cwd)
}

// ModernWorkspaceQuery follows lerna 3.x Project: the project root is the nearest directory
// at or above cwd with a lerna.json or a package.json "lerna" key, and cwd when there is
// none. With useWorkspaces the root package.json must declare workspaces, either as a
// list or as {packages: [...]}. Globs are expanded relative to the project root.
type ModernWorkspaceQuery struct {
	fs  afero.Fs
	cwd string
}

// Root returns the project root packages are enumerated from.
func (q *ModernWorkspaceQuery) Root() (string, error) {
	root, _, err := findConfigRoot(q.fs, q.cwd, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
	}
	return root, nil
}

func (q *ModernWorkspaceQuery) PackageConfigs(_ context.Context) ([]string, error) {
	root, err := q.Root()
	if err != nil {
		return nil, err
	}
	return q.packageConfigs(root)
}

func (q *ModernWorkspaceQuery) packageConfigs(root string) ([]string, error) {
	config, found, err := readLernaConfig(q.fs, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
	}

	var manifest *packageManifest
	if !found || config.UseWorkspaces {
		manifest, err = readManifest(q.fs, root)
		if err != nil && (config.UseWorkspaces || !isNotExist(err)) {
			return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
		}
		if !found && manifest != nil && manifest.Lerna != nil {
			config = manifest.Lerna
		}
	}

	if config.UseWorkspaces {
		globs, ok, err := manifest.workspaceGlobs()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: useWorkspaces is set but %s has no workspaces",
				ErrWorkspaceQuery, filepath.Join(root, "package.json"))
		}
		return globs, nil
	}

	if len(config.Packages) > 0 {
		return config.Packages, nil
	}
	return []string{DefaultPackageGlob}, nil
}

func (q *ModernWorkspaceQuery) Packages(ctx context.Context) ([]Package, error) {
	root, err := q.Root()
	if err != nil {
		return nil, err
	}
	configs, err := q.packageConfigs(root)
	if err != nil {
		return nil, err
	}
	ctx = logging.With(ctx, "lerna_root", root)
	logging.Get(ctx).Debug().Msg("found lerna project")
	return getPackages(ctx, q.fs, configs, root)
}

// getPackages reads the manifest of every directory matched by packageConfigs below rootPath.
func getPackages(ctx context.Context, fs afero.Fs, packageConfigs []string, rootPath string) ([]Package, error) {
	manifests, err := findManifests(fs, rootPath, packageConfigs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
	}

	logging.Get(ctx).Debug().
		Strs("globs", packageConfigs).
		Int("matches", len(manifests)).
		Msg("expanded package globs")

	packages := make([]Package, 0, len(manifests))
	for _, manifestPath := range manifests {
		if err := ctx.Err(); err != nil {
			return nil, err //nolint:wrapcheck // cancellation is returned as is
		}

		location := filepath.Dir(manifestPath)
		manifest, err := readManifest(fs, location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWorkspaceQuery, err)
		}
		if manifest.Name == "" {
			return nil, fmt.Errorf("%w: %s has no name", ErrWorkspaceQuery, manifestPath)
		}

		packages = append(packages, Package{Name: manifest.Name, Location: location})
	}

	return packages, nil
}
