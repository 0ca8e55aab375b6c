package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/constants"
	"golang.org/x/mod/semver"
)

// ModernVersion is the first lerna release that enumerates packages through Project.
const ModernVersion = "3.0.0"

// Installation is a lerna install found in some node_modules directory.
type Installation struct {
	Dir     string
	Version string
}

// IsLegacy reports whether the install predates the Project API.
func (i Installation) IsLegacy() bool {
	return compareVersions(i.Version, ModernVersion) < 0
}

// LocateLerna resolves lerna the way node resolves a package: the nearest
// node_modules/lerna at or above cwd.
func LocateLerna(fs afero.Fs, cwd string) (Installation, error) {
	dir := cwd
	for {
		pkgDir := filepath.Join(dir, constants.NodeModulesDir, constants.LernaPackage)
		manifest, err := readManifest(fs, pkgDir)
		if err == nil {
			if !validVersion(manifest.Version) {
				return Installation{}, fmt.Errorf("%w: %s has an invalid version %q",
					ErrDependencyMissing, pkgDir, manifest.Version)
			}
			return Installation{Dir: pkgDir, Version: manifest.Version}, nil
		}
		if exists, _ := afero.Exists(fs, filepath.Join(pkgDir, constants.PackageManifestFilename)); exists {
			return Installation{}, fmt.Errorf("%w: %v", ErrDependencyMissing, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Installation{}, fmt.Errorf("%w: cannot find module %q from %s",
				ErrDependencyMissing, constants.LernaPackage, cwd)
		}
		dir = parent
	}
}

func canonical(version string) string {
	return "v" + strings.TrimPrefix(strings.TrimSpace(version), "v")
}

// validVersion accepts MAJOR.MINOR.PATCH versions with optional prerelease and build parts.
func validVersion(version string) bool {
	v, _, _ := strings.Cut(canonical(version), "+")
	return semver.IsValid(v) && semver.Canonical(v) == v
}

func compareVersions(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}
