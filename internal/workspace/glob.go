package workspace

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/constants"
)

// nodeModulesPattern excludes installed dependencies from package globs.
const nodeModulesPattern = "**/" + constants.NodeModulesDir + "/**"

// findManifests expands each package glob to the package.json files below root. Results
// follow the pattern order, are lexically sorted within a pattern and never include
// anything inside node_modules.
func findManifests(afs afero.Fs, root string, patterns []string) ([]string, error) {
	fsys := afero.NewIOFS(afero.NewBasePathFs(afs, root))

	var result []string
	seen := make(map[string]struct{})

	for _, pattern := range patterns {
		pattern = path.Join(path.Clean(filepath.ToSlash(strings.TrimSpace(pattern))), constants.PackageManifestFilename)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid package glob %q: %w", pattern, doublestar.ErrBadPattern)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand package glob %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if excluded, _ := doublestar.Match(nodeModulesPattern, match); excluded {
				continue
			}
			full := filepath.Join(root, filepath.FromSlash(match))
			if _, dup := seen[full]; dup {
				continue
			}
			seen[full] = struct{}{}
			result = append(result, full)
		}
	}

	return result, nil
}
