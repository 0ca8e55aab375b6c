package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/constants"
)

// DefaultPackageGlob is used when the workspace does not configure any package locations.
const DefaultPackageGlob = "packages/*"

// Package is one workspace package.
type Package struct {
	Name     string
	Location string
}

type packageManifest struct {
	Lerna      *lernaConfig    `json:"lerna,omitempty"`
	Name       string          `json:"name"`
	Version    string          `json:"version"`
	Workspaces json.RawMessage `json:"workspaces,omitempty"`
}

type lernaConfig struct {
	Packages      []string `json:"packages,omitempty"`
	UseWorkspaces bool     `json:"useWorkspaces,omitempty"`
}

// workspaceGlobs decodes the "workspaces" field, which is either a list of globs or an
// object with a "packages" list.
func (m *packageManifest) workspaceGlobs() ([]string, bool, error) {
	if len(m.Workspaces) == 0 || string(m.Workspaces) == "null" {
		return nil, false, nil
	}

	var list []string
	if err := json.Unmarshal(m.Workspaces, &list); err == nil {
		return list, true, nil
	}

	var object struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(m.Workspaces, &object); err != nil {
		return nil, false, fmt.Errorf("workspaces must be a list or an object with packages: %w", err)
	}
	return object.Packages, object.Packages != nil, nil
}

func readJSON(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err //nolint:wrapcheck // callers add context
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// readManifest reads the package.json in dir.
func readManifest(fs afero.Fs, dir string) (*packageManifest, error) {
	var manifest packageManifest
	if err := readJSON(fs, filepath.Join(dir, constants.PackageManifestFilename), &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// readLernaConfig reads lerna.json in root. A missing file yields found == false.
func readLernaConfig(fs afero.Fs, root string) (config *lernaConfig, found bool, err error) {
	var cfg lernaConfig
	err = readJSON(fs, filepath.Join(root, constants.LernaConfigFilename), &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return &lernaConfig{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &cfg, true, nil
}

// findConfigRoot walks up from cwd to the nearest directory holding a lerna.json or, when
// manifestKey is set, a package.json with a "lerna" key. Without either, cwd is returned
// with found == false.
func findConfigRoot(fs afero.Fs, cwd string, manifestKey bool) (dir string, found bool, err error) {
	dir = cwd
	for {
		if ok, _ := afero.Exists(fs, filepath.Join(dir, constants.LernaConfigFilename)); ok {
			return dir, true, nil
		}
		if manifestKey {
			manifest, err := readManifest(fs, dir)
			if err == nil && manifest.Lerna != nil {
				return dir, true, nil
			}
			if err != nil && !isNotExist(err) {
				return "", false, err
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, false, nil
		}
		dir = parent
	}
}

func unmarshalList(raw json.RawMessage, list *[]string) error {
	if len(raw) == 0 {
		return errors.New("empty")
	}
	return json.Unmarshal(raw, list) //nolint:wrapcheck // only success matters to callers
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
