// Package project provides utilities for detecting the workspace root directory.
package project

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/constants"
)

// markers identify a workspace root, most specific first.
var markers = []string{constants.LernaConfigFilename, constants.PackageManifestFilename, ".git"}

// FindRootFrom resolves the project root for startDir. The CZJIRA_PROJECT_DIR environment
// variable wins when it names an existing directory. Otherwise the nearest directory with a
// lerna.json is used, then the nearest with a package.json or .git, then startDir itself.
func FindRootFrom(fs afero.Fs, startDir string) string {
	if root, found := checkProjectDirEnv(fs); found {
		return root
	}

	for _, marker := range markers {
		if root, found := findProjectMarker(fs, startDir, marker); found {
			return root
		}
	}

	return startDir
}

// checkProjectDirEnv checks if CZJIRA_PROJECT_DIR is set to an existing directory
func checkProjectDirEnv(fs afero.Fs) (string, bool) {
	dir := os.Getenv(constants.ProjectDirEnv)
	if dir == "" {
		return "", false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	if ok, err := afero.DirExists(fs, abs); err != nil || !ok {
		return "", false
	}

	return abs, true
}

// findProjectMarker walks up from startDir looking for marker
func findProjectMarker(fs afero.Fs, startDir, marker string) (string, bool) {
	currentDir := startDir

	for {
		if exists(fs, filepath.Join(currentDir, marker)) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
