// Package storage locates czjira's per-user files: the user config under the XDG config
// home and the log and answer history under the XDG data home.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/constants"
)

// AppName is the directory name used under each XDG base directory.
const AppName = constants.AppName

// Manager resolves czjira files, creating the data directory on fs when a data file is
// requested.
type Manager struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns $XDG_DATA_HOME/czjira, creating it if necessary.
func (m *Manager) GetDataDir() (string, error) {
	dir := filepath.Join(xdg.DataHome, AppName)
	if err := m.fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// GetLogPath returns the rotated log file path.
func (m *Manager) GetLogPath() (string, error) {
	return m.dataFile(constants.LogFilename)
}

// GetDatabasePath returns the answer history database path.
func (m *Manager) GetDatabasePath() (string, error) {
	return m.dataFile(constants.DatabaseFilename)
}

// GetUserConfigPath returns where the user-wide config file lives. The directory is not created.
func (*Manager) GetUserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, constants.UserConfigFilename)
}

func (m *Manager) dataFile(name string) (string, error) {
	dir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
