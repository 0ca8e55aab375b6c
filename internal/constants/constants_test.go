package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "history.db", DatabaseFilename)
}

func TestAppName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "czjira", AppName)
}

func TestConfigFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ".czjira.yml", ConfigFilename)
}

func TestLogFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "czjira.log", LogFilename)
}

func TestWorkspaceManifests(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "lerna.json", LernaConfigFilename)
	assert.Equal(t, "package.json", PackageManifestFilename)
	assert.Equal(t, "node_modules", NodeModulesDir)
}
