// Package constants contains file names, answer field names and limits shared by czjira.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "czjira"

	// ConfigFilename is the project-local configuration file name.
	ConfigFilename = ".czjira.yml"

	// UserConfigFilename is the configuration file name inside the XDG config directory.
	UserConfigFilename = "config.yml"

	// LogFilename is the default log file name.
	LogFilename = "czjira.log"

	// DatabaseFilename is the answer history database file name.
	DatabaseFilename = "history.db"

	// ProjectDirEnv overrides project root detection when set.
	ProjectDirEnv = "CZJIRA_PROJECT_DIR"
)

// Workspace manifest names.
const (
	// LernaPackage is the npm package name of the monorepo manager.
	LernaPackage = "lerna"

	// LernaConfigFilename is the lerna workspace configuration file.
	LernaConfigFilename = "lerna.json"

	// PackageManifestFilename is the npm package manifest file.
	PackageManifestFilename = "package.json"

	// NodeModulesDir is the directory npm installs dependencies into.
	NodeModulesDir = "node_modules"
)
