package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the conventional commit types and info level logging.
func DefaultConfig() *Config {
	return &Config{
		Types: TypeList{
			{Key: "feat", Description: "A new feature"},
			{Key: "fix", Description: "A bug fix"},
			{Key: "docs", Description: "Documentation only changes"},
			{
				Key: "style",
				Description: "Changes that do not affect the meaning of the code " +
					"(white-space, formatting, missing semi-colons, etc)",
			},
			{Key: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
			{Key: "perf", Description: "A code change that improves performance"},
			{Key: "test", Description: "Adding missing tests or correcting existing tests"},
			{
				Key: "build",
				Description: "Changes that affect the build system or external dependencies " +
					"(example scopes: gulp, broccoli, npm)",
			},
			{
				Key: "ci",
				Description: "Changes to our CI configuration files and scripts " +
					"(example scopes: Travis, Circle, BrowserStack, SauceLabs)",
			},
			{Key: "chore", Description: "Other changes that don't modify src or test files"},
			{Key: "revert", Description: "Reverts a previous commit"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
