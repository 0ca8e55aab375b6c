package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/choices"
	"github.com/wizzomafizzo/czjira/internal/constants"
	"github.com/wizzomafizzo/czjira/internal/storage"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Types   TypeList      `yaml:"types"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// TypeList is the ordered list of commit types. In YAML it is a mapping from the type key
// to its description, and the mapping order is kept.
type TypeList []choices.TypeDescriptor

// UnmarshalYAML accepts either `key: {description: ...}` or the shorthand `key: description`.
func (l *TypeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: types must be a mapping of type to description", node.Line)
	}

	types := make(TypeList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		descriptor := choices.TypeDescriptor{Key: keyNode.Value}
		switch valueNode.Kind {
		case yaml.ScalarNode:
			descriptor.Description = valueNode.Value
		case yaml.MappingNode:
			var value struct {
				Description string `yaml:"description"`
			}
			if err := valueNode.Decode(&value); err != nil {
				return fmt.Errorf("type %q: %w", keyNode.Value, err)
			}
			descriptor.Description = value.Description
		default:
			return fmt.Errorf("line %d: type %q must have a description", valueNode.Line, keyNode.Value)
		}

		types = append(types, descriptor)
	}

	*l = types
	return nil
}

// MarshalYAML writes the list back as an ordered mapping.
func (l TypeList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, t := range l {
		value := &yaml.Node{}
		if err := value.Encode(t); err != nil {
			return nil, fmt.Errorf("failed to encode type %q: %w", t.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: t.Key},
			value,
		)
	}
	return node, nil
}

// Load reads and validates the config file at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config, err := LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadFromYAML loads config from YAML bytes. Sections missing from the document keep
// their defaults.
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if parsed.Types != nil {
		config.Types = parsed.Types
	}
	if parsed.Logging.Level != "" {
		config.Logging.Level = parsed.Logging.Level
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Resolve loads the config file at path when one is given. Otherwise the project config,
// then the user config, then the built-in defaults are used.
func Resolve(fs afero.Fs, path, projectRoot string) (*Config, string, error) {
	if path != "" {
		config, err := Load(fs, path)
		if err != nil {
			return nil, "", err
		}
		return config, path, nil
	}

	candidates := []string{
		filepath.Join(projectRoot, constants.ConfigFilename),
		storage.New(fs).GetUserConfigPath(),
	}
	for _, candidate := range candidates {
		if _, err := fs.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to stat config %s: %w", candidate, err)
		}

		config, err := Load(fs, candidate)
		if err != nil {
			return nil, "", err
		}
		return config, candidate, nil
	}

	return DefaultConfig(), "", nil
}

// Validate checks the commit types and the logging level.
func (c *Config) Validate() error {
	if _, err := choices.BuildTypeChoices(c.Types); err != nil {
		return err //nolint:wrapcheck // already describes the failing type
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
		}
	}

	return nil
}

// LogLevel returns the configured log level, defaulting to info.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil || c.Logging.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}
