package nextver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the worktree root when no config path is given
const ConfigFileName = ".nextver.yaml"

// Config represents the on-disk configuration
type Config struct {
	ReleaseMarker    string `yaml:"release_marker"`
	SkipMergeCommits bool   `yaml:"skip_merge_commits"`
	Language         string `yaml:"language"`
	LogLevel         string `yaml:"log_level"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		ReleaseMarker: DefaultReleaseMarker,
		Language:      "generic",
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
// A missing file is only an error when required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return cfg, nil
}

// DefaultConfigPath returns the config file location for a worktree root
func DefaultConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// ValidateLanguage reports whether language names one of the supported output formats
func ValidateLanguage(language string) error {
	if !slices.Contains(Languages, strings.ToLower(language)) {
		return fmt.Errorf("invalid language: %s", language)
	}
	return nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ReleaseMarker) == "" {
		return fmt.Errorf("release_marker is required")
	}

	if err := ValidateLanguage(c.Language); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid logging level: %s", c.LogLevel)
	}

	return nil
}
