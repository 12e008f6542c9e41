// Package config provides hierarchical configuration for relnote using koanf.
// Configuration is loaded with priority: environment variables > project
// config (.relnote/config.yml) > user config (~/.config/relnote/config.yml)
// > defaults. A project-level config.json is accepted as an alternative to
// YAML for repositories that keep all tooling config in JSON.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the relnote settings.
type Configuration struct {
	// Changelog is the path to the markdown changelog, relative to the
	// working directory unless absolute.
	Changelog string `koanf:"changelog"`

	// Notes is the path to the release-description file that carries the
	// placeholder token. Rewritten in place by inject.
	Notes string `koanf:"notes"`

	// Placeholder is the literal token replaced with the extracted section.
	Placeholder string `koanf:"placeholder"`

	// HeadingPrefix marks version headings in the changelog. A line
	// beginning with this prefix ends the section above it.
	HeadingPrefix string `koanf:"heading_prefix"`

	// RemoteURL is an optional URL for fetching the changelog instead of
	// reading it from disk (extract --remote).
	RemoteURL string `koanf:"remote_url"`

	// RemoteTimeout is the remote fetch timeout in seconds.
	RemoteTimeout int `koanf:"remote_timeout"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
// projectConfigPath overrides the project config location when non-empty
// (used by the --config flag and tests).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("RELNOTE_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := ValidateValues(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadUserConfig loads the user-level YAML config if it exists.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	return loadYAML(k, path, "user")
}

// loadProjectConfig loads the project-level config. YAML is preferred;
// JSON is accepted when only config.json exists. An explicitly requested
// path must exist; only the default locations are optional.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		if strings.HasSuffix(customPath, ".json") {
			return loadJSON(k, customPath, "project")
		}
		return loadYAML(k, customPath, "project")
	}

	yamlPath := ProjectConfigPath()
	if fileExists(yamlPath) {
		return loadYAML(k, yamlPath, "project")
	}

	jsonPath := ProjectConfigJSONPath()
	if fileExists(jsonPath) {
		return loadJSON(k, jsonPath, "project")
	}

	return nil
}

// loadYAML validates and loads a YAML config file.
func loadYAML(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadJSON loads a JSON config file.
func loadJSON(k *koanf.Koanf, path, configType string) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: RELNOTE_HEADING_PREFIX -> heading_prefix
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELNOTE_"))
}

// fileExists returns true if the file exists and is statable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
