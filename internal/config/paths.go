package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file,
// following the XDG Base Directory Specification:
//   - Linux: ~/.config/relnote/config.yml
//   - macOS: ~/Library/Application Support/relnote/config.yml
//   - Windows: %APPDATA%\relnote\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relnote", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level YAML config,
// always .relnote/config.yml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(".relnote", "config.yml")
}

// ProjectConfigJSONPath returns the path to the project-level JSON config,
// used when no YAML config exists.
func ProjectConfigJSONPath() string {
	return filepath.Join(".relnote", "config.json")
}
