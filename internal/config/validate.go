package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError is a configuration validation error with file context.
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		if e.FilePath != "" {
			return fmt.Sprintf("%s: field %q: %s", e.FilePath, e.Field, e.Message)
		}
		return fmt.Sprintf("field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks that the file at path is syntactically valid
// YAML. A missing or empty file is valid; defaults apply.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: path, Message: err.Error()}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return &ValidationError{FilePath: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	return nil
}

// ValidateValues checks the semantic constraints of a loaded configuration.
func ValidateValues(cfg *Configuration) error {
	if strings.TrimSpace(cfg.Changelog) == "" {
		return &ValidationError{Field: "changelog", Message: "path must not be empty"}
	}
	if strings.TrimSpace(cfg.Notes) == "" {
		return &ValidationError{Field: "notes", Message: "path must not be empty"}
	}
	if cfg.Placeholder == "" {
		return &ValidationError{Field: "placeholder", Message: "token must not be empty"}
	}
	if cfg.HeadingPrefix == "" {
		return &ValidationError{Field: "heading_prefix", Message: "prefix must not be empty"}
	}
	if cfg.RemoteTimeout < 0 {
		return &ValidationError{Field: "remote_timeout", Message: "must not be negative"}
	}
	return nil
}
