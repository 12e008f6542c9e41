// Package notes rewrites release-description files in place by replacing
// a placeholder token with extracted changelog content.
package notes

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPlaceholder is the literal marker replaced during substitution.
const DefaultPlaceholder = "__CHANGELOG__"

// Substitute replaces every occurrence of token in content with
// replacement. The replacement is a literal substring replace; no pattern
// expansion of any kind.
func Substitute(content, replacement, token string) string {
	return strings.ReplaceAll(content, token, replacement)
}

// Preview reads the release description at path and returns the substituted
// content without writing anything. Used for dry runs.
func Preview(path, replacement, token string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading release description: %w", err)
	}
	return Substitute(string(data), replacement, token), nil
}

// HasPlaceholder reports whether the release description at path contains
// the placeholder token.
func HasPlaceholder(path, token string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading release description: %w", err)
	}
	return strings.Contains(string(data), token), nil
}

// InjectFile substitutes the placeholder token in the release description
// at path and rewrites the file in place: read all, replace, seek to start,
// write, truncate to the new length. Truncation guards against the new
// content being shorter than the old. No backup is kept and the write is
// not atomic; a missing token rewrites the file identically.
func InjectFile(path, replacement, token string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening release description: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading release description: %w", err)
	}

	result := Substitute(string(data), replacement, token)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding release description: %w", err)
	}
	if _, err := f.WriteString(result); err != nil {
		return fmt.Errorf("writing release description: %w", err)
	}
	if err := f.Truncate(int64(len(result))); err != nil {
		return fmt.Errorf("truncating release description: %w", err)
	}

	return nil
}
