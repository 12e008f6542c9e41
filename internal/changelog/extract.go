package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultHeadingPrefix marks the start of a version section. A line
// beginning with this prefix terminates extraction of the section above it.
const DefaultHeadingPrefix = "## Version"

// Extract returns the text between the first line containing label and the
// next line beginning with prefix, exclusive of both boundary lines. Lines
// in between are returned verbatim, terminators included.
//
// The label is matched by substring containment, not semantic-version
// comparison. If the label never appears, or the matching line is the last
// line of input, the result is an empty string and no error.
func Extract(r io.Reader, label, prefix string) (string, error) {
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" && strings.Contains(line, label) {
			return readSection(br, prefix)
		}
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("reading changelog: %w", err)
		}
	}
}

// readSection accumulates lines until the next heading or end of input.
func readSection(br *bufio.Reader, prefix string) (string, error) {
	var section strings.Builder

	for {
		line, err := br.ReadString('\n')
		if strings.HasPrefix(line, prefix) {
			return section.String(), nil
		}
		section.WriteString(line)
		if err == io.EOF {
			return section.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("reading changelog: %w", err)
		}
	}
}

// ExtractFile extracts the section for label from the changelog at path.
func ExtractFile(path, label, prefix string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening changelog: %w", err)
	}
	defer f.Close()

	return Extract(f, label, prefix)
}

// NormalizeLabel normalizes a version label by removing the "v" prefix.
// This allows accepting both "v2.0.0" and "2.0.0" as input, including
// labels derived from git tags.
func NormalizeLabel(label string) string {
	return strings.TrimPrefix(label, "v")
}
