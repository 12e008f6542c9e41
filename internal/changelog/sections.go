package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Heading describes one version heading line in the changelog.
type Heading struct {
	// Label is the heading text after the prefix, trimmed of whitespace.
	Label string
	// Line is the 1-based line number of the heading.
	Line int
}

// Headings returns every heading line beginning with prefix, in document
// order. An empty slice means the changelog has no version sections.
func Headings(r io.Reader, prefix string) ([]Heading, error) {
	var headings []Heading

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		headings = append(headings, Heading{
			Label: strings.TrimSpace(strings.TrimPrefix(line, prefix)),
			Line:  lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning changelog: %w", err)
	}

	return headings, nil
}

// HeadingsFile returns the headings of the changelog at path.
func HeadingsFile(path, prefix string) ([]Heading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog: %w", err)
	}
	defer f.Close()

	return Headings(f, prefix)
}
