// Package changelog extracts version sections from markdown changelogs.
//
// This package implements:
//   - line-oriented section extraction bounded by version headings
//   - heading enumeration for CLI display
//   - remote changelog fetching over HTTP
//
// The changelog is treated as plain text. A section starts on the line
// after the first line containing the version label and ends before the
// next line that begins with the heading prefix. No markdown parsing
// happens beyond that prefix check.
package changelog
