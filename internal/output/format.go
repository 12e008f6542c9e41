// Package output provides shared terminal formatting helpers for the
// relnote CLI: color/TTY detection and status line printing.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()
	warnMark    = color.New(color.FgYellow).SprintFunc()
	failMark    = color.New(color.FgRed).SprintFunc()
	dimText     = color.New(color.Faint).SprintFunc()
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// SupportsColor reports whether colored output should be used.
// Honors the NO_COLOR convention.
func SupportsColor() bool {
	return IsTTY() && os.Getenv("NO_COLOR") == ""
}

// Width returns the terminal width, or the fallback when stdout is not a
// terminal or the size cannot be determined.
func Width(fallback int) int {
	if !IsTTY() {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Successf prints a checkmarked status line.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successMark("✓"), fmt.Sprintf(format, args...))
}

// Warnf prints a warning status line.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnMark("⚠"), fmt.Sprintf(format, args...))
}

// Failf prints a failed status line.
func Failf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", failMark("✗"), fmt.Sprintf(format, args...))
}

// Dimf prints a de-emphasized line.
func Dimf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s\n", dimText(fmt.Sprintf(format, args...)))
}
