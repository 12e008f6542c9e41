package errors

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions degrade gracefully when the terminal has no color
	// support (fatih/color auto-detects).
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorText   = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	fixBullet   = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// Format renders a CLIError for terminal display: the categorized message
// followed by remediation steps, if any.
func Format(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorLabel("Error"))
	sb.WriteString(" [")
	sb.WriteString(categoryFmt(err.Category.String()))
	sb.WriteString("]: ")
	sb.WriteString(errorText(err.Message))
	sb.WriteString("\n")

	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fixLabel("To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			sb.WriteString("  ")
			sb.WriteString(fixBullet("•"))
			sb.WriteString(" ")
			sb.WriteString(step)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Fprint writes a formatted CLIError to w.
func Fprint(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err))
}

// Print writes a formatted CLIError to stderr.
func Print(err *CLIError) {
	Fprint(os.Stderr, err)
}
