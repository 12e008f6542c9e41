// Package cli implements the relnote command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relnote/internal/changelog"
	"relnote/internal/config"
	relerrors "relnote/internal/errors"
	"relnote/internal/git"
)

var (
	configFlag    string
	changelogFlag string
	notesFlag     string
	verboseFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "relnote",
	Short: "Inject changelog sections into release descriptions",
	Long: `relnote automates release notes: it extracts the section for a
version from a markdown changelog and substitutes it into the placeholder
token of a release-description file.

Sections are bounded by heading lines (default "## Version"). The version
argument is matched as a substring against changelog lines; when omitted,
the most recent git tag is used.`,
	Example: `  # Inject the section for version 2.0 into release_description.txt
  relnote inject 2.0

  # Use the latest git tag as the version
  relnote inject

  # Print the section for version 2.0 to stdout
  relnote extract 2.0

  # Verify the release files before a pipeline runs
  relnote check 2.0`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: .relnote/config.yml)")
	rootCmd.PersistentFlags().StringVar(&changelogFlag, "changelog", "", "Path to the changelog (default: CHANGELOG.md)")
	rootCmd.PersistentFlags().StringVar(&notesFlag, "notes", "", "Path to the release description (default: release_description.txt)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		var cliErr *relerrors.CLIError
		if errors.As(err, &cliErr) {
			relerrors.Print(cliErr)
			return exitCodeFor(cliErr.Category)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitSuccess
}

// validArgs adapts a cobra positional-args checker so violations carry
// the Argument category and exit with ExitInvalidArguments.
func validArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return relerrors.Wrap(err, relerrors.Argument, cmd.CommandPath(),
				"Run '"+cmd.CommandPath()+" --help' for usage")
		}
		return nil
	}
}

// exitCodeFor maps error categories to exit codes.
func exitCodeFor(category relerrors.Category) int {
	switch category {
	case relerrors.Argument:
		return ExitInvalidArguments
	case relerrors.Prerequisite:
		return ExitMissingPrerequisite
	default:
		return ExitFailure
	}
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, relerrors.Wrap(err, relerrors.Configuration, "loading configuration",
			"Check the syntax of .relnote/config.yml",
			"Run with --config to point at a different file")
	}

	if changelogFlag != "" {
		cfg.Changelog = changelogFlag
	}
	if notesFlag != "" {
		cfg.Notes = notesFlag
	}

	return cfg, nil
}

// resolveVersion returns the version label from args, falling back to the
// most recent git tag when no argument was given. Tag names are normalized
// so "v2.0.0" extracts the "2.0.0" section.
func resolveVersion(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	tag, err := git.LatestTag("")
	if err != nil {
		return "", relerrors.Wrap(err, relerrors.Argument, "resolving version from git",
			"Pass the version explicitly: relnote inject <version>",
			"Or create a version tag: git tag v1.0.0")
	}

	return changelog.NormalizeLabel(tag), nil
}

// verbosef writes a diagnostic line to stderr when --verbose is set.
func verbosef(format string, args ...any) {
	if verboseFlag {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
