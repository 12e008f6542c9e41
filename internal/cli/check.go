package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"relnote/internal/changelog"
	relerrors "relnote/internal/errors"
	"relnote/internal/notes"
	"relnote/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check [version]",
	Short: "Verify the release files before injecting",
	Long: `Verify that the changelog has a non-empty section for the version
and that the release description contains the placeholder token.

inject tolerates both conditions silently (that is what release scripts
expect); check surfaces them ahead of time so a pipeline can fail fast.

Exit codes:
  0  both checks passed
  1  one or both checks failed
  4  a required file is missing

Examples:
  relnote check 2.0
  relnote check        # Use the latest git tag as the version`,
	Args:         validArgs(cobra.MaximumNArgs(1)),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	version, err := resolveVersion(args)
	if err != nil {
		return err
	}

	var (
		sectionFound bool
		tokenFound   bool
	)

	// The two files are independent; check them concurrently.
	var g errgroup.Group
	g.Go(func() error {
		section, err := changelog.ExtractFile(cfg.Changelog, version, cfg.HeadingPrefix)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return relerrors.Newf(relerrors.Prerequisite, "changelog not found: %s", cfg.Changelog)
			}
			return relerrors.Wrap(err, relerrors.Runtime, "extracting changelog section")
		}
		sectionFound = strings.TrimSpace(section) != ""
		return nil
	})
	g.Go(func() error {
		found, err := notes.HasPlaceholder(cfg.Notes, cfg.Placeholder)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return relerrors.Newf(relerrors.Prerequisite, "release description not found: %s", cfg.Notes)
			}
			return relerrors.Wrap(err, relerrors.Runtime, "reading release description")
		}
		tokenFound = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sectionFound {
		output.Successf(out, "%s has a section for %s", cfg.Changelog, version)
	} else {
		output.Failf(out, "%s has no section for %s", cfg.Changelog, version)
	}
	if tokenFound {
		output.Successf(out, "%s contains %s", cfg.Notes, cfg.Placeholder)
	} else {
		output.Failf(out, "%s does not contain %s", cfg.Notes, cfg.Placeholder)
	}

	if !sectionFound || !tokenFound {
		return NewExitError(ExitFailure)
	}
	return nil
}
