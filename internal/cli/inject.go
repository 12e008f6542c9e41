package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"relnote/internal/changelog"
	relerrors "relnote/internal/errors"
	"relnote/internal/notes"
	"relnote/internal/output"
)

var injectDryRun bool

var injectCmd = &cobra.Command{
	Use:   "inject [version]",
	Short: "Inject a changelog section into the release description",
	Long: `Extract the changelog section for a version and substitute it into
the placeholder token of the release description, rewriting the file in
place.

A version that appears nowhere in the changelog is not an error: the
placeholder is replaced with empty text, matching the behavior release
pipelines rely on for first releases.

Examples:
  relnote inject 2.0            # Inject the section for version 2.0
  relnote inject                # Use the latest git tag as the version
  relnote inject 2.0 --dry-run  # Print the result without writing`,
	Args:         validArgs(cobra.MaximumNArgs(1)),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInject(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(injectCmd)

	injectCmd.Flags().BoolVar(&injectDryRun, "dry-run", false, "Print the transformed release description without writing")
}

func runInject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	version, err := resolveVersion(args)
	if err != nil {
		return err
	}
	verbosef("injecting section for %q from %s into %s", version, cfg.Changelog, cfg.Notes)

	section, err := changelog.ExtractFile(cfg.Changelog, version, cfg.HeadingPrefix)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return relerrors.Newf(relerrors.Prerequisite, "changelog not found: %s", cfg.Changelog)
		}
		return relerrors.Wrap(err, relerrors.Runtime, "extracting changelog section")
	}

	if strings.TrimSpace(section) == "" {
		verbosef("no section found for %q; substituting empty text", version)
	}

	if injectDryRun {
		preview, err := notes.Preview(cfg.Notes, section, cfg.Placeholder)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return relerrors.Newf(relerrors.Prerequisite, "release description not found: %s", cfg.Notes)
			}
			return relerrors.Wrap(err, relerrors.Runtime, "previewing release description")
		}
		fmt.Fprint(cmd.OutOrStdout(), preview)
		return nil
	}

	if err := notes.InjectFile(cfg.Notes, section, cfg.Placeholder); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return relerrors.Newf(relerrors.Prerequisite, "release description not found: %s", cfg.Notes)
		}
		return relerrors.Wrap(err, relerrors.Runtime, "rewriting release description")
	}

	output.Successf(cmd.OutOrStdout(), "Injected section for %s into %s", version, cfg.Notes)
	return nil
}
