package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"relnote/internal/changelog"
	relerrors "relnote/internal/errors"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List version headings in the changelog",
	Long: `List every version heading found in the changelog, in document
order. Useful for spotting the exact label to pass to extract or inject.

Example:
  relnote versions`,
	Args:         validArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	headings, err := changelog.HeadingsFile(cfg.Changelog, cfg.HeadingPrefix)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return relerrors.Newf(relerrors.Prerequisite, "changelog not found: %s", cfg.Changelog)
		}
		return relerrors.Wrap(err, relerrors.Runtime, "scanning changelog")
	}

	if len(headings) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No version headings found in %s (prefix %q)\n", cfg.Changelog, cfg.HeadingPrefix)
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	for _, h := range headings {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold(h.Label), faint(fmt.Sprintf("(line %d)", h.Line)))
	}

	return nil
}
