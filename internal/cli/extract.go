package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"relnote/internal/changelog"
	relerrors "relnote/internal/errors"
	"relnote/internal/output"
)

var (
	extractOutput    string
	extractRemote    bool
	extractRemoteURL string
)

var extractCmd = &cobra.Command{
	Use:   "extract [version]",
	Short: "Extract a changelog section",
	Long: `Extract the changelog section for a version and write it to stdout.

The section spans the lines after the first line containing the version
up to (excluding) the next heading line. A version that appears nowhere
yields empty output and a zero exit code.

With --remote the changelog is fetched from the configured remote_url
instead of being read from disk, which suits CI jobs that run against a
shallow or sparse checkout.

Examples:
  relnote extract 2.0                   # Print the section for version 2.0
  relnote extract 2.0 --output notes.md # Write it to a file instead
  relnote extract 2.0 --remote          # Fetch the changelog over HTTP
  relnote extract 2.0 --remote-url https://example.com/CHANGELOG.md`,
	Args:         validArgs(cobra.MaximumNArgs(1)),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write the section to a file instead of stdout")
	extractCmd.Flags().BoolVar(&extractRemote, "remote", false, "Fetch the changelog from the configured remote_url")
	extractCmd.Flags().StringVar(&extractRemoteURL, "remote-url", "", "Fetch the changelog from this URL (implies --remote)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	version, err := resolveVersion(args)
	if err != nil {
		return err
	}

	remoteURL := cfg.RemoteURL
	if extractRemoteURL != "" {
		remoteURL = extractRemoteURL
	}

	var section string
	if extractRemote || extractRemoteURL != "" {
		section, err = extractFromRemote(cmd.Context(), remoteURL, version, cfg.HeadingPrefix, cfg.RemoteTimeout)
	} else {
		section, err = changelog.ExtractFile(cfg.Changelog, version, cfg.HeadingPrefix)
	}
	if err != nil {
		var cliErr *relerrors.CLIError
		if errors.As(err, &cliErr) {
			return cliErr
		}
		if errors.Is(err, os.ErrNotExist) {
			return relerrors.Newf(relerrors.Prerequisite, "changelog not found: %s", cfg.Changelog)
		}
		return relerrors.Wrap(err, relerrors.Runtime, "extracting changelog section")
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(section), 0o644); err != nil {
			return relerrors.Wrap(err, relerrors.Runtime, "writing section file")
		}
		output.Successf(cmd.OutOrStdout(), "Wrote section for %s to %s", version, extractOutput)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), section)
	return nil
}

// extractFromRemote fetches the changelog over HTTP and extracts the
// section, showing a spinner on interactive terminals while the fetch runs.
func extractFromRemote(ctx context.Context, url, version, prefix string, timeoutSecs int) (string, error) {
	if url == "" {
		return "", relerrors.New(relerrors.Configuration, "remote_url is not configured",
			"Set remote_url in .relnote/config.yml",
			"Or set the RELNOTE_REMOTE_URL environment variable")
	}

	timeout := time.Duration(timeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = changelog.DefaultRemoteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if output.IsTTY() {
		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Suffix = " fetching changelog..."
		sp.Start()
		defer sp.Stop()
	}

	return changelog.ExtractRemote(ctx, url, version, prefix)
}
