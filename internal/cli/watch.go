package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"relnote/internal/changelog"
	"relnote/internal/config"
	relerrors "relnote/internal/errors"
	"relnote/internal/notes"
	"relnote/internal/output"
)

// watchDebounce coalesces the burst of write events editors emit on save.
const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [version]",
	Short: "Re-inject whenever the changelog changes",
	Long: `Watch the changelog and re-run injection every time it changes.

The release description is read once at startup and kept as the template;
every changelog save re-renders it from that template, so the placeholder
is re-substituted on each pass rather than consumed by the first one.
Useful while drafting release notes: edit the changelog, see the release
description update on save. Stop with Ctrl-C.

Examples:
  relnote watch 2.0
  relnote watch        # Use the latest git tag as the version`,
	Args:         validArgs(cobra.MaximumNArgs(1)),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	version, err := resolveVersion(args)
	if err != nil {
		return err
	}

	template, err := os.ReadFile(cfg.Notes)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return relerrors.Newf(relerrors.Prerequisite, "release description not found: %s", cfg.Notes)
		}
		return relerrors.Wrap(err, relerrors.Runtime, "reading release description")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return relerrors.Wrap(err, relerrors.Runtime, "creating file watcher")
	}
	defer watcher.Close()

	// Watch the parent directory: editors replace files on save, which
	// would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(cfg.Changelog)); err != nil {
		return relerrors.Wrap(err, relerrors.Runtime, "watching changelog directory")
	}

	w := &watchState{
		cmd:      cmd,
		cfg:      cfg,
		version:  version,
		template: string(template),
	}

	if err := w.render(); err != nil {
		return err
	}
	output.Dimf(cmd.OutOrStdout(), "watching %s (Ctrl-C to stop)", cfg.Changelog)

	return w.loop(ctx, watcher)
}

// watchState carries the immutable inputs of one watch session.
type watchState struct {
	cmd      *cobra.Command
	cfg      *config.Configuration
	version  string
	template string
}

// loop re-renders on every write to the changelog until ctx is cancelled.
func (w *watchState) loop(ctx context.Context, watcher *fsnotify.Watcher) error {
	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.cfg.Changelog) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			if err := w.render(); err != nil {
				// Keep watching; report and carry on.
				var cliErr *relerrors.CLIError
				if errors.As(err, &cliErr) {
					relerrors.Fprint(w.cmd.ErrOrStderr(), cliErr)
				} else {
					output.Failf(w.cmd.ErrOrStderr(), "inject failed: %v", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			output.Failf(w.cmd.ErrOrStderr(), "watch error: %v", err)
		}
	}
}

// render extracts the current section and rewrites the release description
// from the pristine template.
func (w *watchState) render() error {
	section, err := changelog.ExtractFile(w.cfg.Changelog, w.version, w.cfg.HeadingPrefix)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return relerrors.Newf(relerrors.Prerequisite, "changelog not found: %s", w.cfg.Changelog)
		}
		return relerrors.Wrap(err, relerrors.Runtime, "extracting changelog section")
	}

	result := notes.Substitute(w.template, section, w.cfg.Placeholder)
	if err := os.WriteFile(w.cfg.Notes, []byte(result), 0o644); err != nil {
		return relerrors.Wrap(err, relerrors.Runtime, "rewriting release description")
	}

	output.Successf(w.cmd.OutOrStdout(), "Injected section for %s into %s", w.version, w.cfg.Notes)
	return nil
}
