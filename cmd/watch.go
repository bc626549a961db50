package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-print the asset table whenever the store changes",
	Long: `Watch the asset file and print the table again after every change,
including edits made by other programs such as a spreadsheet.

Bursts of writes are coalesced (watch_debounce_ms in the config).
Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Only print the total instead of the full table")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: atomic rewrites replace the file itself
	dir := filepath.Dir(appWorkspace.AssetsPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.FormatRocket("Watching "+appWorkspace.AssetsPath))
	fmt.Fprintln(out, ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Fprintln(out)

	refresh(ctx, out)

	return watchLoop(ctx, watcher, appWorkspace.AssetsPath,
		time.Duration(appConfig.WatchDebounceMS)*time.Millisecond,
		func() { refresh(ctx, out) })
}

// watchLoop calls onChange once per burst of events touching target and
// returns when ctx is done or the watcher closes
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, debounce time.Duration, onChange func()) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(target) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			// Reset debounce timer
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func refresh(ctx context.Context, out io.Writer) {
	fmt.Fprintln(out, ui.FormatInfo("Store updated at "+time.Now().Format(time.TimeOnly)))

	assets, err := assetService.List(ctx)
	if err != nil {
		reportError(out, err)
		return
	}

	if watchQuiet {
		fmt.Fprintln(out, ui.FormatMuted(fmt.Sprintf("Total: %d assets", len(assets))))
	} else {
		renderAssets(out, assets)
	}
	fmt.Fprintln(out)
}
