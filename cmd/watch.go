package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/inlinegen/internal/core/services"
	"github.com/kamal-hamza/inlinegen/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the header whenever the data directory changes",
	Long: `Watch the data directory and regenerate the header on every change.

Each change triggers a full regeneration after a short debounce
(watch_debounce_ms). Files starting with '.' or '~' are ignored.

Use --quiet to suppress per-run notes.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress regeneration notes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	logger := newLogger(out, watchQuiet)

	if !appWorkspace.DataExists() {
		return fmt.Errorf("data directory not found: %s", appWorkspace.DataPath)
	}

	svc, err := newGenerateService(appConfig, appWorkspace, logger, 0)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, appWorkspace.DataPath); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.FormatBuild("Watching "+appWorkspace.DataPath))
	fmt.Fprintln(out, ui.FormatMuted("Include path: -I"+appWorkspace.GenPath))
	fmt.Fprintln(out, ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Fprintln(out)

	var mu sync.Mutex
	regenerate := func() {
		mu.Lock()
		defer mu.Unlock()
		runOnce(ctx, out, svc)
	}

	regenerate()

	var debounceTimer *time.Timer
	debounce := appConfig.WatchDebounce()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			base := filepath.Base(event.Name)
			if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
				continue
			}

			// new subdirectories must be watched explicitly
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						logger.Warn("%v", err)
					}
				}
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, regenerate)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.FormatMuted("Watch stopped"))
			return nil
		}
	}
}

// runOnce performs one generation and reports the outcome without exiting
func runOnce(ctx context.Context, w io.Writer, svc *services.GenerateService) {
	start := time.Now()

	resp, err := svc.Execute(ctx, generateRequest(appConfig, appWorkspace))
	if err != nil {
		fmt.Fprintln(w, ui.FormatError("Generation failed: "+err.Error()))
		return
	}
	if resp.Skipped {
		fmt.Fprintln(w, ui.FormatWarning("Data directory disappeared, nothing generated"))
		return
	}

	fmt.Fprintln(w, ui.FormatSuccess(fmt.Sprintf("Regenerated %s (%d files) in %s",
		filepath.Base(resp.HeaderPath), resp.Totals.Files, time.Since(start).Round(time.Millisecond))))
}

// watchTree adds root and every directory below it to watcher
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
