// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/config"
	"github.com/routelens/routelens/internal/scanner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Rescan routes whenever watched source files change",
	Long: `Watch the given paths (default: configured source paths) and rescan routes
on every change to a supported source file. Change bursts are debounced with
the configured window so rapid editor saves trigger a single rescan.

Example:
  routelens watch
  routelens watch src/
  routelens watch --debounce 1000`,
	RunE: runWatch,
}

var watchDebounce int

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watchRecursive(watcher, path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}
	debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	printInfo("Watching %d source file(s) under %d path(s), debounce %s",
		countSourceFiles(cfg, paths), len(paths), debounce)
	printInfo("Press Ctrl+C to stop")

	rescan := func() {
		routes, err := scanRoutes(cfg, paths)
		if err != nil {
			printError("Rescan failed: %v", err)
			return
		}
		printInfo("%d route(s)", len(routes))
		for _, r := range routes {
			printInfo("  %-7s %s  (%s:%d)", r.Method, r.Path, r.SourceFile, r.SourceLine)
		}
	}

	rescan()

	// Pending is armed on the first relevant event and reset on each
	// subsequent one until the window elapses.
	var pending *time.Timer
	var pendingC <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !relevantEvent(event) {
				continue
			}
			printVerbose("Change: %s %s", event.Op, event.Name)

			// New directories must be added to the watch set.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchRecursive(watcher, event.Name)
				}
			}

			if pending == nil {
				pending = time.NewTimer(debounce)
				pendingC = pending.C
			} else {
				pending.Reset(debounce)
			}

		case <-pendingC:
			pending = nil
			pendingC = nil
			rescan()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("Watch error: %v", err)

		case <-sig:
			printVerbose("Shutting down")
			return nil

		case <-cmd.Context().Done():
			return nil
		}
	}
}

// countSourceFiles counts the matching source files under the paths without
// reading their content.
func countSourceFiles(cfg *config.Config, paths []string) int {
	total := 0
	for _, path := range paths {
		sc := scanner.New(scanner.Config{
			BasePath:        path,
			IncludePatterns: cfg.Source.Include,
			ExcludePatterns: cfg.Source.Exclude,
		})
		if n, err := sc.FileCount(); err == nil {
			total += n
		}
	}
	return total
}

// relevantEvent reports whether the event should trigger a rescan. Directory
// creations pass so the new directory gets watched; file events pass only for
// supported source files.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}

	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return event.Op.Has(fsnotify.Create)
	}

	return scanner.IsSupportedFile(event.Name)
}

// watchRecursive adds the path and every directory under it to the watcher,
// skipping directories the scanner excludes by default.
func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if scanner.IsExcludedDir(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
