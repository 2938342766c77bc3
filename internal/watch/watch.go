// Package watch observes a workspace tree and reports file saves and
// creations to the proxy as they happen.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/xylex-group/code-time/internal/report"
	"github.com/xylex-group/code-time/pkg/model"
)

// Reporter sends one event to the proxy. Satisfied by *proxy.Client.
type Reporter interface {
	ReportEvent(ctx context.Context, ev model.Event) error
}

// Watcher turns filesystem notifications under Root into coding-activity
// events: creates become fileCreated, writes become fileSaved. Failed
// reports are logged and skipped; the loop never retries.
type Watcher struct {
	Root     string
	Reporter Reporter
	Logger   *slog.Logger

	// Reported is called after each successful report. Optional.
	Reported func(ev model.Event)
}

// Run watches the tree rooted at w.Root until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := addTree(fw, w.Root); err != nil {
		return fmt.Errorf("watch %s: %w", w.Root, err)
	}

	logger.Info("watching for file activity", "root", w.Root)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, logger, fw, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, logger *slog.Logger, fw *fsnotify.Watcher, event fsnotify.Event) {
	relative, err := filepath.Rel(w.Root, event.Name)
	if err != nil || hiddenPath(relative) {
		return
	}

	var eventType string
	switch {
	case event.Has(fsnotify.Create):
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// New directories join the watch set instead of being reported.
			if err := addTree(fw, event.Name); err != nil {
				logger.Warn("watch new directory", "path", event.Name, "error", err)
			}
			return
		}
		eventType = model.EventFileCreated
	case event.Has(fsnotify.Write):
		eventType = model.EventFileSaved
	default:
		return
	}

	ev := report.BuildEvent(w.Root, eventType, filepath.ToSlash(relative), time.Now())
	if err := w.Reporter.ReportEvent(ctx, ev); err != nil {
		logger.Warn("report failed", "event_type", eventType, "file", ev.RelativeFile, "error", err)
		return
	}

	logger.Debug("reported", "event_type", eventType, "file", ev.RelativeFile)
	if w.Reported != nil {
		w.Reported(ev)
	}
}

// addTree registers dir and every non-hidden subdirectory with the watcher.
func addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

// hiddenPath reports whether any segment of a root-relative path is a
// dotfile. Trees like .git generate notification noise that is not coding
// activity.
func hiddenPath(relative string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(relative), "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}
