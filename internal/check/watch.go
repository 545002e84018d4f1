package check

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch checks document files under dir whenever they are created or
// written, calling fn with each report. Changes are collected until no new
// event arrived for debounce. Watch blocks until ctx is done.
func (c *Checker) Watch(ctx context.Context, dir string, debounce time.Duration, fn func(Report)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := c.addWatchRecursive(watcher, dir); err != nil {
		return err
	}

	c.logger.Info("watching for changes", zap.String("dir", dir), zap.Duration("debounce", debounce))

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := c.addWatchRecursive(watcher, event.Name); err != nil {
						c.logger.Warn("watcher add failure", zap.String("path", event.Name), zap.Error(err))
					}

					continue
				}
			}

			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || !IsDocument(event.Name) {
				continue
			}

			pending[event.Name] = struct{}{}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			c.logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			paths := slices.Sorted(maps.Keys(pending))
			clear(pending)

			for _, report := range c.CheckFiles(ctx, paths) {
				fn(report)
			}
		}
	}
}

func (c *Checker) addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", p, err)
		}

		if d.IsDir() {
			if err := watcher.Add(p); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
		}

		return nil
	})
}
