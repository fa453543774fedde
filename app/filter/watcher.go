package filter

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
)

// Watch watches preset sample files for changes and reloads the filter. Blocks until ctx is done.
// Reload happens WatchDelay after the first change, so a burst of writes triggers a single reload.
func (f *Filter) Watch(ctx context.Context) error {
	files := []string{}
	for _, file := range []string{f.params.SpamSamplesFile, f.params.HamSamplesFile} {
		if file != "" {
			files = append(files, file)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no samples files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	errs := new(multierror.Error)
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to stat file %q: %w", file, err))
			continue
		}
		log.Printf("[DEBUG] add file %q to watcher", file)
		if err := watcher.Add(file); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to watch file %q: %w", file, err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("failed to add some files to watcher: %w", err)
	}

	delay := f.params.WatchDelay
	if delay <= 0 {
		delay = time.Second
	}
	reloadTimer := time.NewTimer(delay)
	defer reloadTimer.Stop()
	reloadPending := false

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] stopping watcher for samples: %v", ctx.Err())
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			log.Printf("[DEBUG] file %q updated, op: %v", event.Name, event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !reloadPending {
				reloadPending = true
				reloadTimer.Reset(delay)
			}
		case <-reloadTimer.C:
			if !reloadPending {
				continue
			}
			reloadPending = false
			if err := f.Reload(ctx); err != nil {
				log.Printf("[WARN] failed to reload samples: %v", err)
			}
		case e, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] watcher error: %v", e)
		}
	}
}
