package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/toolip/internal/domain/repository"
	"github.com/bnema/toolip/internal/logging"
)

// DefaultDebounce groups the burst of events a single SQLite commit produces.
const DefaultDebounce = 150 * time.Millisecond

// FileWatcher re-reads the settings store when its database file changes on
// disk, so writes from another process reach this process's hub.
type FileWatcher struct {
	dbPath   string
	repo     repository.SettingsRepository
	hub      *ChangeHub
	debounce time.Duration
}

// NewFileWatcher creates a watcher for the database at dbPath.
// A non-positive debounce uses DefaultDebounce.
func NewFileWatcher(dbPath string, repo repository.SettingsRepository, hub *ChangeHub, debounce time.Duration) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileWatcher{dbPath: dbPath, repo: repo, hub: hub, debounce: debounce}
}

// Run watches until ctx ends.
func (w *FileWatcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// the directory is watched because WAL commits touch sibling files
	dir := filepath.Dir(w.dbPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debug().Str("dir", dir).Dur("debounce", w.debounce).Msg("watching settings database")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("settings watcher error")
		case <-timer.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh reads every key and feeds the hub. It returns the number of changes.
func (w *FileWatcher) Refresh(ctx context.Context) int {
	log := logging.FromContext(ctx)

	values, err := w.repo.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to re-read settings after file change")
		return 0
	}
	n := w.hub.ObserveAll(values)
	if n > 0 {
		log.Debug().Int("changes", n).Msg("external settings change detected")
	}
	return n
}

func (w *FileWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasPrefix(filepath.Base(ev.Name), filepath.Base(w.dbPath))
}
