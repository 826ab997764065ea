package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// reloadDebounce coalesces the burst of events editors produce on save.
const reloadDebounce = 250 * time.Millisecond

// WatchSettings watches the settings file and calls onChange with the
// re-parsed settings after each change. Parse failures are logged and
// skipped, leaving the previous settings in force. onChange runs on a timer
// goroutine; callers must hand the value to their own event loop. WatchSettings
// blocks until ctx is cancelled.
func WatchSettings(ctx context.Context, path string, log zerolog.Logger, onChange func(domain.Settings)) error {
	dir := filepath.Dir(path)
	file := filepath.Base(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating settings watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so editors that replace the file by rename are seen.
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Debug().Str("path", path).Msg("settings watcher started")

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	reload := func() {
		s, err := LoadSettings(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("settings reload failed")
			return
		}
		if ctx.Err() != nil {
			return
		}
		log.Info().Str("path", path).Msg("settings reloaded")
		onChange(s)
	}
	debounce := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(reloadDebounce, reload)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("dir", dir).Msg("settings watch error")
		}
	}
}
