package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 50 * time.Millisecond

// Watch reloads the file at path whenever it is written or replaced and
// passes each valid Config to onChange. Load failures go to onError, which
// may be nil. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (write to temp, rename over) are seen.
func Watch(ctx context.Context, path string, onChange func(*Config), onError func(error)) error {
	if path == "" {
		return ErrNoPath
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	report := func(err error) {
		if onError != nil {
			onError(err)
		}
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := Load(absPath)
			if err != nil {
				report(err)
				continue
			}
			onChange(cfg)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			report(err)
		}
	}
}
