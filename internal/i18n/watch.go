package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a directory must stay quiet after a pack
// changes before Watch reports it. Editors write a file in several steps.
const DefaultDebounce = 300 * time.Millisecond

// Watch calls onChange once per burst of changes to the *.yaml and *.yml
// packs in dir. onChange runs on the watcher goroutine. Watch blocks until
// ctx is done; it fails only when dir cannot be watched.
func Watch(ctx context.Context, dir string, debounce time.Duration, log *zap.Logger, onChange func()) error {
	if log == nil {
		log = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create pack watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug("watching content packs", zap.String("dir", dir))

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isPackChange(ev) {
				log.Debug("pack changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
				settle = time.After(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("pack watcher error", zap.Error(err))

		case <-settle:
			settle = nil
			onChange()
		}
	}
}

func isPackChange(ev fsnotify.Event) bool {
	switch filepath.Ext(ev.Name) {
	case ".yaml", ".yml":
	default:
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
