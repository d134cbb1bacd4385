package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads the config file when it is written or replaced and hands
// the new Config to a callback.
type Watcher struct {
	src      Source
	logger   *zap.Logger
	onChange func(Config)
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewWatcher(src Source, logger *zap.Logger, onChange func(Config)) *Watcher {
	return &Watcher{
		src:      src,
		logger:   logger,
		onChange: onChange,
		debounce: defaultDebounce,
	}
}

// Start registers the watch and returns; events are handled in a goroutine
// until ctx is done. It is a no-op when no config file is in use.
func (w *Watcher) Start(ctx context.Context) error {
	if w.src.Path == "" {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsw.Add(filepath.Dir(w.src.Path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", w.src.Path, err)
	}

	go w.loop(ctx, fsw)
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer fsw.Close()

	name := filepath.Base(w.src.Path)
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.schedule()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := w.src.Reload()
	if err != nil {
		w.logger.Warn("config reload rejected", zap.String("path", w.src.Path), zap.Error(err))
		return
	}

	w.logger.Info("config reloaded", zap.String("path", w.src.Path))
	w.onChange(cfg)
}
