package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk and hands the new
// value to subscribers. Invalid edits are logged and ignored; the last
// good config stays current.
type Watcher struct {
	path   string
	logger *log.Logger
	fw     *fsnotify.Watcher

	mu      sync.RWMutex
	current SnakeConfig
	subs    []func(SnakeConfig)
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors which replace the file on save are picked up too.
func NewWatcher(path string, initial SnakeConfig, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	return &Watcher{
		path:    filepath.Clean(path),
		logger:  logger,
		fw:      fw,
		current: initial,
	}, nil
}

// Current returns the most recently loaded config.
func (w *Watcher) Current() SnakeConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Subscribe registers fn to be called from the watcher goroutine after
// every successful reload.
func (w *Watcher) Subscribe(fn func(SnakeConfig)) {
	w.mu.Lock()
	w.subs = append(w.subs, fn)
	w.mu.Unlock()
}

// Run processes file events until ctx is cancelled, then releases the
// underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := loadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload rejected", "path", w.path, "err", err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	subs := append([]func(SnakeConfig){}, w.subs...)
	w.mu.Unlock()

	w.logger.Info("config reloaded", "path", w.path, "grid", cfg.GridSize, "mode", cfg.Mode)
	for _, fn := range subs {
		fn(cfg)
	}
}
