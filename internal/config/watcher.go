package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors produce on save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
// Parsed configs arrive on Configs; read or parse failures arrive on Errors.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Configs chan Config
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the directory containing path.
// The directory is watched rather than the file so that editors that replace
// the file on save keep triggering reloads.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Configs: make(chan Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Done is closed once Close has been called. Consumers blocked on Configs or
// Errors select on it to stop with the watcher.
func (w *Watcher) Done() <-chan struct{} {
	return w.closeCh
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	// Reload once events have been quiet for reloadDebounce
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle = time.After(reloadDebounce)
		case <-settle:
			settle = nil
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&cfg, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send delivers without blocking past Close. A newer config replaces one the
// consumer has not picked up yet.
func (w *Watcher) send(cfg *Config, err error) {
	if cfg != nil {
		select {
		case <-w.Configs:
		default:
		}
		select {
		case w.Configs <- *cfg:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
	}
}
