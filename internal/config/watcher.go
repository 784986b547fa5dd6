package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file when it changes.
type Watcher struct {
	mu sync.Mutex

	path     string
	fsw      *fsnotify.Watcher
	opts     []Option
	debounce time.Duration

	onChange func(Config)
	onError  func(error)

	timer   *time.Timer
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLoadOptions passes options to every reload.
func WithLoadOptions(opts ...Option) WatcherOption {
	return func(w *Watcher) {
		w.opts = append(w.opts, opts...)
	}
}

// WithReloadError sets the function that receives failed reloads.
func WithReloadError(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// NewWatcher watches the config file at path and calls onChange with the
// reloaded configuration after every change. The containing directory is
// watched so that files replaced by rename are seen. Callbacks run on the
// watcher's goroutine.
func NewWatcher(path string, onChange func(Config), opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:     absPath,
		fsw:      fsw,
		debounce: DefaultDebounce,
		onChange: onChange,
		onError:  func(error) {},
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// schedule reloads once the events stop for the debounce duration.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	cfg, err := Load(w.path, w.opts...)
	if err != nil {
		w.onError(err)
		return
	}
	w.onChange(cfg)
}
