package confloader

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watcher reports writes to one configuration file.
//
// The parent directory is watched rather than the file so editors that
// save by rename-and-replace are still seen.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	logger *slog.Logger

	mu        sync.RWMutex
	callbacks []func(string)

	// errLog throttles repeated watcher errors.
	errLog rate.Sometimes

	done     chan struct{}
	stopOnce sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the watcher's logger.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher starts watching the directory that holds path.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		path:   filepath.Clean(path),
		logger: slog.Default(),
		errLog: rate.Sometimes{First: 1, Interval: time.Minute},
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w.logger.Debug("watching config file", "path", w.path)
	return w, nil
}

// OnChange registers fn to run with the file path after each change.
// Callbacks run on the watcher goroutine.
func (w *Watcher) OnChange(fn func(string)) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, fn)
	w.mu.Unlock()
}

// Start delivers change events until Stop is called.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("config file changed", "path", w.path, "op", event.Op.String())
			w.notify()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.errLog.Do(func() {
				w.logger.Warn("config watcher error", "error", err)
			})

		case <-w.done:
			return
		}
	}
}

// StartAsync runs Start in a new goroutine.
func (w *Watcher) StartAsync() {
	go w.Start()
}

// Stop ends the watch. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) notify() {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, fn := range w.callbacks {
		fn(w.path)
	}
}
