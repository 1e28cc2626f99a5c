package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/m4theushw/material-ui-x/internal/clock"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a document when its file changes.
//
// The parent directory is watched rather than the file, so saves that
// replace the file through a rename are seen too.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	onChange func(*Document, error)

	debounce time.Duration
	sched    clock.Scheduler
	lookup   LookupFunc
	logger   *slog.Logger

	mu     sync.Mutex
	timer  clock.Timer
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatchScheduler sets the scheduler of the debounce timer.
func WithWatchScheduler(s clock.Scheduler) WatchOption {
	return func(w *Watcher) {
		if s != nil {
			w.sched = s
		}
	}
}

// WithEnv sets the environment lookup used on reload.
func WithEnv(lookup LookupFunc) WatchOption {
	return func(w *Watcher) {
		w.lookup = lookup
	}
}

// WithWatchLogger sets the logger.
func WithWatchLogger(l *slog.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher starts watching path. onChange receives every reload result,
// including documents that failed to parse or validate.
func NewWatcher(path string, onChange func(*Document, error), opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		sched:    clock.Real{},
		logger:   slog.New(slog.DiscardHandler),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "config.watcher", "path", abs)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.logger.Debug("document changed", "op", ev.Op.String())
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = w.sched.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}
	doc, err := LoadWithEnv(w.path, w.lookup)
	if err != nil {
		w.logger.Warn("reload failed", "error", err)
	}
	w.onChange(doc, err)
}

// Close stops watching. Pending reloads are dropped.
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
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
