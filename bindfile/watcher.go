package bindfile

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/key"
)

// ErrWatcherClosed is returned by Reload after the watcher is closed.
var ErrWatcherClosed = errors.New("bindfile: watcher is closed")

// DefaultDebounce is how long a watcher waits after the last file event
// before reloading. Editors tend to emit several events per save.
const DefaultDebounce = 100 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period required before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger for reload outcomes and watch errors.
func WithWatchLogger(l *keybind.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithOnReload registers a hook called after every automatic reload
// attempt with its error, nil on success. It runs on the watcher
// goroutine.
func WithOnReload(fn func(err error)) WatchOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watcher keeps a binding table in sync with a file on disk. Reloads
// are all-or-nothing: a file that fails to parse or resolve leaves the
// table's previous bindings in place.
type Watcher struct {
	path     string
	table    *keybind.Table[key.Stroke]
	resolver Resolver
	debounce time.Duration
	logger   *keybind.Logger
	onReload func(error)

	fw      *fsnotify.Watcher
	closeCh chan struct{}
	doneWg  sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// Watch applies the binding file to the table, then watches it and
// re-applies on change. It fails if the initial load fails, so a
// running watcher always started from a valid table.
func Watch(path string, tbl *keybind.Table[key.Stroke], r Resolver, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		table:    tbl,
		resolver: r,
		debounce: DefaultDebounce,
		logger:   keybind.NullLogger,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.Reload(); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the parent directory rather than the file itself. Editors
	// that save by rename replace the inode, which silently drops a
	// direct file watch.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w.fw = fw

	w.doneWg.Add(1)
	go w.run()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Reload loads and applies the file immediately, bypassing the
// debounce. On failure the table keeps its previous contents.
func (w *Watcher) Reload() error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return ErrWatcherClosed
	}

	file, err := LoadFile(w.path)
	if err != nil {
		return err
	}
	return file.Apply(w.table, w.resolver)
}

// Close stops watching. The table keeps whatever bindings it holds.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.doneWg.Wait()
	return w.fw.Close()
}

func (w *Watcher) run() {
	defer w.doneWg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
				continue
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)

		case <-fire:
			timer = nil
			fire = nil
			w.reload()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("bindfile: watch error: %v", err)
		}
	}
}

// relevant reports whether a directory event concerns the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}

func (w *Watcher) reload() {
	err := w.Reload()
	if err != nil {
		w.logger.Warn("bindfile: reload of %s failed, keeping previous bindings: %v", w.path, err)
	} else {
		w.logger.Info("bindfile: reloaded %s", w.path)
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}
