// Package watcher reports changes to the configuration file so that a
// running editor can reload it.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when using a closed watcher.
var ErrClosed = errors.New("watcher closed")

// Event represents a change to the watched file.
type Event struct {
	Path string
	Op   Operation
	Time time.Time
}

// Operation is the kind of change.
type Operation int

const (
	OpWrite Operation = iota
	OpCreate
	OpRemove
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before reporting it.
const DefaultDebounce = 100 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle time. Zero reports every change at once.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// Watcher watches one file through its parent directory, so the file may
// be created, replaced or removed while watched.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration

	events chan Event
	errors chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching path. The parent directory must exist.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: DefaultDebounce,
		events:   make(chan Event, 16),
		errors:   make(chan error, 16),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the change channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	close(w.events)
	close(w.errors)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		pending *Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case fe, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			ev, match := w.convert(fe)
			if !match {
				continue
			}
			if w.debounce == 0 {
				w.send(ev)
				continue
			}
			pending = &ev
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending != nil {
				w.send(*pending)
				pending = nil
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// convert maps an fsnotify event on the watched file to an Event.
func (w *Watcher) convert(fe fsnotify.Event) (Event, bool) {
	if filepath.Clean(fe.Name) != w.path {
		return Event{}, false
	}

	var op Operation
	switch {
	case fe.Op.Has(fsnotify.Remove):
		op = OpRemove
	case fe.Op.Has(fsnotify.Rename):
		op = OpRename
	case fe.Op.Has(fsnotify.Create):
		op = OpCreate
	case fe.Op.Has(fsnotify.Write):
		op = OpWrite
	default:
		return Event{}, false
	}
	return Event{Path: w.path, Op: op, Time: time.Now()}, true
}

// send delivers ev, dropping it if the reader is behind. A dropped event
// is harmless because the next one triggers the same reload.
func (w *Watcher) send(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}
