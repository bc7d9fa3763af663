package balance

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce window; editors fire several fs events per save.
const reloadDebounce = 100 * time.Millisecond

// Watcher signals when the balance file changes so debug runs can hot
// reload tuning without a restart. It watches the file's directory
// because most editors save via rename, which drops a watch placed on
// the file itself.
type Watcher struct {
	fs   *fsnotify.Watcher
	path string

	Reloads chan struct{}
	Errors  chan error

	done chan struct{}
	once sync.Once
}

// NewWatcher watches the balance file at path.
func NewWatcher(path string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fs,
		path:    filepath.Clean(path),
		Reloads: make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.matches(event) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now
			select {
			case w.Reloads <- struct{}{}:
			default:
				// a reload is already pending
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}
