package tween

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SettingsWatcher reloads a settings file when it changes on disk. Parsing
// happens on a background goroutine; the engine is never touched there. The
// host polls from its frame thread and applies what it receives.
type SettingsWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan Settings
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    chan struct{}
}

// WatchSettings starts watching path. The directory is watched rather than
// the file so editors that replace the file on save are still seen.
func WatchSettings(path string) (*SettingsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &SettingsWatcher{
		path:    filepath.Clean(path),
		watcher: w,
		Updates: make(chan Settings, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Poll returns the most recently reloaded settings, if any arrived since the
// last call. It never blocks.
func (w *SettingsWatcher) Poll() (Settings, bool) {
	var (
		latest Settings
		got    bool
	)
	for {
		select {
		case s, ok := <-w.Updates:
			if !ok {
				return latest, got
			}
			latest, got = s, true
		default:
			return latest, got
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *SettingsWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

// debounce is how long the file must stay quiet before it is reloaded.
const debounce = 100 * time.Millisecond

func (w *SettingsWatcher) run() {
	defer close(w.done)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			s, err := LoadSettings(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			w.sendSettings(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendSettings replaces any unread update so Poll always sees the newest.
func (w *SettingsWatcher) sendSettings(s Settings) {
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- s:
	case <-w.closeCh:
	}
}

func (w *SettingsWatcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
