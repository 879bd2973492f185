package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is rebuilt
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors a project directory and reports changed JavaScript files
type Watcher struct {
	watcher  *fsnotify.Watcher
	root     string
	skip     []string
	debounce time.Duration

	// OnChange receives the changed file relative to the root
	OnChange func(rel string)
	// OnError receives watcher errors
	OnError func(err error)

	mu      sync.Mutex
	pending map[string]*time.Timer

	// serializes OnChange so two rebuilds never write the same output
	changeMu sync.Mutex
}

// New creates a watcher for root. Directories named in skip (relative to
// root) are not watched, nor are hidden directories.
func New(root string, skip ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(skip))
	for _, s := range skip {
		cleaned = append(cleaned, filepath.Clean(s))
	}

	return &Watcher{
		watcher:  fsWatcher,
		root:     root,
		skip:     cleaned,
		debounce: DefaultDebounce,
		pending:  make(map[string]*time.Timer),
	}, nil
}

// SetDebounce changes the quiet period before OnChange fires.
// Call it before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start adds the directory tree to the watch list and processes events
// in the background until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watchDirRecursive(w.root); err != nil {
		w.close()
		return err
	}
	go w.eventLoop(ctx)
	return nil
}

// eventLoop processes file system events
func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// watchDirRecursive adds a directory and its subdirectories to the watch list
func (w *Watcher) watchDirRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.skipped(path) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) skipped(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return true
	}
	for _, s := range w.skip {
		if rel == s {
			return true
		}
	}
	return false
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !w.skipped(event.Name) {
				if err := w.watchDirRecursive(event.Name); err != nil {
					w.reportError(err)
				}
			}
			return
		}
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !strings.EqualFold(filepath.Ext(event.Name), ".js") {
		return
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return
	}
	w.schedule(rel)
}

// schedule debounces rapid writes to the same file
func (w *Watcher) schedule(rel string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[rel]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[rel] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, rel)
		w.mu.Unlock()

		if w.OnChange != nil {
			w.changeMu.Lock()
			defer w.changeMu.Unlock()
			w.OnChange(rel)
		}
	})
}

func (w *Watcher) reportError(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}

func (w *Watcher) close() {
	w.mu.Lock()
	for rel, t := range w.pending {
		t.Stop()
		delete(w.pending, rel)
	}
	w.mu.Unlock()
	w.watcher.Close()
}
