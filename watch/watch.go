// Package watch reports debounced file changes under a file or directory tree using fsnotify.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNotExist is returned when the watched root is missing
var ErrNotExist = errors.New("watch root does not exist")

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets the quiet period before changes are reported
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnChange sets the callback receiving the sorted set of changed paths
func WithOnChange(fn func(paths []string)) Option {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// WithOnError sets the callback for watcher errors
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// WithFilter restricts reported paths, fn returns true to keep a path
func WithFilter(fn func(path string) bool) Option {
	return func(w *Watcher) {
		w.filter = fn
	}
}

// Watcher monitors a single file or a directory tree
// A file root watches its parent directory so atomic replace-on-save is seen
type Watcher struct {
	root     string
	file     string // non-empty when root is a file
	debounce time.Duration
	onChange func([]string)
	onError  func(error)
	filter   func(string) bool

	debouncer *Debouncer

	mu      sync.Mutex
	pending map[string]struct{}
}

// New creates a watcher for path, which may be a file or a directory
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     abs,
		debounce: DefaultDebounceDuration,
		onChange: func([]string) {},
		onError:  func(error) {},
		filter:   func(string) bool { return true },
		pending:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = NewDebouncer(w.debounce)

	info, err := os.Stat(abs)
	switch {
	case err == nil && !info.IsDir():
		w.file = abs
		w.root = filepath.Dir(abs)
	case err == nil:
	case os.IsNotExist(err):
		// A not-yet-created file is fine as long as its directory exists
		if _, derr := os.Stat(filepath.Dir(abs)); derr != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		w.file = abs
		w.root = filepath.Dir(abs)
	default:
		return nil, err
	}

	return w, nil
}

// Root returns the watched directory
func (w *Watcher) Root() string {
	return w.root
}

// Run watches until ctx is done, returning nil on cancellation
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer fsw.Close()
	defer w.debouncer.Cancel()

	if w.file != "" {
		if err := fsw.Add(w.root); err != nil {
			return fmt.Errorf("watching %s: %w", w.root, err)
		}
	} else if err := w.addTree(fsw, w.root); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(fsw, ev)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) handle(fsw *fsnotify.Watcher, ev fsnotify.Event) {
	if w.file != "" && filepath.Clean(ev.Name) != w.file {
		return
	}
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	// New directories inside a tree must be added explicitly, fsnotify is not recursive
	if w.file == "" && ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(fsw, ev.Name); err != nil {
				w.onError(err)
			}
		}
	}

	if !w.filter(ev.Name) {
		return
	}

	w.mu.Lock()
	w.pending[ev.Name] = struct{}{}
	w.mu.Unlock()

	w.debouncer.Trigger(w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	w.onChange(paths)
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// IgnoreHidden is a filter dropping dotfiles and editor swap files
func IgnoreHidden(path string) bool {
	base := filepath.Base(path)
	if isHidden(base) {
		return false
	}
	return !strings.HasSuffix(base, "~") && !strings.HasSuffix(base, ".swp")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
