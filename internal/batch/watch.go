package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce groups the burst of events an editor produces on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports candidate files that changed on disk.
type Watcher struct {
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
	// files holds explicitly named files; events for other files in their
	// directories are ignored. Directories given as paths report every file.
	files map[string]bool
	dirs  map[string]bool
}

// NewWatcher starts watching paths. Files are watched through their parent
// directory so editors that replace the file on save are still seen.
func NewWatcher(logger *zap.Logger, paths []string, debounce time.Duration) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		logger:   logger,
		watcher:  fw,
		debounce: debounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}
	for _, p := range paths {
		if err := w.add(p); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	dir := abs
	if info.IsDir() {
		w.dirs[abs] = true
	} else {
		w.files[abs] = true
		dir = filepath.Dir(abs)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("error adding %s to watcher: %w", dir, err)
	}
	return nil
}

func (w *Watcher) wants(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return w.files[abs] || w.dirs[filepath.Dir(abs)]
}

// Run calls onChange with the path of every watched file that was written
// or created, at most once per debounce interval per file, until ctx is
// done. onChange is never called concurrently. Run closes the watcher.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.watcher.Close()

	var (
		mu      sync.Mutex
		pending = make(map[string]*time.Timer)
	)
	fire := make(chan string)
	stop := make(chan struct{})
	defer close(stop)
	defer func() {
		mu.Lock()
		for _, t := range pending {
			t.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			name := event.Name
			mu.Lock()
			if t, ok := pending[name]; ok {
				t.Reset(w.debounce)
			} else {
				pending[name] = time.AfterFunc(w.debounce, func() {
					mu.Lock()
					delete(pending, name)
					mu.Unlock()
					select {
					case fire <- name:
					case <-stop:
					}
				})
			}
			mu.Unlock()
		case name := <-fire:
			w.logger.Debug("Candidate file changed", zap.String("file", name))
			onChange(name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}
