// Package imagewatch feeds images dropped into a directory to a
// [bounce.ImageLoader] while the scene runs.
package imagewatch

import (
	"context"
	"fmt"
	"log"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/bounce"
)

// DefaultSettle is how long a file must go without further writes before it
// is loaded.
const DefaultSettle = 250 * time.Millisecond

// Loader starts loading an image. *bounce.ImageLoader implements it; Load must
// be safe to call from the watcher's goroutine.
type Loader interface {
	Load(req bounce.ImageRequest)
}

// Watcher loads files created or rewritten in one directory. The loader must
// read from the same directory, since requests carry only the base name.
type Watcher struct {
	// Template is copied into every request; its Path is replaced by the
	// file's name.
	Template bounce.ImageRequest

	// Settle overrides DefaultSettle when positive. Set it before Run.
	Settle time.Duration

	dir     string
	loader  Loader
	watcher *fsnotify.Watcher
}

// New starts watching dir. Events that arrive before Run are queued by the
// underlying watcher, not lost.
func New(dir string, loader Loader, template bounce.ImageRequest) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{
		Template: template,
		dir:      dir,
		loader:   loader,
		watcher:  fw,
	}, nil
}

// Run dispatches loads until ctx is done, then closes the watcher and returns
// ctx's error. Files are loaded once they settle, in name order when several
// settle together. Hidden files are ignored.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	settle := w.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}
	tick := time.NewTicker(settle / 2)
	defer tick.Stop()

	// last event time per base name
	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if strings.HasPrefix(name, ".") {
				continue
			}
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Write == fsnotify.Write:
				pending[name] = time.Now()
			case event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename:
				delete(pending, name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("imagewatch: %s: %v", w.dir, err)

		case now := <-tick.C:
			for _, name := range slices.Sorted(maps.Keys(pending)) {
				if now.Sub(pending[name]) < settle {
					continue
				}
				delete(pending, name)
				req := w.Template
				req.Path = name
				w.loader.Load(req)
			}
		}
	}
}

// Close stops watching without running. It is not needed after Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
