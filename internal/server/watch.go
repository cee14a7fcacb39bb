package server

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for changes to settle before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// RebuildFunc rebuilds the site and returns the new build ID.
type RebuildFunc func(ctx context.Context) (string, error)

// Watcher rebuilds the site when watched files change.
type Watcher struct {
	Paths    []string // Directories are watched recursively; files individually
	Debounce time.Duration
	Rebuild  RebuildFunc
	// OnRebuilt is called with the build ID after each successful rebuild.
	OnRebuilt func(buildID string)
	// Ignore reports paths whose changes must not trigger a rebuild, such as the output directory.
	Ignore func(path string) bool

	// building serializes Rebuild calls; they share one output directory
	building sync.Mutex
}

// Run watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Rebuild == nil {
		return fmt.Errorf("watcher has no rebuild function")
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, root := range w.Paths {
		watched += w.addRecursive(watcher, root)
	}
	if watched == 0 {
		return fmt.Errorf("nothing to watch in %v", w.Paths)
	}

	var (
		mu         sync.Mutex
		buildTimer *time.Timer
		rebuilds   sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		if buildTimer != nil && buildTimer.Stop() {
			rebuilds.Done()
		}
		mu.Unlock()
		rebuilds.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) || (w.Ignore != nil && w.Ignore(event.Name)) {
				continue
			}
			log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())

			// New subdirectories are not watched automatically
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				w.addRecursive(watcher, event.Name)
			}

			mu.Lock()
			if buildTimer != nil && buildTimer.Stop() {
				rebuilds.Done()
			}
			rebuilds.Add(1)
			buildTimer = time.AfterFunc(debounce, func() {
				defer rebuilds.Done()
				w.rebuild(ctx)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	w.building.Lock()
	defer w.building.Unlock()

	if ctx.Err() != nil {
		return
	}
	log.Println("Rebuilding site due to changes...")
	buildID, err := w.Rebuild(ctx)
	if err != nil {
		log.Printf("Error during rebuild: %v", err)
		return
	}
	log.Println("Site rebuilt successfully.")
	if w.OnRebuilt != nil {
		w.OnRebuilt(buildID)
	}
}

// addRecursive watches root and, for directories, every subdirectory. It returns how many paths were added.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) int {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		log.Printf("Path '%s' not found, not watching.", root)
		return 0
	}
	if err != nil {
		log.Printf("Error reading %s: %v", root, err)
		return 0
	}

	if !info.IsDir() {
		if err := watcher.Add(root); err != nil {
			log.Printf("Failed to watch %s: %v", root, err)
			return 0
		}
		return 1
	}

	added := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("Error walking %s: %v", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.Ignore != nil && w.Ignore(path) {
			return filepath.SkipDir
		}
		if watchErr := watcher.Add(path); watchErr != nil {
			log.Printf("Failed to watch %s: %v", path, watchErr)
			return nil
		}
		added++
		return nil
	})
	if err != nil {
		log.Printf("Error during directory walk for watching %s: %v", root, err)
	}
	return added
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
