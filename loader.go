package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// loadResult holds the result of a background map load.
type loadResult struct {
	img  image.Image
	path string
	err  error
}

// MapLoader decodes the map image off the update goroutine and, when
// watching, reloads it whenever the file changes on disk.
type MapLoader struct {
	path    string
	jobs    chan string
	results chan loadResult
	watcher *fsnotify.Watcher
}

func NewMapLoader(path string) *MapLoader {
	return &MapLoader{
		path:    path,
		jobs:    make(chan string, 1),
		results: make(chan loadResult, 1),
	}
}

// Start launches the loader worker and queues the first load. With watch
// set, file changes queue further loads. Everything stops with ctx.
func (l *MapLoader) Start(ctx context.Context, watch bool) error {
	go l.worker(ctx)
	l.Request()

	if !watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	l.watcher = watcher
	go l.watch(ctx)
	return nil
}

// Request queues a load unless one is already pending.
func (l *MapLoader) Request() {
	select {
	case l.jobs <- l.path:
	default:
	}
}

// Poll returns a finished load without blocking.
func (l *MapLoader) Poll() (loadResult, bool) {
	select {
	case r := <-l.results:
		return r, true
	default:
		return loadResult{}, false
	}
}

func (l *MapLoader) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-l.jobs:
			img, err := DecodeImage(path)
			select {
			case l.results <- loadResult{img: img, path: path, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (l *MapLoader) watch(ctx context.Context) {
	defer l.watcher.Close()
	target := filepath.Clean(l.path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Printf("map changed on disk: %s", event.Name)
				l.Request()
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			log.Println("watcher error:", err)
		}
	}
}

// DecodeImage reads and decodes an image file in any registered format.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
