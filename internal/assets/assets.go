// Package assets loads inventory slot images off the tick thread.
//
// Decoding runs on a goroutine; results are handed back to callers only from
// Loader.Poll, which the game calls once per tick. Nothing in this package
// ever writes into UI state directly.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPath = errors.New("assets: image path is empty")
	ErrNotFound  = errors.New("assets: image not found")
)

// DefaultCacheSize bounds the decoded image cache when none is configured.
const DefaultCacheSize = 64

// Image is a decoded, CPU-side picture. Raw is nil for images produced by
// sources that do not go through raylib (tests, placeholders).
type Image struct {
	Path   string
	Width  int32
	Height int32
	Raw    *rl.Image
}

// Source resolves an asset path to a decoded image.
type Source interface {
	Load(path string) (*Image, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(path string) (*Image, error)

func (f SourceFunc) Load(path string) (*Image, error) { return f(path) }

// FileSource decodes images from disk below Root. Paths are given without
// extension ("Image/key"); each of Extensions is tried in order.
type FileSource struct {
	Root       string
	Extensions []string
}

func NewFileSource(root string) FileSource {
	return FileSource{Root: root, Extensions: []string{".png", ".jpg", ""}}
}

func (s FileSource) Load(path string) (*Image, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	for _, ext := range s.Extensions {
		full := filepath.Join(s.Root, filepath.FromSlash(path)+ext)
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		img := rl.LoadImage(full)
		if img == nil || img.Data == nil || img.Width == 0 {
			return nil, fmt.Errorf("decode %s: %w", full, ErrNotFound)
		}
		return &Image{Path: path, Width: img.Width, Height: img.Height, Raw: img}, nil
	}
	return nil, fmt.Errorf("%s under %s: %w", path, s.Root, ErrNotFound)
}

// Callback receives the outcome of a load. Exactly one of img and err is nil.
type Callback func(img *Image, err error)

type result struct {
	path string
	img  *Image
	err  error
}

// Loader decodes images asynchronously and caches them.
type Loader struct {
	// OnFailure, when set, is told about every failed path once.
	OnFailure func(path string, err error)

	source   Source
	cache    *lru.Cache[string, *Image]
	results  chan result
	ready    []result
	inflight map[string][]Callback
	failed   map[string]struct{}
	log      logrus.FieldLogger
}

func NewLoader(source Source, cacheSize int, log logrus.FieldLogger) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{
		source:   source,
		cache:    cache,
		results:  make(chan result, cacheSize),
		inflight: make(map[string][]Callback),
		failed:   make(map[string]struct{}),
		log:      log.WithField("component", "assets"),
	}, nil
}

// LoadAsync starts loading path. done runs from a later Poll call, never
// from inside LoadAsync, even when the image is already cached.
func (l *Loader) LoadAsync(path string, done Callback) {
	if done == nil {
		done = func(*Image, error) {}
	}
	if strings.TrimSpace(path) == "" {
		l.ready = append(l.ready, result{path: path, err: ErrEmptyPath})
		l.inflight[path] = append(l.inflight[path], done)
		return
	}
	if img, ok := l.cache.Get(path); ok {
		l.ready = append(l.ready, result{path: path, img: img})
		l.inflight[path] = append(l.inflight[path], done)
		return
	}
	waiting, busy := l.inflight[path]
	l.inflight[path] = append(waiting, done)
	if busy {
		return
	}
	go func() {
		img, err := l.source.Load(path)
		l.results <- result{path: path, img: img, err: err}
	}()
}

// Poll delivers every finished load to its callbacks and returns how many
// paths completed. It never blocks.
func (l *Loader) Poll() int {
	done := l.ready
	l.ready = nil
drain:
	for {
		select {
		case r := <-l.results:
			done = append(done, r)
		default:
			break drain
		}
	}

	for _, r := range done {
		callbacks := l.inflight[r.path]
		delete(l.inflight, r.path)

		if r.err == nil && r.img == nil {
			r.err = fmt.Errorf("%s: %w", r.path, ErrNotFound)
		}
		if r.err != nil {
			l.recordFailure(r.path, r.err)
		} else {
			l.cache.Add(r.path, r.img)
		}
		for _, cb := range callbacks {
			cb(r.img, r.err)
		}
	}
	return len(done)
}

// Pending returns the number of paths still waiting for a Poll.
func (l *Loader) Pending() int {
	return len(l.inflight)
}

// Cached reports whether path is in the image cache.
func (l *Loader) Cached(path string) bool {
	return l.cache.Contains(path)
}

func (l *Loader) recordFailure(path string, err error) {
	if _, seen := l.failed[path]; seen {
		return
	}
	l.failed[path] = struct{}{}
	l.log.WithField("path", path).WithError(err).Warn("Failed to load image, slot stays empty")
	if l.OnFailure != nil {
		l.OnFailure(path, err)
	}
}

// Purge drops every cached image. Raw raylib images are unloaded.
func (l *Loader) Purge() {
	for _, key := range l.cache.Keys() {
		if img, ok := l.cache.Peek(key); ok && img.Raw != nil {
			rl.UnloadImage(img.Raw)
		}
	}
	l.cache.Purge()
}
