// Package asset loads game assets from a root directory, caches them, and
// hot-reloads them when the files change on disk.
package asset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/plus3/kiln/errs"
)

// Handle identifies a loaded asset: a unique id plus the cleaned path
// relative to the server root. Handles stay valid across hot reloads.
type Handle struct {
	ID   uuid.UUID
	Path string
}

// Loader decodes the file at an absolute path into an asset value.
type Loader func(path string) (any, error)

// Event reports a hot-reload outcome for a loaded asset.
type Event struct {
	Handle Handle
	Err    error
}

type entry struct {
	handle Handle
	value  any
}

// Server owns the asset cache for one root directory. Paths passed to
// Load are relative to the root and may not escape it.
type Server struct {
	root string
	log  *slog.Logger

	mu      sync.RWMutex
	loaders map[string]Loader
	byPath  map[string]*entry
	byID    map[uuid.UUID]*entry
	watched map[string]bool

	watcher *fsnotify.Watcher
	events  chan Event
	done    chan struct{}
	closed  sync.Once
}

// Option configures a Server at construction.
type Option func(*Server)

// WithLogger sets the logger used for watcher diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// NewServer creates a server rooted at the given directory and starts the
// hot-reload watcher.
func NewServer(root string, opts ...Option) (*Server, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errs.Wrap(errs.CategoryAsset, "asset root not accessible", err)
	}
	if !info.IsDir() {
		return nil, errs.AssetPath("asset root is not a directory", root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errs.Wrap(errs.CategoryAsset, "starting file watcher", err)
	}

	s := &Server{
		root:    root,
		log:     slog.Default(),
		loaders: make(map[string]Loader),
		byPath:  make(map[string]*entry),
		byID:    make(map[uuid.UUID]*entry),
		watched: make(map[string]bool),
		watcher: watcher,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.watch()
	return s, nil
}

// Root returns the server's root directory.
func (s *Server) Root() string {
	return s.root
}

// RegisterLoader installs a loader for a file extension (".png"). A later
// registration for the same extension replaces the earlier one.
func (s *Server) RegisterLoader(ext string, loader Loader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaders[strings.ToLower(ext)] = loader
}

// Load reads the asset at the given root-relative path. Repeated loads of
// the same path return the cached handle without touching disk.
func (s *Server) Load(path string) (Handle, error) {
	rel, err := s.cleanPath(path)
	if err != nil {
		return Handle{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.byPath[rel]; ok {
		return e.handle, nil
	}

	loader, ok := s.loaders[strings.ToLower(filepath.Ext(rel))]
	if !ok {
		return Handle{}, errs.AssetPath("no loader registered for extension", rel)
	}

	full := filepath.Join(s.root, rel)
	value, err := loader(full)
	if err != nil {
		return Handle{}, &errs.Error{
			Category: errs.CategoryAsset,
			Message:  "loading asset",
			Path:     rel,
			Err:      err,
		}
	}

	e := &entry{
		handle: Handle{ID: uuid.New(), Path: rel},
		value:  value,
	}
	s.byPath[rel] = e
	s.byID[e.handle.ID] = e

	s.watchDir(filepath.Dir(full))
	return e.handle, nil
}

// Get returns the asset for a handle as T. The second return is false for
// unknown handles or a value of a different type.
func Get[T any](s *Server, h Handle) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	e, ok := s.byID[h.ID]
	if !ok {
		return zero, false
	}
	value, ok := e.value.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

// Loaded reports whether a root-relative path is in the cache.
func (s *Server) Loaded(path string) bool {
	rel, err := s.cleanPath(path)
	if err != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byPath[rel]
	return ok
}

// Events surfaces hot-reload results. The channel is buffered; events are
// dropped when no one is listening.
func (s *Server) Events() <-chan Event {
	return s.events
}

// Close stops the watcher. Loaded assets remain readable through Get.
func (s *Server) Close() error {
	var err error
	s.closed.Do(func() {
		close(s.done)
		err = s.watcher.Close()
	})
	return err
}

// cleanPath normalizes a root-relative path and rejects escapes.
func (s *Server) cleanPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return "", errs.AssetPath("asset path must be relative to the root", path)
	}
	rel := filepath.Clean(path)
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errs.AssetPath("asset path escapes the root", path)
	}
	return rel, nil
}

// watchDir adds a directory to the watcher once. Watching directories
// instead of files keeps reload working across editors that replace files
// on save.
func (s *Server) watchDir(dir string) {
	if s.watched[dir] {
		return
	}
	if err := s.watcher.Add(dir); err != nil {
		s.log.Warn("asset watch failed", "dir", dir, "error", err)
		return
	}
	s.watched[dir] = true
}

func (s *Server) watch() {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				s.reload(ev.Name)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("asset watcher error", "error", err)
		}
	}
}

// reload re-runs the loader for a changed file and swaps the cache entry.
func (s *Server) reload(fullPath string) {
	rel, err := filepath.Rel(s.root, fullPath)
	if err != nil {
		return
	}

	s.mu.Lock()
	e, ok := s.byPath[rel]
	if !ok {
		s.mu.Unlock()
		return
	}

	loader := s.loaders[strings.ToLower(filepath.Ext(rel))]
	if loader == nil {
		s.mu.Unlock()
		return
	}

	value, err := loader(fullPath)
	if err == nil {
		e.value = value
	}
	handle := e.handle
	s.mu.Unlock()

	if err != nil {
		err = fmt.Errorf("reloading %s: %w", rel, err)
		s.log.Warn("asset reload failed", "path", rel, "error", err)
	} else {
		s.log.Debug("asset reloaded", "path", rel)
	}

	select {
	case s.events <- Event{Handle: handle, Err: err}:
	default:
	}
}
