// File: configstore/store.go
package configstore

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Store is a thread-safe configuration tree bound to an optional file.
// The zero value is not usable; create instances with New or Shared.
//
// Two locks govern all operations. fileMu serializes disk access so at most
// one goroutine reads or writes the file at a time. dataMu guards the
// in-memory tree and the path/format fields. Operations that both mutate the
// tree and persist it acquire fileMu first, then dataMu, and funnel the I/O
// through saveLocked; pure in-memory accessors take only dataMu.
type Store struct {
	fileMu sync.Mutex
	dataMu sync.RWMutex

	tree   map[string]any
	path   string
	format Format

	autoSave atomic.Bool
	warn     WarnFunc
}

// settings collects construction options for New and Shared.
type settings struct {
	autoSave bool
	defaults map[string]any
	warn     WarnFunc
}

// Option configures a Store at construction time.
type Option func(*settings)

// WithAutoSave controls whether every mutating accessor persists the tree
// to disk immediately. Auto-save is enabled by default.
func WithAutoSave(enabled bool) Option {
	return func(s *settings) { s.autoSave = enabled }
}

// WithDefaults supplies the default tree merged (or written) by the
// CreateOrLoad performed when a path is bound at construction. It has no
// effect on a Store constructed without a path.
func WithDefaults(defaults map[string]any) Option {
	return func(s *settings) { s.defaults = defaults }
}

// WithWarnFunc replaces the default logrus-backed warning sink.
func WithWarnFunc(warn WarnFunc) Option {
	return func(s *settings) { s.warn = warn }
}

// New creates a standalone Store with an empty tree and no file bound.
// Use Load, Create, or CreateOrLoad to bind one.
func New(opts ...Option) *Store {
	set := applyOptions(opts)
	store := &Store{
		tree: make(map[string]any),
		warn: set.warn,
	}
	store.autoSave.Store(set.autoSave)
	return store
}

func applyOptions(opts []Option) settings {
	set := settings{autoSave: true, warn: defaultWarn}
	for _, opt := range opts {
		opt(&set)
	}
	if set.warn == nil {
		set.warn = defaultWarn
	}
	return set
}

var (
	sharedStore atomic.Pointer[Store]
	creationMu  sync.Mutex
)

// Shared returns the process-wide Store, creating it on first call.
// The first call that supplies a path performs CreateOrLoad with the
// defaults from WithDefaults. Later calls return the existing instance:
// with no path or the already-bound path it is returned untouched; with a
// different path the call warns through the store's sink and returns the
// existing instance unchanged. If the store has no bound path (fresh or
// after Reset), a call with a path binds it.
//
// Creation is race-free: a lock-free fast path observes a fully-constructed
// instance, and a creation lock with a second check ensures only one
// goroutine initializes.
func Shared(path string, opts ...Option) (*Store, error) {
	if store := sharedStore.Load(); store != nil {
		return store.adopt(path, applyOptions(opts))
	}

	creationMu.Lock()
	defer creationMu.Unlock()

	if store := sharedStore.Load(); store != nil {
		return store.adopt(path, applyOptions(opts))
	}

	set := applyOptions(opts)
	store := &Store{
		tree: make(map[string]any),
		warn: set.warn,
	}
	store.autoSave.Store(set.autoSave)

	if path != "" {
		if err := store.CreateOrLoad(path, set.defaults); err != nil {
			return nil, err
		}
	}

	sharedStore.Store(store)
	return store, nil
}

// adopt reconciles a construction call against an already-created instance.
func (s *Store) adopt(path string, set settings) (*Store, error) {
	s.dataMu.RLock()
	current := s.path
	s.dataMu.RUnlock()

	switch {
	case path == "" || path == current:
		return s, nil
	case current == "":
		// No file bound (never loaded, or after Reset): bind now.
		return s, s.CreateOrLoad(path, set.defaults)
	default:
		s.warn(fmt.Sprintf("configuration store already bound to %s, ignoring %s", current, path))
		return s, nil
	}
}

// Reset clears the tree and unbinds the file. The instance identity is
// preserved: the shared handle keeps pointing at this Store, which behaves
// as freshly constructed. The auto-save flag is not touched.
func (s *Store) Reset() {
	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	s.tree = make(map[string]any)
	s.path = ""
	s.format = ""
}

// Path returns the bound configuration file path, or "" if none.
func (s *Store) Path() string {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.path
}

// Format returns the detected file format, or "" if no file is bound.
func (s *Store) Format() Format {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.format
}

// AutoSave reports whether mutating accessors persist immediately.
func (s *Store) AutoSave() bool {
	return s.autoSave.Load()
}

// SetAutoSave toggles immediate persistence of mutations.
func (s *Store) SetAutoSave(enabled bool) {
	s.autoSave.Store(enabled)
}
