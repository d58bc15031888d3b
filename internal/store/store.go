// Package store is the flat-file persistence gateway. Every collection is one
// JSON document under the data directory, loaded and rewritten wholesale.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
)

// Name identifies a collection; it is also the file stem on disk.
type Name string

const (
	Users         Name = "users"
	Students      Name = "students"
	Clubs         Name = "clubs"
	ClubRequests  Name = "club_requests"
	Chats         Name = "chats"
	Calls         Name = "calls"
	Confessions   Name = "confessions"
	Announcements Name = "announcements"
)

// AllNames lists every collection the portal persists.
var AllNames = []Name{Users, Students, Clubs, ClubRequests, Chats, Calls, Confessions, Announcements}

// ErrCorruptCollection is returned when a backing file exists but cannot be
// decoded. Load still hands back the empty value alongside it.
var ErrCorruptCollection = errors.New("collection file is corrupt")

// Store owns the data directory and one lock per collection name.
type Store struct {
	dir    string
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[Name]*sync.Mutex
}

// Open creates the data directory if needed.
func Open(dir string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	logger.Debug().Str("dir", dir).Msg("data directory ready")
	return &Store{
		dir:    dir,
		logger: logger,
		locks:  make(map[Name]*sync.Mutex),
	}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the backing file of a collection.
func (s *Store) Path(name Name) string {
	return filepath.Join(s.dir, string(name)+".json")
}

func (s *Store) lockFor(name Name) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// Collection is a typed handle on one named JSON document. T is the whole
// document: a map for keyed collections, a slice for sequences.
type Collection[T any] struct {
	store *Store
	name  Name
	empty func() T
	mu    *sync.Mutex
}

// NewCollection binds a typed handle. empty must return a fresh, non-nil
// value of the collection's shape.
func NewCollection[T any](s *Store, name Name, empty func() T) *Collection[T] {
	return &Collection[T]{
		store: s,
		name:  name,
		empty: empty,
		mu:    s.lockFor(name),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() Name { return c.name }

// Load returns the stored document. An absent file yields the empty value
// and no error. An unparseable file yields the empty value and an error
// wrapping ErrCorruptCollection.
func (c *Collection[T]) Load(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Save atomically replaces the stored document.
func (c *Collection[T]) Save(ctx context.Context, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, v)
}

// Update runs fn on the current document under the collection lock and
// saves the result when fn reports a change. A corrupt document is never
// handed to fn, so the unreadable file is left in place.
func (c *Collection[T]) Update(ctx context.Context, fn func(*T) (bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.load(ctx)
	if err != nil {
		return err
	}

	changed, err := fn(&v)
	if err != nil || !changed {
		return err
	}
	return c.save(ctx, v)
}

// SeedIfAbsent writes v only when the backing file does not exist yet.
// It reports whether it wrote.
func (c *Collection[T]) SeedIfAbsent(ctx context.Context, v T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := os.Stat(c.store.Path(c.name))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", c.name, err)
	}
	if err := c.save(ctx, v); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Collection[T]) load(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		return c.empty(), err
	}

	data, err := os.ReadFile(c.store.Path(c.name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c.empty(), nil
		}
		return c.empty(), fmt.Errorf("read %s: %w", c.name, err)
	}

	v := c.empty()
	if err := json.Unmarshal(data, &v); err != nil {
		c.store.logger.Error().Err(err).Str("collection", string(c.name)).Msg("collection file is unreadable, treating as empty")
		return c.empty(), fmt.Errorf("%w: %s: %v", ErrCorruptCollection, c.name, err)
	}
	if isNilContainer(v) {
		// a literal `null` document
		return c.empty(), nil
	}
	return v, nil
}

func (c *Collection[T]) save(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}

	if err := writeFileAtomic(c.store.Path(c.name), data); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	c.store.logger.Debug().Str("collection", string(c.name)).Int("bytes", len(data)).Msg("collection saved")
	return nil
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it over the destination.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func isNilContainer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Ptr:
		return rv.IsNil()
	}
	return false
}
