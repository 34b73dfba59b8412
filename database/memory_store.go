package database

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rpupo63/domp-site-backend/errs"
)

// MemoryStore keeps collections in process memory. It backs DB_TYPE=memory
// and the tests. The mutex protects the maps only; repositories still do
// unguarded read-modify-write cycles on top of it.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
	down        atomic.Bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

// SetUnavailable makes every later call fail as if the database could not
// be reached, until it is called again with false.
func (s *MemoryStore) SetUnavailable(down bool) {
	s.down.Store(down)
}

func (s *MemoryStore) Ping(context.Context) error {
	return s.check()
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{store: s, name: name}
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) check() error {
	if s.down.Load() {
		return errs.ErrDatabaseConnection
	}
	return nil
}

type memoryCollection struct {
	store *MemoryStore
	name  string
	docs  []Entry
}

func (c *memoryCollection) Name() string {
	return c.name
}

func (c *memoryCollection) FindAll(context.Context) ([]Entry, error) {
	if err := c.store.check(); err != nil {
		return nil, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	out := make([]Entry, len(c.docs))
	for i, d := range c.docs {
		out[i] = Entry{ID: d.ID, Body: slices.Clone(d.Body)}
	}
	return out, nil
}

func (c *memoryCollection) FindOne(_ context.Context, id string) (Entry, error) {
	if err := c.store.check(); err != nil {
		return Entry{}, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if i := c.index(id); i >= 0 {
		return Entry{ID: id, Body: slices.Clone(c.docs[i].Body)}, nil
	}
	return Entry{}, errs.ErrNotFound
}

func (c *memoryCollection) Upsert(_ context.Context, id string, body json.RawMessage) error {
	if err := c.store.check(); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc := Entry{ID: id, Body: slices.Clone(body)}
	if i := c.index(id); i >= 0 {
		c.docs[i] = doc
		return nil
	}
	c.docs = append(c.docs, doc)
	return nil
}

func (c *memoryCollection) ReplaceAll(_ context.Context, docs []Entry) error {
	if err := c.store.check(); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	c.docs = make([]Entry, len(docs))
	for i, d := range docs {
		c.docs[i] = Entry{ID: d.ID, Body: slices.Clone(d.Body)}
	}
	return nil
}

func (c *memoryCollection) Delete(_ context.Context, id string) (bool, error) {
	if err := c.store.check(); err != nil {
		return false, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	c.docs = slices.Delete(c.docs, i, i+1)
	return true, nil
}

// callers hold store.mu
func (c *memoryCollection) index(id string) int {
	return slices.IndexFunc(c.docs, func(d Entry) bool { return d.ID == id })
}

// UnconfiguredStore is used when no database is configured. Every operation
// fails with errs.ErrStoreNotConfigured.
type UnconfiguredStore struct{}

func (UnconfiguredStore) Ping(context.Context) error {
	return errs.ErrStoreNotConfigured
}

func (UnconfiguredStore) Collection(name string) Collection {
	return unconfiguredCollection(name)
}

type unconfiguredCollection string

func (c unconfiguredCollection) Name() string { return string(c) }

func (unconfiguredCollection) FindAll(context.Context) ([]Entry, error) {
	return nil, errs.ErrStoreNotConfigured
}

func (unconfiguredCollection) FindOne(context.Context, string) (Entry, error) {
	return Entry{}, errs.ErrStoreNotConfigured
}

func (unconfiguredCollection) Upsert(context.Context, string, json.RawMessage) error {
	return errs.ErrStoreNotConfigured
}

func (unconfiguredCollection) ReplaceAll(context.Context, []Entry) error {
	return errs.ErrStoreNotConfigured
}

func (unconfiguredCollection) Delete(context.Context, string) (bool, error) {
	return false, errs.ErrStoreNotConfigured
}
