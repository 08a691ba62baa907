// Package store holds the in-memory entity collections owned by the
// application root. All mutation goes through the sync operations; the
// presentation boundary only ever sees snapshots.
package store

import (
	"sort"
	"sync"
)

// LoadState tracks the single full-collection fetch lifecycle.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Loaded
)

// Collection is an ordered in-memory sequence of one entity type.
// canonical, when set, is the natural sort restored after every mutation
// so derived views do not re-sort on each render.
type Collection[T any] struct {
	mu        sync.RWMutex
	items     []T
	id        func(T) string
	canonical func(a, b T) bool
	state     LoadState
}

func NewCollection[T any](id func(T) string, canonical func(a, b T) bool) *Collection[T] {
	return &Collection[T]{id: id, canonical: canonical}
}

func (c *Collection[T]) State() LoadState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// BeginLoad marks the collection as loading. Returns false if a load is
// already in flight.
func (c *Collection[T]) BeginLoad() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Loading {
		return false
	}
	c.state = Loading
	return true
}

// SetAll replaces the whole collection with a freshly fetched snapshot.
func (c *Collection[T]) SetAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
	c.resortLocked()
	c.state = Loaded
}

// AbortLoad rolls the state back to idle after a failed fetch.
func (c *Collection[T]) AbortLoad() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Loading {
		c.state = Idle
	}
}

// Snapshot returns a copy of the current sequence.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Prepend inserts a newly created entity at the head, then restores the
// canonical order when one is defined.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.resortLocked()
}

// Replace swaps the entity with a matching id in place. Returns false
// when no entity matched.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			c.resortLocked()
			return true
		}
	}
	return false
}

// Remove filters the entity with the given id out of the sequence.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) resortLocked() {
	if c.canonical == nil {
		return
	}
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.canonical(c.items[i], c.items[j])
	})
}

// Singleton holds a single configuration record with a well-known id.
type Singleton[T any] struct {
	mu    sync.RWMutex
	value *T
}

func (s *Singleton[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.value == nil {
		var zero T
		return zero, false
	}
	return *s.value, true
}

func (s *Singleton[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = &value
}
