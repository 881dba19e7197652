// Package mirror holds the server-side copies of Record Store rows that the
// read endpoints render from.
package mirror

import "sync"

// Outcome reports where a mutation ended up.
type Outcome string

const (
	// Persisted means the Record Store accepted the write and the mirror was updated.
	Persisted Outcome = "persisted"
	// PersistedLocallyOnly means the Record Store write failed and only the mirror holds the change.
	PersistedLocallyOnly Outcome = "persisted_locally_only"
)

// IsDurable reports whether the Record Store has the change.
func (o Outcome) IsDurable() bool {
	return o == Persisted
}

// Collection is an insertion-ordered set of items keyed by id.
// It is safe for concurrent use.
type Collection[T any] struct {
	mu    sync.RWMutex
	key   func(T) string
	items []T
	index map[string]int
}

// NewCollection creates an empty collection that identifies items with key.
func NewCollection[T any](key func(T) string) *Collection[T] {
	return &Collection[T]{
		key:   key,
		index: make(map[string]int),
	}
}

// Replace swaps the whole content for items. Later duplicates of an id win
// but keep the position of the first occurrence.
func (c *Collection[T]) Replace(items []T) {
	next := make([]T, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		id := c.key(item)
		if pos, ok := index[id]; ok {
			next[pos] = item
			continue
		}
		index[id] = len(next)
		next = append(next, item)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = next
	c.index = index
}

// Upsert appends item, or replaces it in place when its id is already known.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)
	if pos, ok := c.index[id]; ok {
		c.items[pos] = item
		return
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
}

// Get returns the item stored under id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// Delete removes the item stored under id and reports whether it existed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.key(c.items[i])] = i
	}
	return true
}

// All returns a copy of every item in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Filter returns a copy of the items for which keep returns true, in insertion order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
