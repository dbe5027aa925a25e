package store

import "errors"

// ErrInvalidCapacity is returned by New when Options.Capacity is < 1.
// A store that cannot hold a single entry has no meaningful eviction order.
var ErrInvalidCapacity = errors.New("store: capacity must be at least 1")

// Store is a fixed-capacity key/value store with LRU eviction.
// The zero value is not usable; construct with New.
//
// Store is not safe for concurrent use. See the package documentation for
// the external-serialization contract.
type Store[K comparable, V any] struct {
	m    map[K]*node[K, V]
	head *node[K, V] // MRU
	tail *node[K, V] // LRU
	len  int
	cap  int

	opt Options[K, V]
}

// New constructs a store with the provided Options.
// It returns ErrInvalidCapacity if opt.Capacity is < 1.
func New[K comparable, V any](opt Options[K, V]) (*Store[K, V], error) {
	if opt.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &Store[K, V]{
		m:   make(map[K]*node[K, V], opt.Capacity),
		cap: opt.Capacity,
		opt: opt,
	}, nil
}

// Set inserts or updates k→v and makes k the most recently used key.
//
// An existing key keeps its node: the value is overwritten and the node is
// relocated to the head, which is observably the same order a remove-then-
// insert would produce. A new key inserted into a full store first evicts
// the current tail (the least recently used entry), so Len never exceeds
// Cap, not even transiently.
func (s *Store[K, V]) Set(k K, v V) {
	if n, ok := s.m[k]; ok {
		n.val = v
		s.moveToFront(n)
		s.opt.Metrics.Size(s.len)
		return
	}
	s.insertNew(k, v)
}

// Add inserts k→v only if k is not present.
// Returns false if the key already exists (no update, no promotion).
func (s *Store[K, V]) Add(k K, v V) bool {
	if _, ok := s.m[k]; ok {
		return false
	}
	s.insertNew(k, v)
	return true
}

// Get returns the value for k and a boolean flag indicating presence.
// On hit, the entry is promoted to most recently used. Presence is always
// the flag, never the value: a stored zero value is a hit.
func (s *Store[K, V]) Get(k K) (V, bool) {
	n, ok := s.m[k]
	if !ok {
		s.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	s.moveToFront(n)
	s.opt.Metrics.Hit()
	return n.val, true
}

// Peek returns the value for k without promoting the entry.
func (s *Store[K, V]) Peek(k K) (V, bool) {
	n, ok := s.m[k]
	if !ok {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Contains reports whether k is present, without promoting the entry.
func (s *Store[K, V]) Contains(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Remove deletes k if present and returns true on success.
// Removing an absent key is a no-op. Explicit removal is not counted as an
// eviction and does not invoke OnEvict.
func (s *Store[K, V]) Remove(k K) bool {
	n, ok := s.m[k]
	if !ok {
		return false
	}
	s.unlink(n)
	delete(s.m, k)
	s.opt.Metrics.Size(s.len)
	return true
}

// RemoveOldest removes and returns the least recently used entry.
// The third return is false if the store is empty.
func (s *Store[K, V]) RemoveOldest() (K, V, bool) {
	n := s.tail
	if n == nil {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	s.unlink(n)
	delete(s.m, n.key)
	s.opt.Metrics.Size(s.len)
	return n.key, n.val, true
}

// Snapshot returns the stored values ordered from most to least recently
// used. It does not alter recency order. The slice is empty (non-nil) for
// an empty store.
func (s *Store[K, V]) Snapshot() []V {
	out := make([]V, 0, s.len)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// Keys returns the stored keys ordered from most to least recently used,
// without altering recency order.
func (s *Store[K, V]) Keys() []K {
	out := make([]K, 0, s.len)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

// Len returns the number of resident entries.
func (s *Store[K, V]) Len() int { return s.len }

// Cap returns the fixed capacity the store was constructed with.
func (s *Store[K, V]) Cap() int { return s.cap }

// -------------------- internals --------------------

// insertNew links a fresh node for a key known to be absent,
// evicting the tail first if the store is full.
func (s *Store[K, V]) insertNew(k K, v V) {
	if s.len == s.cap {
		s.evictOldest()
	}
	n := &node[K, V]{key: k, val: v}
	s.m[k] = n
	s.insertFront(n)
	s.opt.Metrics.Size(s.len)
}

// evictOldest removes the tail entry, signals metrics, and calls OnEvict.
func (s *Store[K, V]) evictOldest() {
	n := s.tail
	if n == nil {
		return
	}
	s.unlink(n)
	delete(s.m, n.key)
	s.opt.Metrics.Evict()
	if cb := s.opt.OnEvict; cb != nil {
		cb(n.key, n.val)
	}
}

// insertFront inserts n at MRU in O(1).
func (s *Store[K, V]) insertFront(n *node[K, V]) {
	n.prev = nil
	n.next = s.head
	if s.head != nil {
		s.head.prev = n
	}
	s.head = n
	if s.tail == nil {
		s.tail = n
	}
	s.len++
}

// moveToFront promotes n to MRU in O(1).
func (s *Store[K, V]) moveToFront(n *node[K, V]) {
	if n == s.head {
		return
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if s.tail == n {
		s.tail = n.prev
	}
	// insert at head
	n.prev = nil
	n.next = s.head
	if s.head != nil {
		s.head.prev = n
	}
	s.head = n
	if s.tail == nil {
		s.tail = n
	}
}

// unlink removes n from the list and updates the count in O(1).
// It handles head, tail, middle, and sole-entry positions uniformly.
func (s *Store[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if s.head == n {
		s.head = n.next
	}
	if s.tail == n {
		s.tail = n.prev
	}
	n.prev, n.next = nil, nil
	s.len--
}
