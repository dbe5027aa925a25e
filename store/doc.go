// Package store provides a fixed-capacity, generic key/value store with
// least-recently-used eviction, lightweight metrics hooks, and an eviction
// callback.
//
// Design
//
//   - Storage: a map[K]*node for lookups and an intrusive MRU↔LRU doubly
//     linked list for recency ordering. All operations are O(1).
//
//   - Recency: every Set and every successful Get leaves the touched entry
//     at the head of the list (most recently used). Peek, Contains, Keys and
//     Snapshot read without promoting.
//
//   - Eviction: when a Set or Add of a new key finds the store full, the
//     current tail (least recently used) is evicted before the new entry is
//     linked, so Len never exceeds Cap. Explicit Remove is not an eviction.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug a Prometheus adapter to export
//     metrics.
//
//   - Callbacks: Options.OnEvict(k, v) is called for every capacity
//     eviction, after the entry has been unlinked.
//
// Basic usage
//
//	s, err := store.New[string, string](store.Options[string, string]{Capacity: 128})
//	if err != nil {
//	    // capacity was < 1
//	}
//	s.Set("a", "1")
//	if v, ok := s.Get("a"); ok {
//	    _ = v // use value; "a" is now most recently used
//	}
//	s.Remove("a")
//
// Concurrency
//
// A Store performs no internal locking and is NOT safe for concurrent use.
// Every operation is synchronous and runs to completion without blocking,
// so a host that shares one Store across goroutines only needs to serialize
// access externally (e.g. one sync.Mutex around every call).
package store
