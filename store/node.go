package store

// node is an intrusive doubly linked list element owned by the store.
// It stores the key/value alongside the list links; keeping the key on the
// node lets eviction delete from the index without a reverse lookup.
type node[K comparable, V any] struct {
	key K
	val V

	// Intrusive list links: head is MRU, tail is LRU.
	prev *node[K, V]
	next *node[K, V]
}
