package store

// Options configures the store. Zero values are safe except Capacity,
// which must be at least 1; sane defaults are applied in New():
//   - nil Metrics => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit. It is fixed at construction;
	// New returns ErrInvalidCapacity if it is < 1.
	Capacity int

	// OnEvict is called for every capacity eviction, after the entry has
	// been unlinked and unindexed. Keep callbacks lightweight: they run
	// inside Set/Add.
	OnEvict func(k K, v V)

	// Metrics receives Hit/Miss/Evict/Size signals. Nil => NoopMetrics.
	Metrics Metrics
}
