// Package memoize wraps pure functions so that repeated calls with the same
// arguments return a cached result instead of recomputing.
//
// Each wrapper owns a private fixed-capacity LRU store (package store), so
// hot argument tuples stay cached while cold ones age out.
//
//	add := memoize.Func2(func(x, y int) int { return x + y })
//	add(1, 2) // computes 3
//	add(1, 2) // returns 3 from cache
//
// Cache keys are derived from the argument sequence with Key: they are
// canonical, order-sensitive and type-sensitive, so (1, 2), (2, 1) and
// (1, "2") occupy three distinct entries.
//
// The wrapped function is assumed to be deterministic and side-effect free.
// If it has side effects or is non-deterministic, cached calls after the
// first will not re-trigger those effects; that is a documented constraint
// of memoization, not a bug.
//
// Arguments that cannot be JSON-encoded (channels, functions, cyclic
// values) are outside the caching contract: the wrapper calls the
// underlying function directly and nothing is cached for that call.
//
// Like the underlying store, wrappers are not safe for concurrent use
// without external serialization.
package memoize
