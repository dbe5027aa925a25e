package memoize

import (
	"github.com/cachekit/memolru/store"
)

// DefaultCapacity is the per-wrapper store capacity when WithCapacity is
// not supplied.
const DefaultCapacity = 128

type config struct {
	capacity int
	metrics  store.Metrics
}

// Option configures a memoizing wrapper.
type Option func(*config)

// WithCapacity sets the capacity of the wrapper's private store.
// A capacity < 1 makes the wrapper constructor panic: it is a configuration
// error, rejected fail-fast.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithMetrics wires a Metrics hook into the wrapper's private store.
func WithMetrics(m store.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// Func1 returns a memoized version of a one-argument function.
func Func1[A, R any](f func(A) R, opts ...Option) func(A) R {
	s := newStore[R](opts)
	return func(a A) R {
		return cached(s, func() R { return f(a) }, a)
	}
}

// Func2 returns a memoized version of a two-argument function.
func Func2[A, B, R any](f func(A, B) R, opts ...Option) func(A, B) R {
	s := newStore[R](opts)
	return func(a A, b B) R {
		return cached(s, func() R { return f(a, b) }, a, b)
	}
}

// Func3 returns a memoized version of a three-argument function.
func Func3[A, B, C, R any](f func(A, B, C) R, opts ...Option) func(A, B, C) R {
	s := newStore[R](opts)
	return func(a A, b B, c C) R {
		return cached(s, func() R { return f(a, b, c) }, a, b, c)
	}
}

// Variadic returns a memoized version of a variadic function.
// Argument order is part of the key: f(1,2,3) and f(3,2,1) are distinct
// cache entries.
func Variadic[A, R any](f func(...A) R, opts ...Option) func(...A) R {
	s := newStore[R](opts)
	return func(args ...A) R {
		boxed := make([]any, len(args))
		for i, a := range args {
			boxed[i] = a
		}
		return cached(s, func() R { return f(args...) }, boxed...)
	}
}

// cached is the shared hit/miss path: derive the key, try the store, and on
// a miss compute and remember the result. An unencodable argument sequence
// falls back to a direct uncached call.
func cached[R any](s *store.Store[string, R], compute func() R, args ...any) R {
	k, err := Key(args...)
	if err != nil {
		return compute()
	}
	if r, ok := s.Get(k); ok {
		return r
	}
	r := compute()
	s.Set(k, r)
	return r
}

// newStore builds the wrapper's private store, applying defaults.
// Panics on an invalid WithCapacity value: the wrappers return bare
// callables, so configuration errors have to surface at construction.
func newStore[R any](opts []Option) *store.Store[string, R] {
	cfg := config{capacity: DefaultCapacity}
	for _, o := range opts {
		o(&cfg)
	}
	s, err := store.New[string, R](store.Options[string, R]{
		Capacity: cfg.capacity,
		Metrics:  cfg.metrics,
	})
	if err != nil {
		panic("memoize: " + err.Error())
	}
	return s
}
