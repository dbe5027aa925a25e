package store

// Metrics exposes store-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// Hit and Miss are emitted by Get only; Peek and Contains are deliberate
// non-promoting reads and stay invisible to hit-rate accounting.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is intended as the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()             {}
func (NoopMetrics) Miss()            {}
func (NoopMetrics) Evict()           {}
func (NoopMetrics) Size(entries int) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
