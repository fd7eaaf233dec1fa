// Package dedupe tracks identifiers already seen within one pass.
package dedupe

// Option applies a configuration option to the InMemoryDeduper.
type Option func(*inMemoryDeduper)

// WithCapacity presizes the seen set. Non-positive values are ignored.
func WithCapacity(capacity int) Option {
	return func(d *inMemoryDeduper) {
		if capacity > 0 {
			d.capacity = capacity
		}
	}
}
