// Package dedupe tracks identifiers already seen within one pass.
package dedupe

// Deduper records seen identifiers so that the first occurrence wins.
type Deduper interface {
	// SeenAndRecord reports whether id was already seen and records it if not.
	// Empty ids are never recorded and always report as seen, so callers drop them.
	SeenAndRecord(id string) bool

	// Size returns the number of recorded ids.
	Size() int
}

// inMemoryDeduper is a map-backed Deduper. It is scoped to a single
// orchestration call and is not safe for concurrent use.
type inMemoryDeduper struct {
	seen     map[string]struct{}
	capacity int
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{}, d.capacity)
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(id string) bool {
	if id == "" {
		return true
	}
	if _, exists := d.seen[id]; exists {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	return len(d.seen)
}
