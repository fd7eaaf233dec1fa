// Package scoring ranks feed events and destinations against the resolved
// session and attaches the reasons behind every score.
package scoring

// Ranking caps. Limits configured through options never exceed these.
const (
	MaxTopEvents       = 12
	MaxTopDestinations = 14
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithEventLimit caps the number of ranked events returned. Values outside
// (0, MaxTopEvents] are ignored.
func WithEventLimit(n int) Option {
	return func(s *Scorer) {
		if n > 0 && n <= MaxTopEvents {
			s.eventLimit = n
		}
	}
}

// WithDestinationLimit caps the number of ranked destinations returned. Values
// outside (0, MaxTopDestinations] are ignored.
func WithDestinationLimit(n int) Option {
	return func(s *Scorer) {
		if n > 0 && n <= MaxTopDestinations {
			s.destinationLimit = n
		}
	}
}

// Scorer scores events and destinations. It is immutable after construction
// and safe for concurrent use.
type Scorer struct {
	eventLimit       int
	destinationLimit int
}

// New creates a Scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		eventLimit:       MaxTopEvents,
		destinationLimit: MaxTopDestinations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EventLimit returns the configured event cap.
func (s *Scorer) EventLimit() int { return s.eventLimit }

// DestinationLimit returns the configured destination cap.
func (s *Scorer) DestinationLimit() int { return s.destinationLimit }
