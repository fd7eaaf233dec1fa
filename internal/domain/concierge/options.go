package concierge

import "github.com/okian/concierge/internal/domain/scoring"

// Option configures an Engine.
type Option func(*Engine)

// WithEventLimit caps the ranked event list. Values outside
// (0, scoring.MaxTopEvents] are ignored.
func WithEventLimit(n int) Option {
	return func(e *Engine) { e.scorerOpts = append(e.scorerOpts, scoring.WithEventLimit(n)) }
}

// WithDestinationLimit caps the ranked destination list. Values outside
// (0, scoring.MaxTopDestinations] are ignored.
func WithDestinationLimit(n int) Option {
	return func(e *Engine) { e.scorerOpts = append(e.scorerOpts, scoring.WithDestinationLimit(n)) }
}
