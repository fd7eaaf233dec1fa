package service

import (
	"time"

	"github.com/okian/concierge/internal/adapters/feed"
	"github.com/okian/concierge/pkg/logger"
	"github.com/okian/concierge/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithEventLimit caps the ranked event list.
func WithEventLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.eventLimit = n
		}
	}
}

// WithDestinationLimit caps the ranked destination list.
func WithDestinationLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.destinationLimit = n
		}
	}
}

// WithLocation sets the portal timezone. Request times are converted into it
// before orchestration so dayparts follow local time.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock replaces the clock used when a request carries no time.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithFeedLoader merges external feed sections into every request.
func WithFeedLoader(l *feed.Loader) Option {
	return func(s *Service) { s.feeds = l }
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithMetrics records on m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}
