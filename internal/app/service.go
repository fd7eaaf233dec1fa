// Package service hosts the orchestration engine behind the dependencies the
// HTTP API and the evaluation tool need.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/concierge/internal/adapters/feed"
	"github.com/okian/concierge/internal/domain/concierge"
	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/pkg/logger"
	"github.com/okian/concierge/pkg/metrics"
)

// Service supplies the clock, request ids, timezone and external feeds the
// pure engine does not, and records metrics around every call.
type Service struct {
	mu sync.RWMutex

	engine *concierge.Engine
	feeds  *feed.Loader

	// Configuration
	eventLimit       int
	destinationLimit int
	location         *time.Location
	clock            func() time.Time

	// State
	started        bool
	startedAt      time.Time
	orchestrations atomic.Int64

	logger  logger.Logger
	metrics *metrics.Manager
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		location: time.UTC,
		clock:    time.Now,
		logger:   nil, // replaced on Start
		metrics:  metrics.Global(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = concierge.New(
		concierge.WithEventLimit(s.eventLimit),
		concierge.WithDestinationLimit(s.destinationLimit),
	)
	return s
}

// Start marks the service ready to serve.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.startedAt = s.clock()
	s.logger.Info(ctx, "concierge service started",
		logger.Int("event_limit", s.engine.EventLimit()),
		logger.Int("destination_limit", s.engine.DestinationLimit()),
		logger.String("timezone", s.location.String()),
		logger.Int("feeds", len(s.feedSources())),
	)
	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "concierge service stopped",
		logger.Any("orchestrations", s.orchestrations.Load()))
}

// Orchestrate fills in the request id and time when missing, merges external
// feed sections after the request's own, and runs the engine.
func (s *Service) Orchestrate(ctx context.Context, in model.Input) (model.Output, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return model.Output{}, ErrNotStarted
	}
	if err := ctx.Err(); err != nil {
		return model.Output{}, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	if in.RequestID == "" {
		in.RequestID = uuid.NewString()
	}
	if in.Now.IsZero() {
		in.Now = s.clock()
	}
	in.Now = in.Now.In(s.location)

	if s.feeds != nil {
		external := s.feeds.Load(ctx)
		sections := make([]model.FeedSection, 0, len(in.Sections)+len(external))
		in.Sections = append(append(sections, in.Sections...), external...)
	}

	ctx = logger.WithRequestID(ctx, in.RequestID)
	start := time.Now()
	result := s.engine.Run(in)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	out := result.Output
	s.orchestrations.Add(1)
	s.metrics.RecordOrchestration(string(out.Session.Mode), elapsed)
	s.metrics.RecordEvents(result.EventCandidates, result.EventDuplicates)
	s.metrics.RecordStaleDestinations(out.AgentOutputs.SignalFreshness.StaleCount)

	s.logger.Debug(ctx, "orchestration complete",
		logger.String("portal", out.PortalSlug),
		logger.String("mode", string(out.Session.Mode)),
		logger.Int("events", len(out.Recommendations.TopEventIDs)),
		logger.Int("destinations", len(out.Recommendations.TopDestinationIDs)),
		logger.Int("steps", len(out.Recommendations.Itinerary)),
		logger.Int("duplicates", result.EventDuplicates),
		logger.Float64("latency_ms", elapsed),
	)
	return out, nil
}

func (s *Service) feedSources() []feed.Source {
	if s.feeds == nil {
		return nil
	}
	return s.feeds.Sources()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":           s.started,
		"orchestrations":    s.orchestrations.Load(),
		"event_limit":       s.engine.EventLimit(),
		"destination_limit": s.engine.DestinationLimit(),
		"timezone":          s.location.String(),
		"feeds":             len(s.feedSources()),
	}
	if s.started {
		stats["uptime_seconds"] = int64(s.clock().Sub(s.startedAt).Seconds())
	}
	return stats
}

// Engine exposes the underlying engine for in-process callers.
func (s *Service) Engine() *concierge.Engine { return s.engine }
