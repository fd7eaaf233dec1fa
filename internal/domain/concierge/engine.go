// Package concierge wires the engine components into a single orchestration
// call. The Engine performs no I/O, reads no clock and is safe for concurrent
// use once constructed.
package concierge

import (
	"fmt"
	"strings"

	"github.com/okian/concierge/internal/domain/itinerary"
	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/narrative"
	"github.com/okian/concierge/internal/domain/scoring"
	"github.com/okian/concierge/internal/domain/session"
	"github.com/okian/concierge/internal/domain/signals"
)

// GeneratedAtLayout is the ISO-8601 layout of Output.GeneratedAt.
const GeneratedAtLayout = "2006-01-02T15:04:05.000Z"

// Engine is the orchestration facade.
type Engine struct {
	scorerOpts []scoring.Option
	scorer     *scoring.Scorer
}

// New builds an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.scorer = scoring.New(e.scorerOpts...)
	return e
}

// EventLimit returns the effective event cap.
func (e *Engine) EventLimit() int { return e.scorer.EventLimit() }

// DestinationLimit returns the effective destination cap.
func (e *Engine) DestinationLimit() int { return e.scorer.DestinationLimit() }

// Result is an Output together with the intermediate counts the hosting
// service reports as metrics.
type Result struct {
	Output          model.Output
	EventCandidates int
	EventDuplicates int
}

// Orchestrate runs every component over in and assembles the output record.
func (e *Engine) Orchestrate(in model.Input) model.Output {
	return e.Run(in).Output
}

// Run is Orchestrate with the intermediate counts exposed.
func (e *Engine) Run(in model.Input) Result {
	resolution := session.Resolve(in.Session)
	s := resolution.Session
	dests := in.ActiveDestinations()

	federation := signals.Federation(in.SourceAccess)
	freshness := signals.Freshness(dests, in.Now)
	events := e.scorer.RankEvents(in.Sections, s.DiscoveryFocus, in.Now)
	venues := e.scorer.RankDestinations(dests, s.FoodFocus)
	plan := itinerary.Compose(events, venues, s.Mode)
	presentation := narrative.Generate(s, in.Now, freshness)

	out := model.Output{
		RequestID:   in.RequestID,
		GeneratedAt: in.Now.UTC().Format(GeneratedAtLayout),
		PortalSlug:  in.Portal.Slug,
		Session:     s,
		Recommendations: model.Recommendations{
			TopEventIDs:       events.TopIDs,
			TopDestinationIDs: venues.TopIDs,
			Itinerary:         plan.Steps,
		},
		GuestExplainers: presentation.GuestExplainers,
		AgentOutputs: model.AgentOutputs{
			FederationAccess:  federation,
			SignalFreshness:   freshness,
			PersonaIntent:     personaIntent(resolution),
			ExperienceRouting: experienceRouting(resolution),
			EventDiscovery: model.EventDiscovery{
				Focus:          s.DiscoveryFocus,
				CandidateCount: events.CandidateCount,
				TopEventIDs:    events.TopIDs,
				ReasonsByEvent: events.Reasons,
			},
			FoodDrinkCurator: model.FoodDrinkCurator{
				Focus:                s.FoodFocus,
				CandidateCount:       len(dests),
				TopDestinationIDs:    venues.TopIDs,
				ReasonsByDestination: venues.Reasons,
			},
			PropertyClub: propertyClub(dests),
			ItineraryComposer: model.ItineraryComposer{
				Mode:      s.Mode,
				Strategy:  plan.Strategy,
				StepCount: len(plan.Steps),
				Reasons:   plan.Reasons,
			},
			ArtDirection:   presentation.ArtDirection,
			UXArchitecture: presentation.UXArchitecture,
			VoiceNarrative: presentation.VoiceNarrative,
		},
	}
	return Result{
		Output:          out,
		EventCandidates: events.CandidateCount,
		EventDuplicates: events.Duplicates,
	}
}

func personaIntent(r session.Resolution) model.PersonaIntent {
	s := r.Session
	defaulted := r.Defaulted
	if defaulted == nil {
		defaulted = []string{}
	}
	reasons := []model.Reason{
		model.NewReason("persona_match",
			fmt.Sprintf("Session resolved to the %s persona.", strings.ToLower(s.Persona.Label())), 0.85),
		model.NewReason("intent_match",
			fmt.Sprintf("Intent set to %s.", session.Words(s.Intent)), 0.8),
	}
	if len(r.Defaulted) > 0 {
		reasons = append(reasons, model.NewReason("defaults_applied",
			fmt.Sprintf("Defaults applied for %s.", strings.Join(r.Defaulted, ", ")), 0.4))
	}
	return model.PersonaIntent{
		Persona:      s.Persona,
		PersonaLabel: s.Persona.Label(),
		Intent:       s.Intent,
		Defaulted:    defaulted,
		Reasons:      reasons,
	}
}

func experienceRouting(r session.Resolution) model.ExperienceRouting {
	s := r.Session
	return model.ExperienceRouting{
		View: s.View,
		Mode: s.Mode,
		Reasons: []model.Reason{
			model.NewReason("view_route", fmt.Sprintf("Routed to the %s view.", s.View), 0.78),
			model.NewReason("mode_route", fmt.Sprintf("Running in %s mode.", s.Mode), 0.72),
		},
	}
}

func propertyClub(dests []model.Destination) model.PropertyClub {
	var pc model.PropertyClub
	for _, d := range dests {
		switch d.SpecialState.Resolve() {
		case model.SpecialActiveNow:
			pc.LiveNowCount++
		case model.SpecialStartingSoon:
			pc.StartingSoonCount++
		}
		if d.ProximityTier.Resolve() == model.ProximityWalkable {
			pc.WalkableCount++
		}
	}
	pc.Reasons = []model.Reason{
		model.NewReason("live_now",
			fmt.Sprintf("%d specials live now, %d starting soon.", pc.LiveNowCount, pc.StartingSoonCount), 0.82),
		model.NewReason("walkable",
			fmt.Sprintf("%d destinations within walking distance.", pc.WalkableCount), 0.68),
	}
	return pc
}
