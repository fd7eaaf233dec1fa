// Package itinerary composes the ordered plan: one lead event followed by up
// to three destinations chosen by a mode-dependent strategy.
package itinerary

import (
	"fmt"
	"strings"

	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/scoring"
	"github.com/okian/concierge/internal/domain/session"
)

// MaxDestinationSteps caps the destination steps in one itinerary.
const MaxDestinationSteps = 3

const leadEventReason = "Lead event selected from focus-ranked stack."

var etaMinutes = map[model.ProximityTier]int{
	model.ProximityWalkable:    12,
	model.ProximityClose:       24,
	model.ProximityDestination: 38,
}

// strategy is the fixed per-mode destination selection row. A nil filter
// takes the ranked list as-is.
type strategy struct {
	name   string
	reason string
	weight float64
	filter func(model.Destination) bool
}

var premiumVenueTypes = map[string]bool{"rooftop": true, "bar": true, "restaurant": true}

var strategies = map[session.Mode]strategy{
	session.ModeSafe: {
		name:   "ranked_proximity",
		reason: "Chosen for reliable timing and proximity.",
		weight: 0.72,
	},
	session.ModeElevated: {
		name:   "premium_rooms",
		reason: "Chosen for premium room quality and signature atmosphere.",
		weight: 0.78,
		filter: func(d model.Destination) bool { return premiumVenueTypes[strings.ToLower(d.Venue.VenueType)] },
	},
	session.ModeAdventurous: {
		name:   "beyond_radius",
		reason: "Chosen for higher-energy exploration beyond immediate radius.",
		weight: 0.74,
		filter: func(d model.Destination) bool { return d.ProximityTier != model.ProximityWalkable },
	},
}

// Plan is the composed itinerary and how it was built.
type Plan struct {
	Steps    []model.ItineraryStep
	Strategy string
	Reasons  []model.Reason
}

// Compose builds the itinerary from the ranked events and destinations.
func Compose(events scoring.EventRanking, destinations scoring.DestinationRanking, mode session.Mode) Plan {
	st := strategies[mode]
	steps := make([]model.ItineraryStep, 0, 1+MaxDestinationSteps)

	if len(events.Top) > 0 {
		lead := events.Top[0]
		steps = append(steps, model.ItineraryStep{
			Order:      1,
			Kind:       model.StepEvent,
			ID:         "event-" + lead.ID,
			RefID:      lead.ID,
			Title:      lead.Event.Title,
			EtaMinutes: 0,
			Reason:     leadEventReason,
		})
	}

	for _, d := range selectDestinations(destinations, st.filter) {
		steps = append(steps, model.ItineraryStep{
			Order:      len(steps) + 1,
			Kind:       model.StepDestination,
			ID:         "dest-" + d.Key(),
			RefID:      d.Key(),
			Title:      d.Destination.Venue.Name,
			EtaMinutes: etaMinutes[d.Destination.ProximityTier.Resolve()],
			Reason:     st.reason,
		})
	}

	return Plan{
		Steps:    steps,
		Strategy: st.name,
		Reasons: []model.Reason{
			model.NewReason("mode_"+string(mode), st.reason, st.weight),
			model.NewReason("step_count",
				fmt.Sprintf("%d steps composed (%d destinations).", len(steps), destinationCount(steps)), 0.6),
		},
	}
}

// selectDestinations picks the destination steps. Without a filter the
// candidates are the ranked list. With one, the filtered full scored list is
// placed ahead of the ranked list. The first distinct ids win, so fewer than
// MaxDestinationSteps come back when fewer distinct ids exist.
func selectDestinations(r scoring.DestinationRanking, filter func(model.Destination) bool) []scoring.ScoredDestination {
	candidates := r.Top
	if filter != nil {
		candidates = make([]scoring.ScoredDestination, 0, len(r.Scored)+len(r.Top))
		for _, d := range r.Scored {
			if filter(d.Destination) {
				candidates = append(candidates, d)
			}
		}
		candidates = append(candidates, r.Top...)
	}

	seen := make(map[int]bool, MaxDestinationSteps)
	out := make([]scoring.ScoredDestination, 0, MaxDestinationSteps)
	for _, d := range candidates {
		if len(out) == MaxDestinationSteps {
			break
		}
		if seen[d.ID()] {
			continue
		}
		seen[d.ID()] = true
		out = append(out, d)
	}
	return out
}

func destinationCount(steps []model.ItineraryStep) int {
	n := 0
	for _, s := range steps {
		if s.Kind == model.StepDestination {
			n++
		}
	}
	return n
}

// StepIDs returns the step ids in order.
func StepIDs(steps []model.ItineraryStep) []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}
