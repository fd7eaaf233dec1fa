package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/session"
)

// Destination score components.
const (
	confidenceMultiplier = 2
	venueTypeBonus       = 6
	keywordBonus         = 4
)

// Destination reason weights.
const (
	weightState        = 0.7
	weightProximity    = 0.66
	weightDestBroadMix = 0.5
	weightVenueTypeFit = 0.92
	weightKeywordFit   = 0.83
)

// ScoredDestination is a destination with its score and reasons.
type ScoredDestination struct {
	Destination model.Destination
	Score       float64
	Reasons     []model.Reason
}

// ID returns the venue id.
func (d ScoredDestination) ID() int { return d.Destination.Venue.ID }

// Key returns the venue id in its string form, as used for reason maps.
func (d ScoredDestination) Key() string { return strconv.Itoa(d.ID()) }

// DestinationRanking is the result of ranking destinations.
type DestinationRanking struct {
	// Scored holds every destination in descending score order.
	Scored  []ScoredDestination
	Top     []ScoredDestination
	TopIDs  []int
	Reasons map[string][]model.Reason
}

// RankDestinations scores every destination against focus and returns them in
// descending score order. Ties keep input order.
func (s *Scorer) RankDestinations(destinations []model.Destination, focus session.FoodFocus) DestinationRanking {
	scored := make([]ScoredDestination, len(destinations))
	for i, d := range destinations {
		scored[i] = scoreDestination(d, focus)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored[:min(len(scored), s.destinationLimit)]
	ranking := DestinationRanking{
		Scored:  scored,
		Top:     top,
		TopIDs:  make([]int, len(top)),
		Reasons: make(map[string][]model.Reason, len(top)),
	}
	for i, d := range top {
		ranking.TopIDs[i] = d.ID()
		if _, ok := ranking.Reasons[d.Key()]; !ok {
			ranking.Reasons[d.Key()] = d.Reasons
		}
	}
	return ranking
}

func scoreDestination(d model.Destination, focus session.FoodFocus) ScoredDestination {
	state := d.SpecialState.Resolve()
	tier := d.ProximityTier.Resolve()
	score := stateScores[state] + proximityScores[tier] + confidenceMultiplier*d.ConfidenceScore()

	reasons := make([]model.Reason, 0, 4)
	reasons = append(reasons,
		model.NewReason("state", stateMessages[state], weightState),
		model.NewReason("proximity", proximityMessages[tier], weightProximity),
	)

	if focus == session.FoodAny {
		reasons = append(reasons, model.NewReason("broad_mix",
			"Balanced across food and drink styles.", weightDestBroadMix))
		return ScoredDestination{Destination: d, Score: score, Reasons: reasons}
	}

	cfg := foodConfigs[focus]
	if cfg.venueTypes[strings.ToLower(d.Venue.VenueType)] {
		score += venueTypeBonus
		reasons = append(reasons, model.NewReason("venue_type_fit",
			fmt.Sprintf("Venue type fits a %s outing.", session.Words(focus)), weightVenueTypeFit))
	}
	if k := countKeywords(blob(d.Venue.Name, d.SpecialTitle()), cfg.keywords); k > 0 {
		score += float64(keywordBonus + k)
		reasons = append(reasons, model.NewReason("keyword_fit",
			fmt.Sprintf("Name or special matches %d %s keywords.", k, session.Words(focus)), weightKeywordFit))
	}
	return ScoredDestination{Destination: d, Score: score, Reasons: reasons}
}
