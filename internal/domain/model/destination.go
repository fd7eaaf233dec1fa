package model

// ProximityTier is a coarse distance bucket relative to the guest.
type ProximityTier string

// Proximity tiers.
const (
	ProximityWalkable    ProximityTier = "walkable"
	ProximityClose       ProximityTier = "close"
	ProximityDestination ProximityTier = "destination"
)

// Resolve returns the tier, treating unknown values as the farthest bucket.
func (t ProximityTier) Resolve() ProximityTier {
	switch t {
	case ProximityWalkable, ProximityClose, ProximityDestination:
		return t
	default:
		return ProximityDestination
	}
}

// SpecialState describes whether a destination's live special is running.
type SpecialState string

// Special states.
const (
	SpecialActiveNow    SpecialState = "active_now"
	SpecialStartingSoon SpecialState = "starting_soon"
	SpecialNone         SpecialState = "none"
)

// Resolve returns the state, treating unknown values as none.
func (s SpecialState) Resolve() SpecialState {
	switch s {
	case SpecialActiveNow, SpecialStartingSoon, SpecialNone:
		return s
	default:
		return SpecialNone
	}
}

// Confidence levels for live-special data.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

var confidenceScores = map[string]float64{
	ConfidenceHigh:   1.0,
	ConfidenceMedium: 0.7,
	ConfidenceLow:    0.4,
}

// unknownConfidenceScore applies to null, missing and unrecognized levels.
const unknownConfidenceScore = 0.5

// Venue is the place a destination refers to.
type Venue struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	VenueType    string `json:"venue_type,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
}

// Special is a destination's headline live special.
type Special struct {
	ID             ID      `json:"id,omitempty"`
	Title          string  `json:"title"`
	Type           string  `json:"type,omitempty"`
	Confidence     *string `json:"confidence"`
	StartsAt       string  `json:"starts_at,omitempty"`
	EndsAt         string  `json:"ends_at,omitempty"`
	TimeLabel      string  `json:"time_label,omitempty"`
	LastVerifiedAt string  `json:"last_verified_at,omitempty"`
}

// NextEvent is the next scheduled event at a destination.
type NextEvent struct {
	ID        ID     `json:"id,omitempty"`
	Title     string `json:"title"`
	StartDate string `json:"start_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
}

// Destination is a nearby venue with its live-special state.
type Destination struct {
	Venue         Venue         `json:"venue"`
	ProximityTier ProximityTier `json:"proximity_tier"`
	SpecialState  SpecialState  `json:"special_state"`
	TopSpecial    *Special      `json:"top_special,omitempty"`
	NextEvent     *NextEvent    `json:"next_event,omitempty"`
}

// Confidence returns the destination's top-special confidence level, or ""
// when there is no special or the level is null.
func (d Destination) Confidence() string {
	if d.TopSpecial == nil || d.TopSpecial.Confidence == nil {
		return ""
	}
	return *d.TopSpecial.Confidence
}

// ConfidenceScore maps the confidence level onto its numeric score.
func (d Destination) ConfidenceScore() float64 {
	if s, ok := confidenceScores[d.Confidence()]; ok {
		return s
	}
	return unknownConfidenceScore
}

// SpecialTitle returns the top special's title, or "".
func (d Destination) SpecialTitle() string {
	if d.TopSpecial == nil {
		return ""
	}
	return d.TopSpecial.Title
}
