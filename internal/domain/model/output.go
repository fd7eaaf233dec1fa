package model

import "github.com/okian/concierge/internal/domain/session"

// Reason explains a score or aggregate. Weight lies in (0,1] and expresses
// relative explanatory strength.
type Reason struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Weight  float64 `json:"weight"`
}

// NewReason builds a reason value.
func NewReason(code, message string, weight float64) Reason {
	return Reason{Code: code, Message: message, Weight: weight}
}

// Step kinds.
const (
	StepEvent       = "event"
	StepDestination = "destination"
)

// ItineraryStep is one ordered entry of the composed plan.
type ItineraryStep struct {
	Order      int    `json:"order"`
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	RefID      string `json:"ref_id"`
	Title      string `json:"title"`
	EtaMinutes int    `json:"eta_minutes"`
	Reason     string `json:"reason"`
}

// Recommendations holds the ranked ids and the itinerary.
type Recommendations struct {
	TopEventIDs       []string        `json:"top_event_ids"`
	TopDestinationIDs []int           `json:"top_destination_ids"`
	Itinerary         []ItineraryStep `json:"itinerary"`
}

// FederationAccess summarizes source-access grants.
type FederationAccess struct {
	TotalSources        int      `json:"total_sources"`
	OwnerSources        int      `json:"owner_sources"`
	SubscriptionSources int      `json:"subscription_sources"`
	GlobalSources       int      `json:"global_sources"`
	Reasons             []Reason `json:"reasons"`
}

// SignalFreshness summarizes destination signal confidence and staleness.
type SignalFreshness struct {
	DestinationCount    int      `json:"destination_count"`
	AverageConfidence   float64  `json:"average_confidence"`
	HighConfidenceCount int      `json:"high_confidence_count"`
	StaleCount          int      `json:"stale_count"`
	Reasons             []Reason `json:"reasons"`
}

// PersonaIntent reports the resolved persona and intent.
type PersonaIntent struct {
	Persona      session.Persona `json:"persona"`
	PersonaLabel string          `json:"persona_label"`
	Intent       session.Intent  `json:"intent"`
	Defaulted    []string        `json:"defaulted"`
	Reasons      []Reason        `json:"reasons"`
}

// ExperienceRouting reports the resolved view and mode.
type ExperienceRouting struct {
	View    session.View `json:"view"`
	Mode    session.Mode `json:"mode"`
	Reasons []Reason     `json:"reasons"`
}

// EventDiscovery reports the event ranking.
type EventDiscovery struct {
	Focus          session.DiscoveryFocus `json:"focus"`
	CandidateCount int                    `json:"candidate_count"`
	TopEventIDs    []string               `json:"top_event_ids"`
	ReasonsByEvent map[string][]Reason    `json:"reasons_by_event"`
}

// FoodDrinkCurator reports the destination ranking.
type FoodDrinkCurator struct {
	Focus                session.FoodFocus   `json:"focus"`
	CandidateCount       int                 `json:"candidate_count"`
	TopDestinationIDs    []int               `json:"top_destination_ids"`
	ReasonsByDestination map[string][]Reason `json:"reasons_by_destination"`
}

// PropertyClub summarizes live-special activity around the property.
type PropertyClub struct {
	LiveNowCount      int      `json:"live_now_count"`
	StartingSoonCount int      `json:"starting_soon_count"`
	WalkableCount     int      `json:"walkable_count"`
	Reasons           []Reason `json:"reasons"`
}

// ItineraryComposer reports how the itinerary was assembled.
type ItineraryComposer struct {
	Mode      session.Mode `json:"mode"`
	Strategy  string       `json:"strategy"`
	StepCount int          `json:"step_count"`
	Reasons   []Reason     `json:"reasons"`
}

// ArtDirection carries visual hints for the rendering layer.
type ArtDirection struct {
	Daypart string `json:"daypart"`
	Palette string `json:"palette"`
	Imagery string `json:"imagery"`
	Motion  string `json:"motion"`
}

// UXArchitecture carries layout hints for the rendering layer.
type UXArchitecture struct {
	View        session.View `json:"view"`
	ModuleOrder []string     `json:"module_order"`
	Density     string       `json:"density"`
}

// VoiceNarrative carries the generated copy.
type VoiceNarrative struct {
	Tone          string `json:"tone"`
	HeroTitle     string `json:"hero_title"`
	HeroSubtitle  string `json:"hero_subtitle"`
	BriefingTitle string `json:"briefing_title"`
}

// AgentOutputs holds one sub-object per engine component.
type AgentOutputs struct {
	FederationAccess  FederationAccess  `json:"federation_access"`
	SignalFreshness   SignalFreshness   `json:"signal_freshness"`
	PersonaIntent     PersonaIntent     `json:"persona_intent"`
	ExperienceRouting ExperienceRouting `json:"experience_routing"`
	EventDiscovery    EventDiscovery    `json:"event_discovery"`
	FoodDrinkCurator  FoodDrinkCurator  `json:"food_drink_curator"`
	PropertyClub      PropertyClub      `json:"property_club"`
	ItineraryComposer ItineraryComposer `json:"itinerary_composer"`
	ArtDirection      ArtDirection      `json:"art_direction"`
	UXArchitecture    UXArchitecture    `json:"ux_architecture"`
	VoiceNarrative    VoiceNarrative    `json:"voice_narrative"`
}

// Output is the snapshot produced by one orchestration call.
type Output struct {
	RequestID       string          `json:"request_id"`
	GeneratedAt     string          `json:"generated_at"`
	PortalSlug      string          `json:"portal_slug"`
	Session         session.Session `json:"session"`
	Recommendations Recommendations `json:"recommendations"`
	GuestExplainers []string        `json:"guest_explainers"`
	AgentOutputs    AgentOutputs    `json:"agent_outputs"`
}
