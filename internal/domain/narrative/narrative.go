// Package narrative generates the deterministic guest-facing copy and the
// presentation hints that accompany a recommendation set.
package narrative

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/session"
)

// Dayparts.
const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
	LateNight = "late_night"
)

// Daypart buckets the hour of now, in now's own location.
func Daypart(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 6 && h < 11:
		return Morning
	case h >= 11 && h < 17:
		return Afternoon
	case h >= 17 && h < 23:
		return Evening
	default:
		return LateNight
	}
}

type daypartStyle struct {
	heroTitle string
	palette   string
	imagery   string
}

var daypartStyles = map[string]daypartStyle{
	Morning:   {heroTitle: "Your morning, curated", palette: "sunrise_linen", imagery: "soft daylight, open terraces"},
	Afternoon: {heroTitle: "This afternoon around you", palette: "bright_citrus", imagery: "street-level energy, shaded patios"},
	Evening:   {heroTitle: "Tonight's concierge picks", palette: "amber_dusk", imagery: "warm interiors, candlelit tables"},
	LateNight: {heroTitle: "After hours, handpicked", palette: "midnight_neon", imagery: "low light, glowing signage"},
}

var modeStyles = map[session.Mode]struct {
	motion string
	tone   string
	hook   string
}{
	session.ModeSafe:        {motion: "calm", tone: "reassuring", hook: "close, reliable picks"},
	session.ModeElevated:    {motion: "polished", tone: "refined", hook: "signature rooms worth dressing up for"},
	session.ModeAdventurous: {motion: "kinetic", tone: "playful", hook: "a wider radius and a bit more energy"},
}

var intentPhrases = map[session.Intent]string{
	session.IntentBusiness: "keeping business plans on schedule",
	session.IntentRomance:  "an unhurried evening for two",
	session.IntentNightOut: "a night out worth remembering",
	session.IntentWellness: "restorative, low-key time",
}

var viewLayouts = map[session.View]struct {
	modules []string
	density string
}{
	session.ViewOperate:  {modules: []string{"itinerary", "events", "destinations"}, density: "compact"},
	session.ViewProperty: {modules: []string{"destinations", "itinerary", "events"}, density: "comfortable"},
	session.ViewExplore:  {modules: []string{"events", "destinations", "itinerary"}, density: "spacious"},
}

// Presentation is everything the generator produces.
type Presentation struct {
	GuestExplainers []string
	ArtDirection    model.ArtDirection
	UXArchitecture  model.UXArchitecture
	VoiceNarrative  model.VoiceNarrative
}

// Generate derives the copy and hints from the resolved session, now and the
// freshness aggregate.
func Generate(s session.Session, now time.Time, freshness model.SignalFreshness) Presentation {
	daypart := Daypart(now)
	style := daypartStyles[daypart]
	ms := modeStyles[s.Mode]
	layout := viewLayouts[s.View]

	return Presentation{
		GuestExplainers: Explainers(s, freshness),
		ArtDirection: model.ArtDirection{
			Daypart: daypart,
			Palette: style.palette,
			Imagery: style.imagery,
			Motion:  ms.motion,
		},
		UXArchitecture: model.UXArchitecture{
			View:        s.View,
			ModuleOrder: append([]string(nil), layout.modules...),
			Density:     layout.density,
		},
		VoiceNarrative: model.VoiceNarrative{
			Tone:          ms.tone,
			HeroTitle:     style.heroTitle,
			HeroSubtitle:  fmt.Sprintf("Built around %s, with %s.", intentPhrases[s.Intent], ms.hook),
			BriefingTitle: s.Persona.Label() + " Briefing",
		},
	}
}

// Explainers returns the ordered guest explainer sentences.
func Explainers(s session.Session, freshness model.SignalFreshness) []string {
	out := make([]string, 0, 3)
	out = append(out, fmt.Sprintf("Tuned for a %s focused on %s.",
		strings.ToLower(s.Persona.Label()), intentPhrases[s.Intent]))

	switch {
	case s.FoodFocus != session.FoodAny:
		out = append(out, fmt.Sprintf("Food and drink picks lean toward %s.", session.Words(s.FoodFocus)))
	case s.DiscoveryFocus != session.DiscoveryAny:
		out = append(out, fmt.Sprintf("Event picks lean toward %s.", session.Words(s.DiscoveryFocus)))
	default:
		out = append(out, "Picks are balanced by availability right now.")
	}

	if freshness.HighConfidenceCount > 0 {
		out = append(out, fmt.Sprintf("%d live specials are verified with high confidence.", freshness.HighConfidenceCount))
	} else {
		out = append(out, "Live specials are still being confirmed, so check details before heading out.")
	}
	return out
}
