// Package session resolves raw guest session fields into closed enumerations.
//
// Every dimension is a string-backed type with a total parse function: a raw
// value that is not a member of the enumeration is reported as invalid and the
// caller substitutes the default. Resolution never fails.
package session

import "strings"

// Persona is the declared guest archetype.
type Persona string

// Persona values.
const (
	PersonaFirstTimeVisitor Persona = "first_time_visitor"
	PersonaBusinessTraveler Persona = "business_traveler"
	PersonaWeekendCouple    Persona = "weekend_couple"
	PersonaWellnessGuest    Persona = "wellness_guest"
	PersonaNightOutGroup    Persona = "night_out_group"
)

// Intent is the high-level goal driving content routing.
type Intent string

// Intent values.
const (
	IntentBusiness Intent = "business"
	IntentRomance  Intent = "romance"
	IntentNightOut Intent = "night_out"
	IntentWellness Intent = "wellness"
)

// View is the top-level UI routing mode.
type View string

// View values.
const (
	ViewOperate  View = "operate"
	ViewProperty View = "property"
	ViewExplore  View = "explore"
)

// DiscoveryFocus narrows event scoring.
type DiscoveryFocus string

// DiscoveryFocus values.
const (
	DiscoveryAny       DiscoveryFocus = "any"
	DiscoveryLiveMusic DiscoveryFocus = "live_music"
	DiscoveryComedy    DiscoveryFocus = "comedy"
	DiscoveryArts      DiscoveryFocus = "arts"
	DiscoveryNightlife DiscoveryFocus = "nightlife"
	DiscoverySports    DiscoveryFocus = "sports"
	DiscoveryFamily    DiscoveryFocus = "family"
)

// FoodFocus narrows destination scoring.
type FoodFocus string

// FoodFocus values.
const (
	FoodAny        FoodFocus = "any"
	FoodCocktails  FoodFocus = "cocktails"
	FoodWine       FoodFocus = "wine"
	FoodCraftBeer  FoodFocus = "craft_beer"
	FoodCoffee     FoodFocus = "coffee"
	FoodFineDining FoodFocus = "fine_dining"
	FoodLateBites  FoodFocus = "late_bites"
)

// Mode is the adventurousness dial controlling itinerary selection.
type Mode string

// Mode values.
const (
	ModeSafe        Mode = "safe"
	ModeElevated    Mode = "elevated"
	ModeAdventurous Mode = "adventurous"
)

// Defaults applied when a raw value is missing or invalid. Intent and view
// defaults depend on the resolved persona, see personaDefaults.
const (
	DefaultPersona        = PersonaFirstTimeVisitor
	DefaultDiscoveryFocus = DiscoveryAny
	DefaultFoodFocus      = FoodAny
	DefaultMode           = ModeSafe
)

// Personas lists every persona in declaration order.
var Personas = []Persona{
	PersonaFirstTimeVisitor,
	PersonaBusinessTraveler,
	PersonaWeekendCouple,
	PersonaWellnessGuest,
	PersonaNightOutGroup,
}

// Intents lists every intent.
var Intents = []Intent{IntentBusiness, IntentRomance, IntentNightOut, IntentWellness}

// Views lists every view.
var Views = []View{ViewOperate, ViewProperty, ViewExplore}

// DiscoveryFocuses lists every discovery focus.
var DiscoveryFocuses = []DiscoveryFocus{
	DiscoveryAny, DiscoveryLiveMusic, DiscoveryComedy, DiscoveryArts,
	DiscoveryNightlife, DiscoverySports, DiscoveryFamily,
}

// FoodFocuses lists every food focus.
var FoodFocuses = []FoodFocus{
	FoodAny, FoodCocktails, FoodWine, FoodCraftBeer, FoodCoffee, FoodFineDining, FoodLateBites,
}

// Modes lists every mode.
var Modes = []Mode{ModeSafe, ModeElevated, ModeAdventurous}

// personaProfile is the fixed per-persona lookup row.
type personaProfile struct {
	intent Intent
	view   View
	label  string
}

var personaDefaults = map[Persona]personaProfile{
	PersonaFirstTimeVisitor: {intent: IntentNightOut, view: ViewExplore, label: "First-Time Visitor"},
	PersonaBusinessTraveler: {intent: IntentBusiness, view: ViewOperate, label: "Business Traveler"},
	PersonaWeekendCouple:    {intent: IntentRomance, view: ViewProperty, label: "Weekend Couple"},
	PersonaWellnessGuest:    {intent: IntentWellness, view: ViewProperty, label: "Wellness Guest"},
	PersonaNightOutGroup:    {intent: IntentNightOut, view: ViewExplore, label: "Night-Out Group"},
}

// DefaultIntent returns the intent used when the caller omits one.
func (p Persona) DefaultIntent() Intent { return personaDefaults[p].intent }

// DefaultView returns the view used when the caller omits one.
func (p Persona) DefaultView() View { return personaDefaults[p].view }

// Label returns the guest-facing display label.
func (p Persona) Label() string { return personaDefaults[p].label }

// ParsePersona reports whether raw is a known persona.
func ParsePersona(raw string) (Persona, bool) { return parse(Personas, raw) }

// ParseIntent reports whether raw is a known intent.
func ParseIntent(raw string) (Intent, bool) { return parse(Intents, raw) }

// ParseView reports whether raw is a known view.
func ParseView(raw string) (View, bool) { return parse(Views, raw) }

// ParseDiscoveryFocus reports whether raw is a known discovery focus.
func ParseDiscoveryFocus(raw string) (DiscoveryFocus, bool) { return parse(DiscoveryFocuses, raw) }

// ParseFoodFocus reports whether raw is a known food focus.
func ParseFoodFocus(raw string) (FoodFocus, bool) { return parse(FoodFocuses, raw) }

// ParseMode reports whether raw is a known mode.
func ParseMode(raw string) (Mode, bool) { return parse(Modes, raw) }

// parse matches raw exactly against the members of an enumeration.
func parse[T ~string](members []T, raw string) (T, bool) {
	for _, m := range members {
		if string(m) == raw {
			return m, true
		}
	}
	var zero T
	return zero, false
}

// Words turns an enumeration tag into guest-facing words: "night_out" becomes
// "night out".
func Words[T ~string](tag T) string {
	return strings.ReplaceAll(string(tag), "_", " ")
}
