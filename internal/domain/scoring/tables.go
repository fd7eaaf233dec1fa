package scoring

import (
	"strings"

	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/session"
)

// discoveryKeywords lists the keywords that mark an event as matching a
// discovery focus. DiscoveryAny has no entry.
var discoveryKeywords = map[session.DiscoveryFocus][]string{
	session.DiscoveryLiveMusic: {"music", "concert", "band", "dj", "jazz", "showcase", "open mic"},
	session.DiscoveryComedy:    {"comedy", "comedian", "stand-up", "standup", "improv"},
	session.DiscoveryArts:      {"art", "gallery", "exhibit", "museum", "theater", "theatre"},
	session.DiscoveryNightlife: {"party", "dj", "club", "dance", "late night"},
	session.DiscoverySports:    {"game", "match", "sports", "watch party", "tailgate"},
	session.DiscoveryFamily:    {"family", "kids", "children", "all ages", "workshop"},
}

// foodConfig is the fixed per-focus fit table for destinations.
type foodConfig struct {
	venueTypes map[string]bool
	keywords   []string
}

func venueTypes(types ...string) map[string]bool {
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

var foodConfigs = map[session.FoodFocus]foodConfig{
	session.FoodCocktails: {
		venueTypes: venueTypes("bar", "rooftop", "distillery", "nightclub"),
		keywords:   []string{"cocktail", "martini", "speakeasy", "mixology", "aperitivo"},
	},
	session.FoodWine: {
		venueTypes: venueTypes("wine_bar", "winery", "restaurant", "bar"),
		keywords:   []string{"wine", "vino", "sommelier", "cellar", "pairing"},
	},
	session.FoodCraftBeer: {
		venueTypes: venueTypes("brewery", "brewpub", "beer_garden", "bar"),
		keywords:   []string{"beer", "brew", "ipa", "taproom", "lager"},
	},
	session.FoodCoffee: {
		venueTypes: venueTypes("cafe", "coffee_shop", "bakery"),
		keywords:   []string{"coffee", "espresso", "latte", "roast", "pastry"},
	},
	session.FoodFineDining: {
		venueTypes: venueTypes("restaurant", "steakhouse", "chef_table"),
		keywords:   []string{"tasting", "chef", "prix fixe", "omakase", "michelin"},
	},
	session.FoodLateBites: {
		venueTypes: venueTypes("restaurant", "diner", "food_hall", "bar"),
		keywords:   []string{"late", "midnight", "kitchen", "slice", "taco"},
	},
}

var stateScores = map[model.SpecialState]float64{
	model.SpecialActiveNow:    8,
	model.SpecialStartingSoon: 5,
	model.SpecialNone:         2,
}

var proximityScores = map[model.ProximityTier]float64{
	model.ProximityWalkable:    5,
	model.ProximityClose:       3,
	model.ProximityDestination: 1,
}

var stateMessages = map[model.SpecialState]string{
	model.SpecialActiveNow:    "Live special running right now.",
	model.SpecialStartingSoon: "Live special starting soon.",
	model.SpecialNone:         "No live special at the moment.",
}

var proximityMessages = map[model.ProximityTier]string{
	model.ProximityWalkable:    "Walkable from the property.",
	model.ProximityClose:       "A short ride away.",
	model.ProximityDestination: "Worth the trip across town.",
}

// blob joins parts into one lower-cased search string.
func blob(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}

// countKeywords returns how many distinct keywords occur in text.
func countKeywords(text string, keywords []string) int {
	k := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			k++
		}
	}
	return k
}
