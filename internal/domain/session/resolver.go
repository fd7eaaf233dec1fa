package session

// Field names used when reporting which dimensions fell back to a default.
const (
	FieldPersona        = "persona"
	FieldIntent         = "intent"
	FieldView           = "view"
	FieldDiscoveryFocus = "discovery_focus"
	FieldFoodFocus      = "food_focus"
	FieldMode           = "mode"
)

// Raw carries the caller-supplied session fields. Any of them may be empty or
// hold values outside their enumeration.
type Raw struct {
	Persona        string `json:"persona,omitempty"`
	Intent         string `json:"intent,omitempty"`
	View           string `json:"view,omitempty"`
	DiscoveryFocus string `json:"discovery_focus,omitempty"`
	FoodFocus      string `json:"food_focus,omitempty"`
	Mode           string `json:"mode,omitempty"`
}

// Session is a fully resolved session. Every field is a member of its
// enumeration.
type Session struct {
	Persona        Persona        `json:"persona"`
	Intent         Intent         `json:"intent"`
	View           View           `json:"view"`
	DiscoveryFocus DiscoveryFocus `json:"discovery_focus"`
	FoodFocus      FoodFocus      `json:"food_focus"`
	Mode           Mode           `json:"mode"`
}

// Resolution is the resolved session plus the fields that were defaulted, in
// declaration order.
type Resolution struct {
	Session   Session
	Defaulted []string
}

// Resolve normalizes raw against the enumerations. Persona resolves first
// because the intent and view defaults are keyed by it.
func Resolve(raw Raw) Resolution {
	var defaulted []string
	miss := func(field string) { defaulted = append(defaulted, field) }

	persona, ok := ParsePersona(raw.Persona)
	if !ok {
		persona = DefaultPersona
		miss(FieldPersona)
	}
	intent, ok := ParseIntent(raw.Intent)
	if !ok {
		intent = persona.DefaultIntent()
		miss(FieldIntent)
	}
	view, ok := ParseView(raw.View)
	if !ok {
		view = persona.DefaultView()
		miss(FieldView)
	}
	discovery, ok := ParseDiscoveryFocus(raw.DiscoveryFocus)
	if !ok {
		discovery = DefaultDiscoveryFocus
		miss(FieldDiscoveryFocus)
	}
	food, ok := ParseFoodFocus(raw.FoodFocus)
	if !ok {
		food = DefaultFoodFocus
		miss(FieldFoodFocus)
	}
	mode, ok := ParseMode(raw.Mode)
	if !ok {
		mode = DefaultMode
		miss(FieldMode)
	}

	return Resolution{
		Session: Session{
			Persona:        persona,
			Intent:         intent,
			View:           view,
			DiscoveryFocus: discovery,
			FoodFocus:      food,
			Mode:           mode,
		},
		Defaulted: defaulted,
	}
}

// Valid reports whether every field of s is a member of its enumeration.
func (s Session) Valid() bool {
	_, p := ParsePersona(string(s.Persona))
	_, i := ParseIntent(string(s.Intent))
	_, v := ParseView(string(s.View))
	_, d := ParseDiscoveryFocus(string(s.DiscoveryFocus))
	_, f := ParseFoodFocus(string(s.FoodFocus))
	_, m := ParseMode(string(s.Mode))
	return p && i && v && d && f && m
}
