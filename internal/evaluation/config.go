package evaluation

import (
	"time"

	"github.com/okian/concierge/internal/domain/model"
)

// Config holds configuration for an evaluation run
type Config struct {
	ScenariosFile    string        // YAML file with the scenarios
	Workers          int           // Number of concurrent workers
	Timeout          time.Duration // Overall run timeout
	EventLimit       int           // Engine event cap (0 keeps the default)
	DestinationLimit int           // Engine destination cap (0 keeps the default)
	OutputFile       string        // Optional file for the produced outputs
	LogFile          string        // Optional log file
	Verbose          bool          // Log every scenario result
}

// Expectation lists the optional checks for one scenario. Nil fields are not
// checked; an explicit empty list expects an empty result.
type Expectation struct {
	TopEventIDs       []string          `json:"top_event_ids"`
	TopDestinationIDs []int             `json:"top_destination_ids"`
	ItineraryIDs      []string          `json:"itinerary_ids"`
	Session           map[string]string `json:"session"`
}

// Scenario is one named engine input with its expectations.
type Scenario struct {
	Name   string      `json:"name"`
	Input  model.Input `json:"input"`
	Expect Expectation `json:"expect"`
}

// Result is the outcome of evaluating one scenario.
type Result struct {
	Name          string       `json:"name"`
	Deterministic bool         `json:"deterministic"`
	Mismatches    []string     `json:"mismatches"`
	Output        model.Output `json:"output"`
}

// Passed reports whether the scenario was deterministic and met every
// expectation.
func (r Result) Passed() bool {
	return r.Deterministic && len(r.Mismatches) == 0
}

// Stats holds run statistics
type Stats struct {
	Scenarios        int
	Passed           int
	Failed           int
	Mismatches       int
	Nondeterministic int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
