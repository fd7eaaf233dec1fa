package evaluation

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/goccy/go-json"
	"github.com/okian/concierge/internal/domain/model"
)

// verifyExpectations compares an output against the scenario expectations and
// returns one message per mismatch.
func verifyExpectations(expect Expectation, out model.Output) []string {
	var mismatches []string

	if expect.TopEventIDs != nil && !slices.Equal(expect.TopEventIDs, out.Recommendations.TopEventIDs) {
		mismatches = append(mismatches, fmt.Sprintf("top_event_ids: want %v, got %v",
			expect.TopEventIDs, out.Recommendations.TopEventIDs))
	}

	if expect.TopDestinationIDs != nil && !slices.Equal(expect.TopDestinationIDs, out.Recommendations.TopDestinationIDs) {
		mismatches = append(mismatches, fmt.Sprintf("top_destination_ids: want %v, got %v",
			expect.TopDestinationIDs, out.Recommendations.TopDestinationIDs))
	}

	if expect.ItineraryIDs != nil {
		got := make([]string, 0, len(out.Recommendations.Itinerary))
		for _, step := range out.Recommendations.Itinerary {
			got = append(got, step.ID)
		}
		if !slices.Equal(expect.ItineraryIDs, got) {
			mismatches = append(mismatches, fmt.Sprintf("itinerary_ids: want %v, got %v",
				expect.ItineraryIDs, got))
		}
	}

	if len(expect.Session) > 0 {
		mismatches = append(mismatches, verifySession(expect.Session, out)...)
	}

	return mismatches
}

// verifySession checks the expected session fields by their JSON names.
func verifySession(expect map[string]string, out model.Output) []string {
	raw, err := json.Marshal(out.Session)
	if err != nil {
		return []string{fmt.Sprintf("session: %v", err)}
	}
	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		return []string{fmt.Sprintf("session: %v", err)}
	}

	keys := make([]string, 0, len(expect))
	for k := range expect {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var mismatches []string
	for _, k := range keys {
		actual, ok := got[k]
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("session.%s: unknown field", k))
			continue
		}
		if actual != expect[k] {
			mismatches = append(mismatches, fmt.Sprintf("session.%s: want %q, got %q", k, expect[k], actual))
		}
	}
	return mismatches
}

// sameBytes reports whether two outputs serialize identically.
func sameBytes(a, b model.Output) (bool, error) {
	first, err := json.Marshal(a)
	if err != nil {
		return false, err
	}
	second, err := json.Marshal(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(first, second), nil
}
