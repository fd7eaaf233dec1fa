package signals

import (
	"fmt"
	"math"
	"time"

	"github.com/okian/concierge/internal/domain/model"
)

// Freshness reason weights.
const (
	weightConfidenceMix = 0.8
	weightFreshAll      = 0.88
	weightFreshStale    = 0.51
)

// staleAfterMinutes is the verification age beyond which a special is stale.
const staleAfterMinutes = 24 * 60

// verifiedLayouts are tried in order when parsing last_verified_at.
var verifiedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Freshness averages top-special confidence and counts high-confidence and
// stale destinations relative to now.
func Freshness(destinations []model.Destination, now time.Time) model.SignalFreshness {
	out := model.SignalFreshness{DestinationCount: len(destinations)}

	var total float64
	for _, d := range destinations {
		total += d.ConfidenceScore()
		if d.Confidence() == model.ConfidenceHigh {
			out.HighConfidenceCount++
		}
		if d.TopSpecial != nil && AgeMinutes(d.TopSpecial.LastVerifiedAt, now) > staleAfterMinutes {
			out.StaleCount++
		}
	}
	if len(destinations) > 0 {
		out.AverageConfidence = round2(total / float64(len(destinations)))
	}

	staleness := model.NewReason("freshness_window",
		"Every verified special was confirmed within the last 24 hours.", weightFreshAll)
	if out.StaleCount > 0 {
		staleness = model.NewReason("freshness_window",
			fmt.Sprintf("%d destinations have specials last verified more than 24 hours ago.", out.StaleCount),
			weightFreshStale)
	}
	out.Reasons = []model.Reason{
		model.NewReason("confidence_mix",
			fmt.Sprintf("Average special confidence is %.2f across %d destinations, %d rated high.",
				out.AverageConfidence, out.DestinationCount, out.HighConfidenceCount),
			weightConfidenceMix),
		staleness,
	}
	return out
}

// AgeMinutes returns whole minutes between the verification timestamp and
// now. Unparsable or missing timestamps and timestamps in the future yield 0,
// which never counts as stale.
func AgeMinutes(verifiedAt string, now time.Time) int {
	if verifiedAt == "" {
		return 0
	}
	for _, layout := range verifiedLayouts {
		t, err := time.Parse(layout, verifiedAt)
		if err != nil {
			continue
		}
		age := int(now.Sub(t) / time.Minute)
		if age < 0 {
			return 0
		}
		return age
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
