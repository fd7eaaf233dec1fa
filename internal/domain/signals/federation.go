// Package signals aggregates source-access grants and destination signal
// quality into counters for the explainability trace.
package signals

import (
	"fmt"

	"github.com/okian/concierge/internal/domain/model"
)

// Federation reason weights.
const (
	weightAccessibleSources = 0.95
	weightAccessMix         = 0.75
)

// Federation counts grants by access kind. Grants with an unknown kind only
// count toward the total.
func Federation(grants []model.SourceAccess) model.FederationAccess {
	out := model.FederationAccess{TotalSources: len(grants)}
	for _, g := range grants {
		switch g.AccessKind {
		case model.AccessOwner:
			out.OwnerSources++
		case model.AccessSubscription:
			out.SubscriptionSources++
		case model.AccessGlobal:
			out.GlobalSources++
		}
	}
	out.Reasons = []model.Reason{
		model.NewReason("accessible_sources",
			fmt.Sprintf("%d content sources are accessible to this portal.", out.TotalSources),
			weightAccessibleSources),
		model.NewReason("access_mix",
			fmt.Sprintf("Source mix: %d owned, %d subscribed, %d global.",
				out.OwnerSources, out.SubscriptionSources, out.GlobalSources),
			weightAccessMix),
	}
	return out
}
