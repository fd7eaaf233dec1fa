package scoring

import (
	"fmt"
	"sort"
	"time"

	"github.com/okian/concierge/internal/domain/dedupe"
	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/session"
)

// Event score components.
const (
	eventBaseScore     = 1
	focusKeywordBonus  = 8
	complimentaryBonus = 1
	todayBonus         = 2
)

// Event reason weights.
const (
	weightFocusKeyword   = 0.9
	weightEventBroadMix  = 0.55
	weightComplimentary  = 0.45
	weightTodayRelevance = 0.7
)

// ScoredEvent is a feed event with its score and reasons.
type ScoredEvent struct {
	ID      string
	Event   model.FeedEvent
	Score   float64
	Reasons []model.Reason
}

// EventRanking is the result of ranking the feed.
type EventRanking struct {
	// CandidateCount is the number of events left after dedupe.
	CandidateCount int
	// Duplicates counts events dropped for a repeated or empty id.
	Duplicates int
	Top        []ScoredEvent
	TopIDs     []string
	Reasons    map[string][]model.Reason
}

// Flatten walks every section's visible events in order and keeps the first
// occurrence of each normalized id. Events with an empty id are dropped. The
// second return value is the number of dropped events.
func Flatten(sections []model.FeedSection) ([]model.FeedEvent, int) {
	total := 0
	for _, s := range sections {
		total += len(s.Visible())
	}
	seen := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(total))
	out := make([]model.FeedEvent, 0, total)
	for _, s := range sections {
		for _, e := range s.Visible() {
			id := e.ID.Normalize()
			if seen.SeenAndRecord(id) {
				continue
			}
			e.ID = model.ID(id)
			out = append(out, e)
		}
	}
	return out, total - len(out)
}

// RankEvents deduplicates the feed, scores every event against focus and now,
// and returns the top events in descending score order. Ties keep feed order.
func (s *Scorer) RankEvents(sections []model.FeedSection, focus session.DiscoveryFocus, now time.Time) EventRanking {
	events, dropped := Flatten(sections)
	today := now.UTC().Format(time.DateOnly)

	scored := make([]ScoredEvent, len(events))
	for i, e := range events {
		scored[i] = scoreEvent(e, focus, today)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored[:min(len(scored), s.eventLimit)]
	ranking := EventRanking{
		CandidateCount: len(events),
		Duplicates:     dropped,
		Top:            top,
		TopIDs:         make([]string, len(top)),
		Reasons:        make(map[string][]model.Reason, len(top)),
	}
	for i, e := range top {
		ranking.TopIDs[i] = e.ID
		ranking.Reasons[e.ID] = e.Reasons
	}
	return ranking
}

func scoreEvent(e model.FeedEvent, focus session.DiscoveryFocus, today string) ScoredEvent {
	score := float64(eventBaseScore)
	reasons := make([]model.Reason, 0, 3)

	if focus == session.DiscoveryAny {
		reasons = append(reasons, model.NewReason("broad_mix",
			"Ranked across every category for a broad mix.", weightEventBroadMix))
	} else {
		text := blob(e.Title, e.Category, e.Subcategory, e.VenueName)
		if k := countKeywords(text, discoveryKeywords[focus]); k > 0 {
			score += float64(focusKeywordBonus + k)
			reasons = append(reasons, model.NewReason("focus_keyword",
				fmt.Sprintf("Matches %d %s keywords.", k, session.Words(focus)), weightFocusKeyword))
		}
	}
	if e.IsFree {
		score += complimentaryBonus
		reasons = append(reasons, model.NewReason("complimentary",
			"Free to attend.", weightComplimentary))
	}
	if len(e.StartDate) >= len(time.DateOnly) && e.StartDate[:len(time.DateOnly)] == today {
		score += todayBonus
		reasons = append(reasons, model.NewReason("today_relevance",
			"Happening today.", weightTodayRelevance))
	}

	return ScoredEvent{ID: string(e.ID), Event: e, Score: score, Reasons: reasons}
}
