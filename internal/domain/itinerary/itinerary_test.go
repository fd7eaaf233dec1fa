package itinerary_test

import (
	"testing"
	"time"

	"github.com/okian/concierge/internal/domain/itinerary"
	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/scoring"
	"github.com/okian/concierge/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func high() *string { c := "high"; return &c }

func dest(id int, venueType string, tier model.ProximityTier, state model.SpecialState) model.Destination {
	return model.Destination{
		Venue:         model.Venue{ID: id, Name: venueType, VenueType: venueType},
		ProximityTier: tier,
		SpecialState:  state,
		TopSpecial:    &model.Special{Confidence: high()},
	}
}

func compose(events []model.FeedEvent, dests []model.Destination, mode session.Mode) itinerary.Plan {
	s := scoring.New()
	er := s.RankEvents([]model.FeedSection{{Events: events}}, session.DiscoveryAny, now)
	dr := s.RankDestinations(dests, session.FoodAny)
	return itinerary.Compose(er, dr, mode)
}

func TestCompose(t *testing.T) {
	// Three walkable cafes with live specials dominate the ranking; the
	// premium rooftop and the far gallery trail.
	dests := []model.Destination{
		dest(1, "cafe", model.ProximityWalkable, model.SpecialActiveNow),
		dest(2, "cafe", model.ProximityWalkable, model.SpecialActiveNow),
		dest(3, "cafe", model.ProximityWalkable, model.SpecialActiveNow),
		dest(4, "rooftop", model.ProximityDestination, model.SpecialNone),
		dest(5, "gallery", model.ProximityClose, model.SpecialNone),
	}
	events := []model.FeedEvent{{ID: "1", Title: "Jazz Night"}, {ID: "2", Title: "Comedy"}}

	Convey("Given safe mode", t, func() {
		plan := compose(events, dests, session.ModeSafe)

		Convey("Then the lead event comes first with no travel time", func() {
			So(plan.Steps[0].Kind, ShouldEqual, model.StepEvent)
			So(plan.Steps[0].ID, ShouldEqual, "event-1")
			So(plan.Steps[0].EtaMinutes, ShouldEqual, 0)
			So(plan.Steps[0].Reason, ShouldEqual, "Lead event selected from focus-ranked stack.")
		})

		Convey("Then the top three ranked destinations follow", func() {
			So(itinerary.StepIDs(plan.Steps), ShouldResemble, []string{"event-1", "dest-1", "dest-2", "dest-3"})
			So(plan.Steps[1].EtaMinutes, ShouldEqual, 12)
			So(plan.Steps[1].Reason, ShouldEqual, "Chosen for reliable timing and proximity.")
			So(plan.Strategy, ShouldEqual, "ranked_proximity")
		})

		Convey("Then steps are numbered in order", func() {
			for i, s := range plan.Steps {
				So(s.Order, ShouldEqual, i+1)
			}
		})
	})

	Convey("Given elevated mode", t, func() {
		plan := compose(events, dests, session.ModeElevated)

		Convey("Then premium venues are pulled ahead of the ranked list", func() {
			So(itinerary.StepIDs(plan.Steps), ShouldResemble, []string{"event-1", "dest-4", "dest-1", "dest-2"})
			So(plan.Steps[1].EtaMinutes, ShouldEqual, 38)
			So(plan.Steps[1].Reason, ShouldEqual, "Chosen for premium room quality and signature atmosphere.")
		})

		Convey("Then it differs from safe mode for the same input", func() {
			safe := compose(events, dests, session.ModeSafe)
			So(itinerary.StepIDs(plan.Steps), ShouldNotResemble, itinerary.StepIDs(safe.Steps))
		})
	})

	Convey("Given adventurous mode", t, func() {
		plan := compose(events, dests, session.ModeAdventurous)

		Convey("Then non-walkable venues lead in score order", func() {
			So(itinerary.StepIDs(plan.Steps), ShouldResemble, []string{"event-1", "dest-5", "dest-4", "dest-1"})
			So(plan.Steps[1].EtaMinutes, ShouldEqual, 24)
			So(plan.Steps[1].Reason, ShouldEqual, "Chosen for higher-energy exploration beyond immediate radius.")
		})
	})

	Convey("Given elevated mode with a premium venue already ranked on top", t, func() {
		plan := compose(nil, []model.Destination{
			dest(7, "bar", model.ProximityWalkable, model.SpecialActiveNow),
			dest(8, "cafe", model.ProximityClose, model.SpecialNone),
		}, session.ModeElevated)

		Convey("Then the duplicate from the concatenation is skipped", func() {
			So(itinerary.StepIDs(plan.Steps), ShouldResemble, []string{"dest-7", "dest-8"})
		})
	})

	Convey("Given a single destination in elevated mode", t, func() {
		plan := compose(events, []model.Destination{dest(9, "bar", model.ProximityClose, model.SpecialNone)}, session.ModeElevated)

		Convey("Then fewer than three destination steps are produced", func() {
			So(plan.Steps, ShouldHaveLength, 2)
		})
	})

	Convey("Given no events and no destinations", t, func() {
		plan := compose(nil, nil, session.ModeSafe)

		Convey("Then the itinerary is empty", func() {
			So(plan.Steps, ShouldBeEmpty)
			So(plan.Reasons, ShouldHaveLength, 2)
		})
	})

	Convey("Given any mode", t, func() {
		Convey("Then the itinerary never exceeds four steps", func() {
			for _, m := range session.Modes {
				plan := compose(events, dests, m)
				So(len(plan.Steps), ShouldBeLessThanOrEqualTo, 4)
			}
		})
	})
}
