package concierge_test

import (
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/okian/concierge/internal/domain/concierge"
	"github.com/okian/concierge/internal/domain/itinerary"
	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

const scenario = `{
  "request_id": "req-1",
  "now": "2025-01-01T12:00:00Z",
  "portal": {"slug": "harbor-hotel"},
  "session": {"discovery_focus": "live_music", "mode": "safe"},
  "source_access": [{"source_id": 1, "access_kind": "owner"}],
  "sections": [{"events": [{"id": "1", "title": "Jazz Night", "category": "music", "start_date": "2025-01-01"}]}],
  "destinations": [{
    "venue": {"id": 7, "venue_type": "bar", "name": "Rooftop Bar"},
    "proximity_tier": "walkable",
    "special_state": "active_now",
    "top_special": {"title": "Happy hour", "confidence": "high", "last_verified_at": "2025-01-01T00:00:00Z"}
  }]
}`

func decode(raw string) model.Input {
	var in model.Input
	So(json.Unmarshal([]byte(raw), &in), ShouldBeNil)
	return in
}

func TestOrchestrate(t *testing.T) {
	engine := concierge.New()

	Convey("Given the jazz night scenario", t, func() {
		out := engine.Orchestrate(decode(scenario))

		Convey("Then the ranked ids and itinerary match", func() {
			So(out.Recommendations.TopEventIDs, ShouldResemble, []string{"1"})
			So(out.Recommendations.TopDestinationIDs, ShouldResemble, []int{7})

			steps := out.Recommendations.Itinerary
			So(steps, ShouldHaveLength, 2)
			So(steps[0].Kind, ShouldEqual, model.StepEvent)
			So(steps[0].ID, ShouldEqual, "event-1")
			So(steps[0].EtaMinutes, ShouldEqual, 0)
			So(steps[1].Kind, ShouldEqual, model.StepDestination)
			So(steps[1].ID, ShouldEqual, "dest-7")
			So(steps[1].EtaMinutes, ShouldEqual, 12)
		})

		Convey("Then the envelope echoes the request", func() {
			So(out.RequestID, ShouldEqual, "req-1")
			So(out.PortalSlug, ShouldEqual, "harbor-hotel")
			So(out.GeneratedAt, ShouldEqual, "2025-01-01T12:00:00.000Z")
			So(out.Session.Persona, ShouldEqual, session.PersonaFirstTimeVisitor)
			So(out.Session.DiscoveryFocus, ShouldEqual, session.DiscoveryLiveMusic)
		})

		Convey("Then every agent output is populated", func() {
			ao := out.AgentOutputs
			So(ao.FederationAccess.OwnerSources, ShouldEqual, 1)
			So(ao.SignalFreshness.HighConfidenceCount, ShouldEqual, 1)
			So(ao.SignalFreshness.StaleCount, ShouldEqual, 0)
			So(ao.PersonaIntent.Defaulted, ShouldResemble, []string{"persona", "intent", "view", "food_focus"})
			So(ao.ExperienceRouting.Mode, ShouldEqual, session.ModeSafe)
			So(ao.EventDiscovery.CandidateCount, ShouldEqual, 1)
			So(ao.FoodDrinkCurator.CandidateCount, ShouldEqual, 1)
			So(ao.PropertyClub.LiveNowCount, ShouldEqual, 1)
			So(ao.PropertyClub.WalkableCount, ShouldEqual, 1)
			So(ao.ItineraryComposer.StepCount, ShouldEqual, 2)
			So(ao.ItineraryComposer.Strategy, ShouldEqual, "ranked_proximity")
			So(ao.ArtDirection.Daypart, ShouldEqual, "afternoon")
			So(ao.VoiceNarrative.HeroTitle, ShouldNotBeEmpty)
		})

		Convey("Then explainers mention the discovery focus and confidence", func() {
			So(out.GuestExplainers, ShouldHaveLength, 3)
			So(out.GuestExplainers[1], ShouldEqual, "Event picks lean toward live music.")
			So(out.GuestExplainers[2], ShouldStartWith, "1 live specials")
		})
	})

	Convey("Given the same input twice", t, func() {
		in := decode(scenario)
		first, err := json.Marshal(engine.Orchestrate(in))
		So(err, ShouldBeNil)
		second, err := json.Marshal(engine.Orchestrate(in))
		So(err, ShouldBeNil)

		Convey("Then the serialized outputs are byte-identical", func() {
			So(string(second), ShouldEqual, string(first))
		})
	})

	Convey("Given an input with only live destinations", t, func() {
		in := decode(scenario)
		in.LiveDestinations, in.Destinations = in.Destinations, nil
		out := engine.Orchestrate(in)

		Convey("Then the live list is used", func() {
			So(out.Recommendations.TopDestinationIDs, ShouldResemble, []int{7})
		})
	})

	Convey("Given an empty input", t, func() {
		out := engine.Orchestrate(model.Input{})

		Convey("Then the output is empty but fully shaped", func() {
			So(out.Recommendations.TopEventIDs, ShouldBeEmpty)
			So(out.Recommendations.TopDestinationIDs, ShouldBeEmpty)
			So(out.Recommendations.Itinerary, ShouldBeEmpty)
			So(out.Session.Valid(), ShouldBeTrue)
			So(out.AgentOutputs.PersonaIntent.Defaulted, ShouldHaveLength, 6)
		})

		Convey("Then empty lists serialize as arrays", func() {
			b, err := json.Marshal(out)
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"top_event_ids":[]`)
			So(string(b), ShouldContainSubstring, `"itinerary":[]`)
		})
	})
}

func TestCapInvariants(t *testing.T) {
	Convey("Given a large feed and destination set", t, func() {
		in := decode(scenario)
		var events []model.FeedEvent
		for i := 0; i < 40; i++ {
			events = append(events, model.FeedEvent{ID: model.ID(fmt.Sprint(i)), Title: "Open mic"})
		}
		var dests []model.Destination
		for i := 0; i < 30; i++ {
			dests = append(dests, model.Destination{Venue: model.Venue{ID: i, VenueType: "bar"}, ProximityTier: "close"})
		}
		in.Sections = []model.FeedSection{{Events: events}}
		in.Destinations = dests

		Convey("Then every mode respects the caps", func() {
			for _, m := range session.Modes {
				in.Session.Mode = string(m)
				out := concierge.New().Orchestrate(in)
				So(len(out.Recommendations.TopEventIDs), ShouldBeLessThanOrEqualTo, 12)
				So(len(out.Recommendations.TopDestinationIDs), ShouldBeLessThanOrEqualTo, 14)
				So(len(out.Recommendations.Itinerary), ShouldBeLessThanOrEqualTo, 4)
			}
		})

		Convey("Then configured limits narrow the lists", func() {
			engine := concierge.New(concierge.WithEventLimit(5), concierge.WithDestinationLimit(3))
			out := engine.Orchestrate(in)
			So(engine.EventLimit(), ShouldEqual, 5)
			So(out.Recommendations.TopEventIDs, ShouldHaveLength, 5)
			So(out.Recommendations.TopDestinationIDs, ShouldHaveLength, 3)
		})
	})
}

func TestModeBranching(t *testing.T) {
	Convey("Given premium venues ranked outside the top three", t, func() {
		in := decode(scenario)
		in.Sections = nil
		in.Destinations = []model.Destination{
			{Venue: model.Venue{ID: 1, VenueType: "cafe"}, ProximityTier: "walkable", SpecialState: "active_now"},
			{Venue: model.Venue{ID: 2, VenueType: "cafe"}, ProximityTier: "walkable", SpecialState: "active_now"},
			{Venue: model.Venue{ID: 3, VenueType: "cafe"}, ProximityTier: "walkable", SpecialState: "active_now"},
			{Venue: model.Venue{ID: 4, VenueType: "restaurant"}, ProximityTier: "close", SpecialState: "none"},
		}
		engine := concierge.New()

		in.Session.Mode = "safe"
		safe := engine.Orchestrate(in)
		in.Session.Mode = "elevated"
		elevated := engine.Orchestrate(in)

		Convey("Then safe and elevated produce different destination steps", func() {
			So(itinerary.StepIDs(safe.Recommendations.Itinerary), ShouldResemble, []string{"dest-1", "dest-2", "dest-3"})
			So(itinerary.StepIDs(elevated.Recommendations.Itinerary), ShouldResemble, []string{"dest-4", "dest-1", "dest-2"})
		})
	})
}
