package narrative_test

import (
	"testing"
	"time"

	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/internal/domain/narrative"
	"github.com/okian/concierge/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

func at(hour int) time.Time {
	return time.Date(2025, 1, 1, hour, 30, 0, 0, time.UTC)
}

func TestDaypart(t *testing.T) {
	Convey("Given hours across the day", t, func() {
		So(narrative.Daypart(at(5)), ShouldEqual, narrative.LateNight)
		So(narrative.Daypart(at(6)), ShouldEqual, narrative.Morning)
		So(narrative.Daypart(at(10)), ShouldEqual, narrative.Morning)
		So(narrative.Daypart(at(11)), ShouldEqual, narrative.Afternoon)
		So(narrative.Daypart(at(16)), ShouldEqual, narrative.Afternoon)
		So(narrative.Daypart(at(17)), ShouldEqual, narrative.Evening)
		So(narrative.Daypart(at(22)), ShouldEqual, narrative.Evening)
		So(narrative.Daypart(at(23)), ShouldEqual, narrative.LateNight)
		So(narrative.Daypart(at(0)), ShouldEqual, narrative.LateNight)
	})

	Convey("Given a time in a non-UTC location", t, func() {
		loc := time.FixedZone("UTC-5", -5*60*60)
		now := time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC).In(loc)

		Convey("Then the local hour is bucketed", func() {
			So(narrative.Daypart(now), ShouldEqual, narrative.Evening)
		})
	})
}

func TestExplainers(t *testing.T) {
	base := session.Resolve(session.Raw{Persona: "business_traveler"}).Session

	Convey("Given no focus and no high-confidence specials", t, func() {
		out := narrative.Explainers(base, model.SignalFreshness{})

		Convey("Then the generic sentences are used", func() {
			So(out, ShouldHaveLength, 3)
			So(out[0], ShouldEqual, "Tuned for a business traveler focused on keeping business plans on schedule.")
			So(out[1], ShouldEqual, "Picks are balanced by availability right now.")
			So(out[2], ShouldContainSubstring, "still being confirmed")
		})
	})

	Convey("Given a discovery focus and high-confidence specials", t, func() {
		s := base
		s.DiscoveryFocus = session.DiscoveryLiveMusic
		out := narrative.Explainers(s, model.SignalFreshness{HighConfidenceCount: 2})

		Convey("Then the discovery sentence and the confidence count appear", func() {
			So(out[1], ShouldEqual, "Event picks lean toward live music.")
			So(out[2], ShouldEqual, "2 live specials are verified with high confidence.")
		})
	})

	Convey("Given both a food and a discovery focus", t, func() {
		s := base
		s.DiscoveryFocus = session.DiscoveryComedy
		s.FoodFocus = session.FoodCraftBeer
		out := narrative.Explainers(s, model.SignalFreshness{})

		Convey("Then the food focus takes precedence", func() {
			So(out[1], ShouldEqual, "Food and drink picks lean toward craft beer.")
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given a weekend couple in elevated mode in the evening", t, func() {
		s := session.Resolve(session.Raw{Persona: "weekend_couple", Mode: "elevated"}).Session
		p := narrative.Generate(s, at(19), model.SignalFreshness{})

		Convey("Then the hints follow the lookup tables", func() {
			So(p.VoiceNarrative.HeroTitle, ShouldEqual, "Tonight's concierge picks")
			So(p.VoiceNarrative.BriefingTitle, ShouldEqual, "Weekend Couple Briefing")
			So(p.VoiceNarrative.Tone, ShouldEqual, "refined")
			So(p.ArtDirection.Daypart, ShouldEqual, narrative.Evening)
			So(p.ArtDirection.Motion, ShouldEqual, "polished")
			So(p.UXArchitecture.View, ShouldEqual, session.ViewProperty)
			So(p.UXArchitecture.ModuleOrder, ShouldResemble, []string{"destinations", "itinerary", "events"})
		})

		Convey("Then generating twice gives the same result", func() {
			So(narrative.Generate(s, at(19), model.SignalFreshness{}), ShouldResemble, p)
		})
	})
}
