package dedupe_test

import (
	"fmt"
	"testing"

	dedupe "github.com/okian/concierge/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should start empty", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When creating a deduper with a capacity hint", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(64))

			Convey("Then it should still start empty", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording ids", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the id is new", func() {
				seen := d.SeenAndRecord("1")

				Convey("Then it should return false and record it", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the id was already seen", func() {
				d.SeenAndRecord("1")
				seen := d.SeenAndRecord("1")

				Convey("Then it should return true without growing", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the id is empty", func() {
				seen := d.SeenAndRecord("")

				Convey("Then it reports seen so the caller drops it", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 0)
				})
			})

			Convey("And many ids are recorded", func() {
				for i := 0; i < 100; i++ {
					So(d.SeenAndRecord(fmt.Sprintf("event-%d", i)), ShouldBeFalse)
				}

				Convey("Then all of them are remembered", func() {
					So(d.Size(), ShouldEqual, 100)
					for i := 0; i < 100; i++ {
						So(d.SeenAndRecord(fmt.Sprintf("event-%d", i)), ShouldBeTrue)
					}
				})
			})
		})
	})
}
