package config_test

import (
	"testing"
	"time"

	"github.com/okian/concierge/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			convey.So(cfg.Timezone, convey.ShouldEqual, "UTC")
			convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, 1<<20)
			convey.So(cfg.EventLimit, convey.ShouldEqual, 12)
			convey.So(cfg.DestinationLimit, convey.ShouldEqual, 14)
			convey.So(cfg.FeedTimeout(), convey.ShouldEqual, 3*time.Second)
			convey.So(cfg.Feeds, convey.ShouldBeEmpty)
		})

		convey.Convey("Then the defaults validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
			convey.So(cfg.Location(), convey.ShouldEqual, time.UTC)
		})
	})
}
