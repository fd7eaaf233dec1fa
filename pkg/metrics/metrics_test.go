package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

// sample returns the summed counter value, or histogram sample count, of the
// family named name whose labels include want.
func sample(reg *prometheus.Registry, name string, want map[string]string) float64 {
	families, err := reg.Gather()
	So(err, ShouldBeNil)
	total := 0.0
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue next
				}
			}
			if c := m.GetCounter(); c != nil {
				total += c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				total += float64(h.GetSampleCount())
			}
		}
	}
	return total
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When creating a manager with custom options", func() {
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordOrchestration("safe", 3)

			Convey("Then metrics are registered under the custom names", func() {
				So(sample(registry, "test_unit_orchestrations_total", map[string]string{"mode": "safe", "env": "test"}), ShouldEqual, 1)
			})
		})

		Convey("When creating two managers on the same registry", func() {
			NewManager(WithPrometheusRegistry(registry))

			Convey("Then registration panics", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording orchestrations", func() {
			manager.RecordOrchestration("safe", 1.5)
			manager.RecordOrchestration("safe", 2)
			manager.RecordOrchestration("elevated", 0.5)

			Convey("Then counts are split by mode and latency is observed", func() {
				So(sample(registry, "concierge_engine_orchestrations_total", map[string]string{"mode": "safe"}), ShouldEqual, 2)
				So(sample(registry, "concierge_engine_orchestrations_total", map[string]string{"mode": "elevated"}), ShouldEqual, 1)
				So(sample(registry, "concierge_engine_orchestration_latency_milliseconds", nil), ShouldEqual, 3)
			})
		})

		Convey("When recording event and destination counts", func() {
			manager.RecordEvents(10, 2)
			manager.RecordEvents(5, 0)
			manager.RecordStaleDestinations(3)

			Convey("Then they accumulate", func() {
				So(sample(registry, "concierge_engine_events_considered_total", nil), ShouldEqual, 15)
				So(sample(registry, "concierge_engine_events_duplicate_total", nil), ShouldEqual, 2)
				So(sample(registry, "concierge_engine_stale_destinations_total", nil), ShouldEqual, 3)
			})
		})

		Convey("When recording feed fetches", func() {
			manager.RecordFeedFetch("city", 4, 12, false)
			manager.RecordFeedFetch("city", 0, 3000, true)

			Convey("Then failures and items are tracked per feed", func() {
				So(sample(registry, "concierge_feed_items_total", map[string]string{"feed": "city"}), ShouldEqual, 4)
				So(sample(registry, "concierge_feed_fetch_failures_total", map[string]string{"feed": "city"}), ShouldEqual, 1)
				So(sample(registry, "concierge_feed_fetch_latency_milliseconds", nil), ShouldEqual, 2)
			})
		})

		Convey("When recording HTTP requests and errors", func() {
			manager.RecordHTTPRequest("/stats", "GET", "200", 0.3)
			manager.RecordError("api", "validation")

			Convey("Then both families are populated", func() {
				So(sample(registry, "concierge_http_requests_total", map[string]string{"endpoint": "/stats", "status_code": "200"}), ShouldEqual, 1)
				So(sample(registry, "concierge_http_request_duration_milliseconds", nil), ShouldEqual, 1)
				So(sample(registry, "concierge_errors_by_component_total", map[string]string{"component": "api"}), ShouldEqual, 1)
			})
		})
	})
}

func TestGlobalManager(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then package-level helpers record on the custom registry", func() {
			before := sample(GetRegistry(), "concierge_engine_orchestrations_total", map[string]string{"mode": "adventurous"})
			RecordOrchestration("adventurous", 1)
			RecordHTTPRequest("/healthz", "GET", "200", 1)
			RecordError("feed", "timeout")
			So(sample(GetRegistry(), "concierge_engine_orchestrations_total", map[string]string{"mode": "adventurous"}), ShouldEqual, before+1)
			So(Global(), ShouldNotBeNil)
		})
	})
}

func TestRegisterRuntimeCollectors(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When the runtime collectors are registered twice", func() {
			So(RegisterRuntimeCollectors(reg), ShouldBeNil)
			So(RegisterRuntimeCollectors(reg), ShouldBeNil)

			Convey("Then Go runtime metrics are exposed", func() {
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["go_goroutines"], ShouldBeTrue)
			})
		})
	})
}
