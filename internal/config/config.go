// Package config defines service configuration structures and loading hooks.
package config

// Feed is one external RSS/Atom/JSON feed merged into the request feed.
type Feed struct {
	// Name labels the section and the feed metrics.
	Name string `koanf:"name" validate:"required"`
	// URL is fetched on every orchestration request.
	URL string `koanf:"url" validate:"required,url"`
	// Limit caps the items converted from the feed. Zero keeps all.
	Limit int `koanf:"limit" validate:"min=0"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// LogFormat selects json or console output.
	LogFormat string `koanf:"log_format" validate:"oneof=json console"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// Timezone is the IANA zone the portal operates in. Dayparts are computed
	// in this zone.
	Timezone string `koanf:"timezone" validate:"required"`

	// MaxBodyBytes caps POST bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"gt=0"`

	// EventLimit and DestinationLimit narrow the ranked lists.
	EventLimit       int `koanf:"event_limit" validate:"min=1,max=12"`
	DestinationLimit int `koanf:"destination_limit" validate:"min=1,max=14"`

	// FeedTimeoutMS bounds each external feed fetch.
	FeedTimeoutMS int `koanf:"feed_timeout_ms" validate:"gt=0"`

	// Feeds lists external feeds appended after the request's sections.
	Feeds []Feed `koanf:"feeds" validate:"dive"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "json",
		Addr:             ":9080",
		Timezone:         "UTC",
		MaxBodyBytes:     1 << 20,
		EventLimit:       12,
		DestinationLimit: 14,
		FeedTimeoutMS:    3000,
	}
}
