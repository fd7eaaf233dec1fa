package feed

import (
	"net/http"
	"time"

	"github.com/okian/concierge/pkg/logger"
	"github.com/okian/concierge/pkg/metrics"
)

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the HTTP client used for fetching.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithTimeout bounds each feed fetch.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithConcurrency bounds the number of feeds fetched at once.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithLogger sets the logger used for skipped feeds.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithMetrics records fetch outcomes on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(l *Loader) { l.metrics = m }
}
