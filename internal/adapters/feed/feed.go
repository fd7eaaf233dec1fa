// Package feed turns external RSS, Atom and JSON feeds into feed sections the
// engine can rank alongside the request's own sections.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/pkg/logger"
	"github.com/okian/concierge/pkg/metrics"
)

const (
	defaultTimeout     = 3 * time.Second
	defaultConcurrency = 4
)

// Source is one configured feed.
type Source struct {
	Name  string
	URL   string
	Limit int
}

// Loader fetches the configured sources.
type Loader struct {
	sources     []Source
	client      *http.Client
	timeout     time.Duration
	concurrency int
	log         logger.Logger
	metrics     *metrics.Manager
}

// NewLoader builds a Loader for sources.
func NewLoader(sources []Source, opts ...Option) *Loader {
	l := &Loader{
		sources:     sources,
		client:      &http.Client{},
		timeout:     defaultTimeout,
		concurrency: defaultConcurrency,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Sources returns the configured sources.
func (l *Loader) Sources() []Source { return l.sources }

// Load fetches the sources with at most the configured number of requests in
// flight and returns the sections in configuration order. Failed sources are
// logged and skipped, so Load never fails.
func (l *Loader) Load(ctx context.Context) []model.FeedSection {
	results := make([]*model.FeedSection, len(l.sources))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, src := range l.sources {
		g.Go(func() error {
			start := time.Now()
			section, err := l.fetch(ctx, src)
			elapsed := float64(time.Since(start).Microseconds()) / 1000
			if err != nil {
				l.log.Warn(ctx, "skipping external feed",
					logger.String("feed", src.Name), logger.String("url", src.URL), logger.Error(err))
				l.record(src.Name, 0, elapsed, true)
				return nil
			}
			l.record(src.Name, len(section.Events), elapsed, false)
			results[i] = &section
			return nil
		})
	}
	_ = g.Wait()

	out := make([]model.FeedSection, 0, len(results))
	for _, s := range results {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func (l *Loader) record(name string, items int, latencyMs float64, failed bool) {
	if l.metrics != nil {
		l.metrics.RecordFeedFetch(name, items, latencyMs, failed)
	}
}

func (l *Loader) fetch(ctx context.Context, src Source) (model.FeedSection, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return model.FeedSection{}, fmt.Errorf("%w: %w", ErrFetchFeed, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return model.FeedSection{}, fmt.Errorf("%w: %w", ErrFetchFeed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return model.FeedSection{}, fmt.Errorf("%w: status %d", ErrFetchFeed, resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return model.FeedSection{}, fmt.Errorf("%w: %w", ErrParseFeed, err)
	}
	return Convert(src, parsed), nil
}

// Convert maps a parsed feed onto a section. Items without a GUID fall back
// to their link. The first two categories become category and subcategory,
// except a "free" tag, which marks the event free.
func Convert(src Source, f *gofeed.Feed) model.FeedSection {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = src.Name
	}
	section := model.FeedSection{
		Title:  title,
		Slug:   slug(src.Name),
		Limit:  src.Limit,
		Events: make([]model.FeedEvent, 0, len(f.Items)),
	}
	for _, it := range f.Items {
		id := strings.TrimSpace(it.GUID)
		if id == "" {
			id = strings.TrimSpace(it.Link)
		}
		e := model.FeedEvent{
			ID:    model.ID(id),
			Title: strings.TrimSpace(it.Title),
		}
		if ts := published(it); ts != nil {
			utc := ts.UTC()
			e.StartDate = utc.Format(time.DateOnly)
			e.StartTime = utc.Format("15:04")
		}
		for _, c := range it.Categories {
			c = strings.TrimSpace(c)
			switch {
			case strings.EqualFold(c, "free"):
				e.IsFree = true
			case e.Category == "":
				e.Category = c
			case e.Subcategory == "":
				e.Subcategory = c
			}
		}
		if it.Author != nil {
			e.VenueName = strings.TrimSpace(it.Author.Name)
		}
		section.Events = append(section.Events, e)
	}
	return section
}

func published(it *gofeed.Item) *time.Time {
	if it.PublishedParsed != nil {
		return it.PublishedParsed
	}
	return it.UpdatedParsed
}

func slug(name string) string {
	return strings.Trim(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name), "-")
}
