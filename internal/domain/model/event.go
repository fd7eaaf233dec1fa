// Package model contains domain models passed between layers.
package model

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/text/unicode/norm"
)

// ID is an identifier that may arrive as a JSON string or number. It is
// always compared in its string form.
type ID string

// UnmarshalJSON accepts strings, numbers and null. Numbers are written in
// their shortest decimal form, so 1, 1.0 and 1e0 all become "1".
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*id = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		f, err := n.Float64()
		if err != nil {
			return err
		}
		*id = ID(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

// Normalize trims surrounding whitespace and applies Unicode NFC so visually
// identical identifiers compare equal. An empty result means "no identifier".
func (id ID) Normalize() string {
	return norm.NFC.String(strings.TrimSpace(string(id)))
}

// FeedEvent is a single event in a feed section.
type FeedEvent struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date,omitempty"` // YYYY-MM-DD
	StartTime   string `json:"start_time,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	VenueName   string `json:"venue_name,omitempty"`
	IsFree      bool   `json:"is_free,omitempty"`
}

// FeedSection is a named list of events. A positive Limit slices the section
// to its first Limit events.
type FeedSection struct {
	Title  string      `json:"title,omitempty"`
	Slug   string      `json:"slug,omitempty"`
	Limit  int         `json:"limit,omitempty" validate:"min=0"`
	Events []FeedEvent `json:"events"`
}

// Visible returns the events of the section after slicing.
func (s FeedSection) Visible() []FeedEvent {
	if s.Limit > 0 && s.Limit < len(s.Events) {
		return s.Events[:s.Limit]
	}
	return s.Events
}
