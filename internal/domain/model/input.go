package model

import (
	"time"

	"github.com/okian/concierge/internal/domain/session"
)

// Portal identifies the tenant the request is served for.
type Portal struct {
	ID   ID     `json:"id,omitempty"`
	Slug string `json:"slug" validate:"required,max=128"`
	Name string `json:"name,omitempty"`
}

// Access kinds for source grants.
const (
	AccessOwner        = "owner"
	AccessGlobal       = "global"
	AccessSubscription = "subscription"
)

// SourceAccess is one content source the requester may read.
type SourceAccess struct {
	SourceID   ID     `json:"source_id"`
	SourceName string `json:"source_name,omitempty"`
	AccessKind string `json:"access_kind"`
}

// Input is the fully materialized snapshot one orchestration call works on.
type Input struct {
	RequestID        string         `json:"request_id"`
	Now              time.Time      `json:"now"`
	Portal           Portal         `json:"portal"`
	Session          session.Raw    `json:"session"`
	SourceAccess     []SourceAccess `json:"source_access"`
	Sections         []FeedSection  `json:"sections" validate:"dive"`
	Destinations     []Destination  `json:"destinations"`
	LiveDestinations []Destination  `json:"live_destinations"`
}

// ActiveDestinations returns the destination set the engine works on: the
// primary list, or the live list when the primary one is empty.
func (in Input) ActiveDestinations() []Destination {
	if len(in.Destinations) > 0 {
		return in.Destinations
	}
	return in.LiveDestinations
}
