package domain

import "time"

// Event is an institute activity event as persisted by the ingestion API.
type Event struct {
	ID         string
	Type       string
	ActorID    string
	ActorRole  string
	ActorName  string
	OccurredAt time.Time
	Tags       []string
	Metadata   map[string]any
	DedupeKey  string
}

// HasActor reports whether the event was originated by a known actor.
func (e *Event) HasActor() bool {
	return e.ActorID != ""
}
