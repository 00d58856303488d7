// Package observability tracks lightweight counters about the sync
// pipeline for display in the client UI.
package observability

import (
	"sync/atomic"
)

// StatsSnapshot aggregates the counters for the UI.
type StatsSnapshot struct {
	EventsApplied     uint64 `json:"events_applied"`
	MalformedSegments uint64 `json:"malformed_segments"`
	UnknownActions    uint64 `json:"unknown_actions"`
	DroppedEvents     uint64 `json:"dropped_events"`
}

// SyncStats counts what the dispatch pipeline did with inbound events.
// All counters are atomic: the read pump increments while the UI reads.
type SyncStats struct {
	eventsApplied     uint64
	malformedSegments uint64
	unknownActions    uint64
	droppedEvents     uint64
}

func NewSyncStats() *SyncStats {
	return &SyncStats{}
}

// IncrApplied counts an event that mutated local state.
func (s *SyncStats) IncrApplied() {
	atomic.AddUint64(&s.eventsApplied, 1)
}

// IncrMalformed counts a frame segment skipped as unparseable.
func (s *SyncStats) IncrMalformed() {
	atomic.AddUint64(&s.malformedSegments, 1)
}

// IncrUnknown counts a well-formed event with an unrecognized action.
func (s *SyncStats) IncrUnknown() {
	atomic.AddUint64(&s.unknownActions, 1)
}

// IncrDropped counts an event referencing a room or user not known
// locally.
func (s *SyncStats) IncrDropped() {
	atomic.AddUint64(&s.droppedEvents, 1)
}

func (s *SyncStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		EventsApplied:     atomic.LoadUint64(&s.eventsApplied),
		MalformedSegments: atomic.LoadUint64(&s.malformedSegments),
		UnknownActions:    atomic.LoadUint64(&s.unknownActions),
		DroppedEvents:     atomic.LoadUint64(&s.droppedEvents),
	}
}
