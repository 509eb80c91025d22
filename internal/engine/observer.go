package engine

import "time"

// EventType represents different lifecycle phases of a join
type EventType string

const (
	EventJoinStart EventType = "join_start"
	EventJoinEnd   EventType = "join_end"
	EventJoinError EventType = "join_error"
)

// Event represents a lifecycle event of a join run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Join run ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // JoinRequest on start, join.Stats on end, error on failure
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
