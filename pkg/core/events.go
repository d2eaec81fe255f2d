package core

import "fmt"

// EventType represents the type of change observed in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a persisted snapshot.
type Event struct {
	Type      EventType
	Key       string // snapshot key ("annotations" or "subnodes")
	Timestamp int64  // Unix timestamp
}

// String implements lifecycle.Event so store events can feed a
// lifecycle.Source without wrapping.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
