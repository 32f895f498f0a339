package store

// EventType describes a store change notification.
type EventType int

const (
	// EventStateChanged signals that the snapshot changed in any way
	// (payload applied, busy flag flipped, filter mutated, error recorded).
	// Subscribers re-read Snapshot rather than diffing events.
	EventStateChanged EventType = iota
)

// Event is emitted on the store's event channel after every state change.
type Event struct {
	Type EventType
}
