package undofsm

import "log/slog"

// StateID is a unique identifier for a state
type StateID string

// EventID is a unique identifier for an event type
type EventID string

// EntryKind classifies how a history entry was produced
type EntryKind int

const (
	// EntryTriggered is a transition caused by an event
	EntryTriggered EntryKind = iota
	// EntryManual is a direct jump made with SetState
	EntryManual
)

func (k EntryKind) String() string {
	switch k {
	case EntryTriggered:
		return "triggered"
	case EntryManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
