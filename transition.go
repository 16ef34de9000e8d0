package undofsm

import "fmt"

// Transition defines a state change rule
type Transition struct {
	From  StateID // Source state
	Event EventID // Triggering event
	To    StateID // Target state
}

// Entry is one record in the undo history.
// Event is empty for EntryManual entries.
type Entry struct {
	Kind  EntryKind
	Event EventID
	State StateID // state reached by this entry
}

func triggered(event EventID, state StateID) Entry {
	return Entry{Kind: EntryTriggered, Event: event, State: state}
}

func manual(state StateID) Entry {
	return Entry{Kind: EntryManual, State: state}
}

func (e Entry) String() string {
	if e.Kind == EntryManual {
		return fmt.Sprintf("manual -> %s", e.State)
	}
	return fmt.Sprintf("%s -> %s", e.Event, e.State)
}
