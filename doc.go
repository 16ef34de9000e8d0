// Package undofsm implements a flat finite-state machine with a linear
// undo/redo history.
//
// A machine is declared once, either with the Definition builder or from a
// Config (which can be loaded from YAML), and is immutable afterwards:
//
//	m, err := undofsm.NewDefinition().
//	    State("off").
//	    State("on").
//	    Transition("off", "turnOn", "on").
//	    Transition("on", "turnOff", "off").
//	    Initial("off").
//	    Build()
//
// Fire looks the event up in the current state's transitions. With
// WithGlobalEventLookup it is looked up in every state instead, and the last
// declaring state wins. An event that does not change the state fails with a
// *NoTransitionError. SetState jumps directly to a declared state and fails
// with an *InvalidStateError otherwise. Failed operations change nothing.
//
// Every successful Fire and every SetState that changes the state appends an
// Entry to the history. Undo moves the newest entry into the redo buffer.
// Redo replays the whole redo buffer in one call. Any new forward move
// discards pending redo entries. Reset returns to the initial state without
// touching the history.
//
// A Machine is safe for concurrent use. Mutations are serialized by a single
// lock, and queries may run concurrently with each other.
package undofsm
