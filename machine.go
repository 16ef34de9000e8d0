package undofsm

import (
	"log/slog"
	"sync"
)

// Machine is the runtime FSM instance
type Machine struct {
	states       map[StateID]*State
	order        []StateID // declaration order
	initial      StateID
	currentState StateID
	mu           sync.RWMutex

	history      *history
	historyLimit int
	lastOK       bool

	globalLookup bool
	logger       *slog.Logger
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithGlobalEventLookup makes Fire resolve an event against every state's
// transitions instead of only the current state's. When several states
// declare the event, the one declared last wins.
func WithGlobalEventLookup() MachineOption {
	return func(m *Machine) {
		m.globalLookup = true
	}
}

// WithHistoryLimit caps the undo history at n entries. Older entries are
// dropped and undo stops at the state the newest dropped entry reached.
// n <= 0 keeps the history unbounded.
func WithHistoryLimit(n int) MachineOption {
	return func(m *Machine) {
		m.historyLimit = n
	}
}

// CurrentState returns the current state
func (m *Machine) CurrentState() StateID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState
}

// InitialState returns the state the machine starts in and resets to
func (m *Machine) InitialState() StateID {
	return m.initial
}

// ListStates returns the states that declare a transition for event, in
// declaration order. An empty event lists every state.
func (m *Machine) ListStates(event EventID) []StateID {
	out := make([]StateID, 0, len(m.order))
	for _, id := range m.order {
		if event == "" || m.states[id].Handles(event) {
			out = append(out, id)
		}
	}
	return out
}

// SetState forces a direct state change, bypassing transition rules.
// A change of state is recorded as a manual history entry. Pending redo
// entries are discarded either way.
func (m *Machine) SetState(newState StateID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastOK = false

	if _, ok := m.states[newState]; !ok {
		err := &InvalidStateError{State: newState}
		m.logger.Debug("set state rejected", "state", m.currentState, "target", newState, "error", err)
		return err
	}

	fromState := m.currentState
	if fromState != newState {
		m.currentState = newState
		m.history.push(manual(newState))
	} else {
		m.history.dropRedo()
	}
	m.lastOK = true

	m.logger.Debug("state set", "from", fromState, "to", newState)
	return nil
}

// Fire applies event to the current state and moves to the resulting state.
// It fails with a *NoTransitionError when the event leaves the state unchanged.
func (m *Machine) Fire(event EventID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastOK = false

	fromState := m.currentState
	toState, ok := m.resolve(event)
	if !ok || toState == fromState {
		err := &NoTransitionError{State: fromState, Event: event}
		m.logger.Debug("no transition", "event", event, "state", fromState, "error", err)
		return err
	}

	m.currentState = toState
	m.history.push(triggered(event, toState))
	m.lastOK = true

	m.logger.Debug("transition", "event", event, "from", fromState, "to", toState)
	return nil
}

// CanFire reports whether Fire(event) would change the current state
func (m *Machine) CanFire(event EventID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	to, ok := m.resolve(event)
	return ok && to != m.currentState
}

// resolve finds the destination for event. Caller must hold the lock.
func (m *Machine) resolve(event EventID) (StateID, bool) {
	if !m.globalLookup {
		to, ok := m.states[m.currentState].Transitions[event]
		return to, ok
	}

	var (
		to    StateID
		found bool
	)
	for _, id := range m.order {
		if dest, ok := m.states[id].Transitions[event]; ok {
			to, found = dest, true
		}
	}
	return to, found
}

// Reset returns the machine to its initial state. History is left untouched.
func (m *Machine) Reset() StateID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug("reset", "from", m.currentState, "to", m.initial)
	m.currentState = m.initial
	return m.currentState
}

// Undo reverts the most recent history entry.
// Returns false if there is nothing to undo.
func (m *Machine) Undo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.history.stepBack()
	if !ok {
		return false
	}

	m.logger.Debug("undo", "from", m.currentState, "to", state)
	m.currentState = state
	return true
}

// Redo replays every undone entry at once.
// Returns false if there is nothing to redo.
func (m *Machine) Redo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.history.replay()
	if !ok {
		return false
	}

	m.logger.Debug("redo", "from", m.currentState, "to", state)
	m.currentState = state
	return true
}

// ClearHistory drops both the undo history and the redo buffer
func (m *Machine) ClearHistory() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history.clear()
	m.logger.Debug("history cleared", "state", m.currentState)
}

// History returns a copy of the undo history, oldest first
func (m *Machine) History() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.history.entries()
}

// RedoEntries returns a copy of the redo buffer, oldest first
func (m *Machine) RedoEntries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.history.pending()
}

// CanUndo reports whether there is a history entry to undo
func (m *Machine) CanUndo() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.history.undo) > 0
}

// CanRedo reports whether there are undone entries to replay
func (m *Machine) CanRedo() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.history.redo) > 0
}

// LastOperationSucceeded reports whether the most recent SetState or Fire succeeded
func (m *Machine) LastOperationSucceeded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastOK
}
