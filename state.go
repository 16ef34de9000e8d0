package undofsm

// State is a compiled state with its outgoing transitions
type State struct {
	ID          StateID
	Transitions map[EventID]StateID

	events []EventID // declaration order of Transitions
}

func newState(id StateID) *State {
	return &State{
		ID:          id,
		Transitions: make(map[EventID]StateID),
	}
}

// Handles reports whether the state declares a transition for event
func (s *State) Handles(event EventID) bool {
	_, ok := s.Transitions[event]
	return ok
}

// Events returns the events the state reacts to, in declaration order
func (s *State) Events() []EventID {
	out := make([]EventID, len(s.events))
	copy(out, s.events)
	return out
}

func (s *State) addTransition(event EventID, to StateID) {
	if _, ok := s.Transitions[event]; !ok {
		s.events = append(s.events, event)
	}
	s.Transitions[event] = to
}
