package undofsm

// Definition holds the FSM structure before building a Machine
type Definition struct {
	states      map[StateID]bool
	order       []StateID
	transitions []Transition
	initial     StateID
}

// NewDefinition creates a new FSM definition builder
func NewDefinition() *Definition {
	return &Definition{
		states:      make(map[StateID]bool),
		transitions: make([]Transition, 0),
	}
}

// State declares a state. Declaring the same state twice keeps its first position.
func (d *Definition) State(id StateID) *Definition {
	if !d.states[id] {
		d.states[id] = true
		d.order = append(d.order, id)
	}
	return d
}

// Transition adds a transition rule
func (d *Definition) Transition(from StateID, event EventID, to StateID) *Definition {
	d.transitions = append(d.transitions, Transition{
		From:  from,
		Event: event,
		To:    to,
	})
	return d
}

// Initial sets the initial state
func (d *Definition) Initial(id StateID) *Definition {
	d.initial = id
	return d
}

// Validate checks the definition for errors
func (d *Definition) Validate() error {
	if err := d.validate(); err != nil {
		return err
	}
	return nil
}

func (d *Definition) validate() *ConfigurationError {
	if d.initial == "" {
		return configErrorf("no initial state defined")
	}

	if !d.states[d.initial] {
		return configErrorf("initial state %q not defined", d.initial)
	}

	type key struct {
		from  StateID
		event EventID
	}
	seen := make(map[key]bool)

	for _, t := range d.transitions {
		if !d.states[t.From] {
			return configErrorf("transition from undefined state %q", t.From)
		}
		if !d.states[t.To] {
			return configErrorf("transition to undefined state %q", t.To)
		}
		if t.Event == "" {
			return configErrorf("transition from %q has an empty event", t.From)
		}

		k := key{t.From, t.Event}
		if seen[k] {
			return configErrorf("state %q declares event %q more than once", t.From, t.Event)
		}
		seen[k] = true
	}

	return nil
}

// Build creates a Machine from the definition
func (d *Definition) Build(opts ...MachineOption) (*Machine, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	states := make(map[StateID]*State, len(d.order))
	for _, id := range d.order {
		states[id] = newState(id)
	}
	for _, t := range d.transitions {
		states[t.From].addTransition(t.Event, t.To)
	}

	m := &Machine{
		states:       states,
		order:        append([]StateID(nil), d.order...),
		initial:      d.initial,
		currentState: d.initial,
		lastOK:       true,
		logger:       Logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = Logger
	}
	m.history = newHistory(m.initial, m.historyLimit)

	return m, nil
}
