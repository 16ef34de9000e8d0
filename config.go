package undofsm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a declarative machine description.
//
//	initial: off
//	states:
//	  off:
//	    transitions:
//	      turnOn: on
//	  on:
//	    transitions:
//	      turnOff: off
type Config struct {
	Initial StateID    `yaml:"initial"`
	States  StateTable `yaml:"states"`
}

// StateTable is an ordered list of state declarations. In YAML it is a
// mapping keyed by state ID; mapping order is kept.
type StateTable []StateConfig

// StateConfig declares one state and its outgoing transitions
type StateConfig struct {
	ID          StateID
	Transitions []TransitionConfig
}

// TransitionConfig maps an event to a destination state
type TransitionConfig struct {
	Event EventID
	To    StateID
}

// New builds a Machine from cfg
func New(cfg Config, opts ...MachineOption) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.Definition().Build(opts...)
}

// Validate rejects state IDs that appear more than once in the table.
// Transition rules are checked when the definition is built.
func (c Config) Validate() error {
	seen := make(map[StateID]bool, len(c.States))
	for _, s := range c.States {
		if seen[s.ID] {
			return configErrorf("state %q declared more than once", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Definition converts the config into a Definition builder
func (c Config) Definition() *Definition {
	d := NewDefinition().Initial(c.Initial)
	for _, s := range c.States {
		d.State(s.ID)
	}
	for _, s := range c.States {
		for _, t := range s.Transitions {
			d.Transition(s.ID, t.Event, t.To)
		}
	}
	return d
}

// ParseConfig decodes a YAML machine description
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML machine description from path
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// UnmarshalYAML decodes the states mapping while keeping its key order
func (t *StateTable) UnmarshalYAML(node *yaml.Node) error {
	pairs, err := mappingPairs(node, "states")
	if err != nil {
		return err
	}

	table := make(StateTable, 0, len(pairs))
	for _, p := range pairs {
		var body struct {
			Transitions yaml.Node `yaml:"transitions"`
		}
		if err := p.value.Decode(&body); err != nil {
			return fmt.Errorf("state %q: %w", p.key, err)
		}

		sc := StateConfig{ID: StateID(p.key)}
		if body.Transitions.Kind != 0 {
			events, err := mappingPairs(&body.Transitions, fmt.Sprintf("state %q transitions", p.key))
			if err != nil {
				return err
			}
			for _, ev := range events {
				if ev.value.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: state %q event %q: target must be a state name", ev.value.Line, p.key, ev.key)
				}
				sc.Transitions = append(sc.Transitions, TransitionConfig{
					Event: EventID(ev.key),
					To:    StateID(ev.value.Value),
				})
			}
		}
		table = append(table, sc)
	}

	*t = table
	return nil
}

type pair struct {
	key   string
	value *yaml.Node
}

// mappingPairs returns the entries of a mapping node in document order.
// A null node is an empty mapping.
func mappingPairs(node *yaml.Node, what string) ([]pair, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s must be a mapping", node.Line, what)
	}

	seen := make(map[string]bool, len(node.Content)/2)
	pairs := make([]pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: %s keys must be scalars", k.Line, what)
		}
		if seen[k.Value] {
			return nil, fmt.Errorf("line %d: %s: duplicate key %q", k.Line, what, k.Value)
		}
		seen[k.Value] = true
		pairs = append(pairs, pair{key: k.Value, value: v})
	}
	return pairs, nil
}
