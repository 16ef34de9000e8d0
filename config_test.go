package undofsm

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "light.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Initial: stateOff,
		States: StateTable{
			{ID: stateOff, Transitions: []TransitionConfig{{Event: evTurnOn, To: stateOn}}},
			{ID: stateOn, Transitions: []TransitionConfig{{Event: evTurnOff, To: stateOff}}},
		},
	}, cfg)

	m, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, stateOff, m.CurrentState())
	assert.Equal(t, []StateID{stateOff}, m.ListStates(evTurnOn))

	require.NoError(t, m.Fire(evTurnOn))
	assert.Equal(t, stateOn, m.CurrentState())
	assert.True(t, m.Undo())
	assert.Equal(t, stateOff, m.CurrentState())
	assert.True(t, m.Redo())
	assert.Equal(t, stateOn, m.CurrentState())
}

func TestLoadConfigKeepsOrder(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "document.yaml"))
	require.NoError(t, err)

	m, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, []StateID{"draft", "review", "published", "archived"}, m.ListStates(""))
	assert.Equal(t, []StateID{"review", "published"}, m.ListStates("reject"))
	assert.Equal(t, []EventID{"approve", "reject"}, m.states["review"].Events())
	assert.Empty(t, m.states["archived"].Transitions)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join("testdata", "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("duplicate state", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join("testdata", "duplicate_state.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate key "a"`)
	})

	t.Run("undeclared target", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join("testdata", "bad_target.yaml"))
		require.NoError(t, err)

		_, err = New(cfg)
		assert.True(t, IsConfigurationError(err))
	})
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "states not a mapping",
			input:   "initial: a\nstates: [a, b]\n",
			wantErr: "states must be a mapping",
		},
		{
			name:    "transitions not a mapping",
			input:   "initial: a\nstates:\n  a:\n    transitions: [go]\n",
			wantErr: `state "a" transitions must be a mapping`,
		},
		{
			name:    "duplicate event",
			input:   "initial: a\nstates:\n  a:\n    transitions:\n      go: a\n      go: a\n",
			wantErr: `duplicate key "go"`,
		},
		{
			name:    "target not a scalar",
			input:   "initial: a\nstates:\n  a:\n    transitions:\n      go: [b]\n",
			wantErr: "target must be a state name",
		},
		{
			name:    "malformed yaml",
			input:   "initial: [",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseConfigEmptyStates(t *testing.T) {
	cfg, err := ParseConfig([]byte("initial: idle\nstates:\n  idle:\n  busy: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, StateTable{{ID: "idle"}, {ID: "busy"}}, cfg.States)

	_, err = New(cfg)
	require.NoError(t, err)

	_, err = New(Config{Initial: "idle"})
	assert.True(t, IsConfigurationError(err))
}

func TestNewRejectsDuplicateStates(t *testing.T) {
	cfg := Config{
		Initial: stateA,
		States: StateTable{
			{ID: stateA},
			{ID: stateB},
			{ID: stateA, Transitions: []TransitionConfig{{Event: evNext, To: stateB}}},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, `invalid definition: state "a" declared more than once`, err.Error())

	m, err := New(cfg)
	assert.Nil(t, m)
	assert.True(t, IsConfigurationError(err))
}
