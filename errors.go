package undofsm

import (
	"errors"
	"fmt"
)

// ConfigurationError indicates a definition that cannot be built into a Machine.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid definition: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidStateError indicates a direct jump to a state that was never declared.
type InvalidStateError struct {
	State StateID
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("unknown state '%s'", e.State)
}

// NoTransitionError indicates an event that does not move the machine out of its current state.
type NoTransitionError struct {
	State StateID
	Event EventID
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.State, e.Event)
}

func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

func IsInvalidStateError(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}
