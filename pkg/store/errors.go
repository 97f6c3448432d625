package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a public entry point receives a value
	// that violates its contract: nil reducer, nil listener, unsupported
	// action creators and so on.
	ErrInvalidArgument = errors.New("store: invalid argument")

	// ErrInvalidAction is returned when a dispatched value is not an Action or
	// its Type is empty.
	ErrInvalidAction = errors.New("store: invalid action")

	// ErrReentrantDispatch is returned when Dispatch is called while a reducer
	// of the same store is still running. Reducers may not dispatch actions.
	ErrReentrantDispatch = errors.New("store: reducers may not dispatch actions")

	// ErrReducerSanity is the sentinel wrapped by ReducerSanityError.
	ErrReducerSanity = errors.New("store: reducer sanity check failed")

	// ErrUndefinedReducerOutput is the sentinel wrapped by UndefinedReducerOutputError.
	ErrUndefinedReducerOutput = errors.New("store: reducer returned undefined state")
)

// ReducerSanityError reports a combined reducer that returned no state, or
// failed, when probed with the init action or a random unknown action type.
type ReducerSanityError struct {
	Key        string
	ActionType string
	Reason     string
	Err        error
}

func (e *ReducerSanityError) Error() string {
	msg := fmt.Sprintf("store: reducer %q %s", e.Key, e.Reason)
	if e.ActionType != "" {
		msg += fmt.Sprintf(" (probe %q)", e.ActionType)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ReducerSanityError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrReducerSanity}
	}
	return []error{ErrReducerSanity, e.Err}
}

// UndefinedReducerOutputError reports a reducer that returned nil for a live action.
type UndefinedReducerOutputError struct {
	Key        string
	ActionType string
}

func (e *UndefinedReducerOutputError) Error() string {
	return fmt.Sprintf(
		"store: given action %q, reducer %q returned undefined; to ignore an action, return the previous state",
		e.ActionType, e.Key,
	)
}

func (e *UndefinedReducerOutputError) Unwrap() error {
	return ErrUndefinedReducerOutput
}

func IsReducerSanityError(err error) bool {
	var e *ReducerSanityError
	return errors.As(err, &e)
}

func IsUndefinedReducerOutputError(err error) bool {
	var e *UndefinedReducerOutputError
	return errors.As(err, &e)
}

func IsReentrantDispatch(err error) bool {
	return errors.Is(err, ErrReentrantDispatch)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
