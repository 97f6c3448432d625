package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Reserved action types. Reducers must never handle them explicitly: for any
// reserved or unknown type they return the current state, or their initial
// state when the current one is absent.
const (
	reservedPrefix = "@@reduxkit/"

	// ActionInit is dispatched when a store is created and when its reducer is replaced.
	ActionInit = reservedPrefix + "INIT"

	probePrefix = reservedPrefix + "PROBE_UNKNOWN_ACTION_"
)

// Action is a serializable intent. Type is the discriminant driving the
// transition; everything else is optional payload.
type Action struct {
	Type    string         `json:"type" yaml:"type"`
	Payload any            `json:"payload,omitempty" yaml:"payload,omitempty"`
	Meta    map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Error   bool           `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewAction is a shorthand for Action{Type: typ, Payload: payload}.
func NewAction(typ string, payload any) Action {
	return Action{Type: typ, Payload: payload}
}

// IsReserved reports whether typ belongs to the private reduxkit namespace.
func IsReserved(typ string) bool {
	return strings.HasPrefix(typ, reservedPrefix)
}

// ProbeActionType returns a fresh, unpredictable action type that no reducer
// can reasonably special-case.
func ProbeActionType() string {
	return probePrefix + strings.Join(strings.Split(strings.ReplaceAll(uuid.NewString(), "-", ""), ""), ".")
}

func initAction() Action {
	return Action{Type: ActionInit}
}

func validateAction(v any) (Action, error) {
	action, ok := v.(Action)
	if !ok {
		return Action{}, fmt.Errorf("%w: actions must be store.Action values, got %T; use middleware for other kinds of actions", ErrInvalidAction, v)
	}
	if action.Type == "" {
		return Action{}, fmt.Errorf("%w: actions may not have an empty Type", ErrInvalidAction)
	}
	return action, nil
}
