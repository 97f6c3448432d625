package middleware

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reduxkit/pkg/store"
)

const actionLogVersion = 1

// ErrUnsupportedLogVersion is returned by ReadYAML for logs written by an
// incompatible version.
var ErrUnsupportedLogVersion = errors.New("middleware: unsupported action log version")

// actionLog is the YAML document written by Recorder.WriteYAML.
type actionLog struct {
	Version int            `yaml:"version"`
	Actions []store.Action `yaml:"actions"`
}

// Recorder keeps every store.Action that passed through its middleware and
// was accepted by the rest of the chain. Reserved actions dispatched by the
// engine itself never pass through middleware and are not recorded.
type Recorder struct {
	mu      sync.RWMutex
	actions []store.Action
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Middleware returns the recording middleware. Place it last to record only
// plain actions that reach the reducer.
func (r *Recorder) Middleware() store.Middleware {
	return func(store.API) func(next store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action any) (any, error) {
				res, err := next(action)
				if err != nil {
					return res, err
				}
				if a, ok := action.(store.Action); ok {
					r.mu.Lock()
					r.actions = append(r.actions, a)
					r.mu.Unlock()
				}
				return res, nil
			}
		}
	}
}

// Actions returns a copy of the recorded actions in dispatch order.
func (r *Recorder) Actions() []store.Action {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.actions)
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}

// Reset forgets every recorded action.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = nil
}

// WriteYAML writes the recorded actions as a versioned YAML document.
func (r *Recorder) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(actionLog{Version: actionLogVersion, Actions: r.Actions()}); err != nil {
		return fmt.Errorf("middleware: encode action log: %w", err)
	}
	return enc.Close()
}

// ReadYAML reads an action log written by WriteYAML.
func ReadYAML(rd io.Reader) ([]store.Action, error) {
	var doc actionLog
	if err := yaml.NewDecoder(rd).Decode(&doc); err != nil {
		return nil, fmt.Errorf("middleware: decode action log: %w", err)
	}
	if doc.Version != actionLogVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLogVersion, doc.Version)
	}
	for i, a := range doc.Actions {
		if a.Type == "" {
			return nil, fmt.Errorf("%w: action %d has an empty type", store.ErrInvalidAction, i)
		}
	}
	return doc.Actions, nil
}

// Replay dispatches actions in order and stops at the first failure.
func Replay(dispatch store.DispatchFunc, actions []store.Action) error {
	if dispatch == nil {
		return fmt.Errorf("%w: expected dispatch to be a function", store.ErrInvalidArgument)
	}
	for i, a := range actions {
		if _, err := dispatch(a); err != nil {
			return fmt.Errorf("middleware: replay action %d (%q): %w", i, a.Type, err)
		}
	}
	return nil
}
