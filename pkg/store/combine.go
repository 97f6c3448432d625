package store

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/reduxkit/pkg/config"
	"github.com/dmitrymomot/reduxkit/pkg/logger"
)

// Entry registers a reducer under a state key.
type Entry struct {
	Key     string
	Reducer Reducer
}

// CombineOption configures CombineReducers.
type CombineOption func(*combineConfig)

type combineConfig struct {
	logger      *slog.Logger
	diagnostics bool
	strict      bool
}

// WithDiagnostics sets the logger receiving advisory warnings.
// A nil logger disables them.
func WithDiagnostics(l *slog.Logger) CombineOption {
	return func(c *combineConfig) {
		c.logger = l
	}
}

// WithEnvironment turns advisory warnings off in production.
func WithEnvironment(env config.Environment) CombineOption {
	return func(c *combineConfig) {
		c.diagnostics = !env.IsProduction()
	}
}

// WithStrict makes a nil reducer a sanity failure instead of a warning.
func WithStrict(strict bool) CombineOption {
	return func(c *combineConfig) {
		c.strict = strict
	}
}

// CombineWithConfig applies the environment and strictness settings from cfg.
func CombineWithConfig(cfg config.Store) CombineOption {
	return func(c *combineConfig) {
		WithEnvironment(cfg.Environment)(c)
		WithStrict(cfg.StrictReducers)(c)
	}
}

type combination struct {
	keys      []string
	reducers  map[string]Reducer
	sanityErr error

	logger          *slog.Logger
	warnedNoReducer bool
	unexpectedKeys  map[string]struct{}
}

// CombineReducers turns reducers registered under keys into one reducer whose
// state is a *StateMap with the same keys, in registration order.
//
// Every reducer is probed once, eagerly, with ActionInit and with a random
// action type. A reducer returning nil or failing a probe makes the combined
// reducer fail on every call with a ReducerSanityError.
//
// When no sub-state changes, the combined reducer returns its input state
// unchanged, so callers can detect no-ops by identity.
func CombineReducers(entries []Entry, opts ...CombineOption) Reducer {
	cfg := &combineConfig{
		logger:      slog.Default(),
		diagnostics: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &combination{
		reducers:       make(map[string]Reducer, len(entries)),
		unexpectedKeys: make(map[string]struct{}),
	}
	if cfg.diagnostics {
		c.logger = cfg.logger
	}

	for _, e := range entries {
		if e.Reducer == nil {
			if cfg.strict {
				if c.sanityErr == nil {
					c.sanityErr = &ReducerSanityError{Key: e.Key, Reason: "has no reducer"}
				}
				continue
			}
			c.warn("no reducer provided for key", logger.ReducerKey(e.Key))
			continue
		}
		if _, dup := c.reducers[e.Key]; !dup {
			c.keys = append(c.keys, e.Key)
		}
		c.reducers[e.Key] = e.Reducer
	}

	if c.sanityErr == nil {
		c.sanityErr = assertReducerSanity(c.keys, c.reducers)
	}

	return c.reduce
}

// CombineReducerMap is CombineReducers for a map; keys are combined in
// sorted order.
func CombineReducerMap(reducers map[string]Reducer, opts ...CombineOption) Reducer {
	keys := make([]string, 0, len(reducers))
	for k := range reducers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Reducer: reducers[k]})
	}
	return CombineReducers(entries, opts...)
}

func (c *combination) reduce(state any, action Action) (any, error) {
	if c.sanityErr != nil {
		return nil, c.sanityErr
	}

	lookup, keyed := asKeyed(state)
	if c.logger != nil {
		c.checkShape(state, keyed, action)
	}

	changed := false
	values := make(map[string]any, len(c.keys))
	for _, key := range c.keys {
		prev, _ := lookup(key)
		next, err := c.reducers[key](prev, action)
		if err != nil {
			return nil, fmt.Errorf("store: reducer %q: %w", key, err)
		}
		if next == nil {
			return nil, &UndefinedReducerOutputError{Key: key, ActionType: action.Type}
		}
		values[key] = next
		changed = changed || !SameState(prev, next)
	}

	if !changed {
		if state == nil {
			return &StateMap{}, nil
		}
		return state, nil
	}

	return &StateMap{keys: c.keys, values: values}, nil
}

func (c *combination) warn(msg string, attrs ...slog.Attr) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, append(attrs, logger.Component("combine_reducers"))...)
}

// checkShape reports advisory problems with the incoming state. It never fails.
func (c *combination) checkShape(state any, keyed bool, action Action) {
	argument := "previous state received by the reducer"
	if action.Type == ActionInit {
		argument = "preloaded state passed to the store"
	}

	if len(c.keys) == 0 {
		if !c.warnedNoReducer {
			c.warnedNoReducer = true
			c.warn("store does not have a valid reducer; pass at least one reducer entry to CombineReducers")
		}
		return
	}

	if !keyed {
		c.warn(fmt.Sprintf("the %s has unexpected type %T; expected a keyed state", argument, state),
			logger.Keys(c.keys))
		return
	}

	var unexpected []string
	for _, k := range stateKeys(state) {
		if _, known := c.reducers[k]; known {
			continue
		}
		if _, seen := c.unexpectedKeys[k]; seen {
			continue
		}
		c.unexpectedKeys[k] = struct{}{}
		unexpected = append(unexpected, k)
	}

	if len(unexpected) > 0 {
		c.warn(fmt.Sprintf("unexpected keys %q found in %s; they will be ignored", strings.Join(unexpected, ", "), argument),
			logger.Keys(c.keys))
	}
}

func assertReducerSanity(keys []string, reducers map[string]Reducer) error {
	for _, key := range keys {
		reducer := reducers[key]

		if err := probe(key, reducer, ActionInit, "returned undefined during initialization"); err != nil {
			return err
		}
		if err := probe(key, reducer, ProbeActionType(),
			"returned undefined when probed with a random type; do not handle "+ActionInit+
				" or other "+reservedPrefix+" actions"); err != nil {
			return err
		}
	}
	return nil
}

func probe(key string, reducer Reducer, actionType, reason string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ReducerSanityError{Key: key, ActionType: actionType, Reason: "panicked", Err: fmt.Errorf("%v", r)}
		}
	}()

	state, rerr := reducer(nil, Action{Type: actionType})
	if rerr != nil {
		return &ReducerSanityError{Key: key, ActionType: actionType, Reason: "failed", Err: rerr}
	}
	if state == nil {
		return &ReducerSanityError{Key: key, ActionType: actionType, Reason: reason}
	}
	return nil
}

// SameState compares two states by identity: pointers, maps, slices, funcs
// and channels by reference, structs, arrays and interfaces field by field
// with the same rules, other values by ==.
func SameState(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return sameValue(va, vb)
}

// sameValue expects a and b to have the same type.
func sameValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return sameValue(ea, eb)
	case reflect.Struct:
		for i := range a.NumField() {
			if !sameValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !sameValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
	return a.Equal(b)
}
