package store

import (
	"fmt"
	"log/slog"
	"slices"
)

// Listener is called once after every completed dispatch, whether or not the
// state changed. Read the new state with Store.GetState.
type Listener func()

// DispatchFunc sends an action through a store. The raw engine only accepts
// Action values; middleware may accept anything and return any result.
type DispatchFunc func(action any) (any, error)

// Store holds the application state. The only way to change it is to dispatch
// an action.
//
// A Store is single-writer: it must not be used from several goroutines at
// once. Listeners may dispatch, reducers may not.
type Store interface {
	// Dispatch runs the current reducer with the action, installs the result
	// and notifies every listener registered before notification began.
	Dispatch(action any) (any, error)
	// GetState returns the state installed by the last completed dispatch.
	GetState() any
	// Subscribe registers a listener and returns an idempotent unsubscribe function.
	Subscribe(listener Listener) (func(), error)
	// ReplaceReducer swaps the reducer and dispatches ActionInit.
	ReplaceReducer(next Reducer) error
}

// Creator builds a store. New is the base Creator.
type Creator func(reducer Reducer, opts ...Option) (Store, error)

// Enhancer wraps a Creator to augment the stores it builds.
type Enhancer func(next Creator) Creator

type engine struct {
	reducer   Reducer
	state     any
	listeners listenerRegistry
	lifecycle lifecycle
	logger    *slog.Logger
}

// New creates a store and dispatches ActionInit so every reducer can
// populate its initial state.
//
// When an enhancer is configured, construction is delegated to
// enhancer(New)(reducer, opts...) with the enhancer removed from opts.
func New(reducer Reducer, opts ...Option) (Store, error) {
	o := newOptions(opts...)

	if o.enhancer != nil {
		return o.enhancer(New)(reducer, append(slices.Clip(opts), withoutEnhancer())...)
	}

	if reducer == nil {
		return nil, invalidArgument("expected the reducer to be a function")
	}

	e := &engine{
		reducer: reducer,
		state:   o.preloaded,
		logger:  o.logger,
	}

	if _, err := e.Dispatch(initAction()); err != nil {
		return nil, fmt.Errorf("store: initial dispatch: %w", err)
	}

	return e, nil
}

// MustNew is like New but panics on error, following the fail-fast pattern
// used during application startup.
func MustNew(reducer Reducer, opts ...Option) Store {
	s, err := New(reducer, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create store: %v", err))
	}
	return s
}

func (e *engine) GetState() any {
	return e.state
}

func (e *engine) Dispatch(v any) (any, error) {
	action, err := validateAction(v)
	if err != nil {
		return nil, err
	}

	next, err := e.reduce(action)
	if err != nil {
		return nil, err
	}
	e.state = next

	// Listeners see a snapshot; subscriptions made while they run apply to
	// the next dispatch only.
	for _, sub := range e.listeners.snapshot() {
		sub.fn()
	}

	return action, nil
}

// reduce runs the reducer inside the dispatching phase. The phase is always
// left, including when the reducer panics.
func (e *engine) reduce(action Action) (any, error) {
	if err := e.lifecycle.begin(); err != nil {
		return nil, err
	}
	defer e.lifecycle.complete()

	return e.reducer(e.state, action)
}

func (e *engine) Subscribe(listener Listener) (func(), error) {
	if listener == nil {
		return nil, invalidArgument("expected the listener to be a function")
	}

	sub := e.listeners.add(listener)

	subscribed := true
	return func() {
		if !subscribed {
			return
		}
		subscribed = false
		e.listeners.remove(sub)
	}, nil
}

func (e *engine) ReplaceReducer(next Reducer) error {
	if next == nil {
		return invalidArgument("expected the next reducer to be a function")
	}

	e.reducer = next
	if e.logger != nil {
		e.logger.Debug("reducer replaced", slog.Int("listeners", e.listeners.len()))
	}

	_, err := e.Dispatch(initAction())
	return err
}
