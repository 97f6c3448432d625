// Package store provides a predictable state container: a single value that
// changes only when an action is dispatched through pure reducer functions,
// with middleware that can observe and rewrite the dispatch path.
//
// The package is built from four pieces:
//  1. The store engine (New), which owns the state, the reducer and the
//     listener list and enforces the dispatch lifecycle.
//  2. CombineReducers, which merges reducers registered under keys into one
//     reducer over a keyed *StateMap.
//  3. Compose, a right-to-left function composer.
//  4. ApplyMiddleware, an Enhancer that wraps the engine's dispatch with a
//     middleware chain.
//
// # Architecture
//
// A dispatch moves the engine from idle to dispatching, runs the reducer,
// returns to idle (even if the reducer fails or panics), installs the new
// state and notifies a snapshot of the listeners in registration order.
// A dispatch issued by a reducer fails with ErrReentrantDispatch; a dispatch
// issued by a listener runs a full nested cycle.
//
// Listeners live in a copy-on-write list: subscribing or unsubscribing while
// listeners are being notified affects the next dispatch only, and no copy is
// made when nobody is being notified.
//
// The store is single-writer and performs no locking. Use it from one
// goroutine, or serialize access outside of it.
//
// # Usage
//
//	import "github.com/dmitrymomot/reduxkit/pkg/store"
//
//	counter := store.ReducerFunc(0, func(n int, a store.Action) int {
//	    switch a.Type {
//	    case "INC":
//	        return n + 1
//	    case "DEC":
//	        return n - 1
//	    }
//	    return n
//	})
//
//	s := store.MustNew(store.CombineReducers([]store.Entry{
//	    {Key: "count", Reducer: counter},
//	}))
//
//	_, _ = s.Dispatch(store.NewAction("INC", nil))
//	state := s.GetState().(*store.StateMap)
//	count, _ := state.Get("count") // 1
//
// # Middleware
//
// Middleware receives an API with GetState and a late-bound Dispatch, and
// wraps the next link of the chain:
//
//	s, err := store.New(reducer, store.WithEnhancer(
//	    store.ApplyMiddleware(middleware.Thunk(), middleware.Logger(log)),
//	))
//
// # Error Handling
//
// Errors wrap sentinel values and can be checked with errors.Is:
//
//	if errors.Is(err, store.ErrReentrantDispatch) { /* a reducer dispatched */ }
//	if store.IsReducerSanityError(err)            { /* a reducer is not total */ }
//	if store.IsUndefinedReducerOutputError(err)   { /* a reducer returned nil */ }
//
// Advisory problems, such as unexpected keys in the preloaded state, are
// logged as warnings and never fail a dispatch.
package store
