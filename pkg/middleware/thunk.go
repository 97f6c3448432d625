package middleware

import "github.com/dmitrymomot/reduxkit/pkg/store"

// ThunkFunc is a deferred action. Thunk calls it instead of forwarding it,
// passing the store's late-bound dispatch, its GetState and the extra argument.
type ThunkFunc func(dispatch store.DispatchFunc, getState func() any, extra any) (any, error)

// Thunk returns middleware that runs dispatched ThunkFunc values.
func Thunk() store.Middleware {
	return ThunkWithExtra(nil)
}

// ThunkWithExtra is Thunk with an extra argument handed to every thunk,
// typically an API client or other dependency.
func ThunkWithExtra(extra any) store.Middleware {
	return func(api store.API) func(next store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action any) (any, error) {
				switch fn := action.(type) {
				case ThunkFunc:
					if fn != nil {
						return fn(api.Dispatch, api.GetState, extra)
					}
				case func(store.DispatchFunc, func() any, any) (any, error):
					if fn != nil {
						return fn(api.Dispatch, api.GetState, extra)
					}
				}
				return next(action)
			}
		}
	}
}
