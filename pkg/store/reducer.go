package store

// Reducer computes the next state from the previous one and an action.
//
// A nil state means no state exists yet, and the reducer must return its
// initial state. Returning nil means "undefined" and is rejected by
// CombineReducers. Reducers must be pure and must not dispatch.
type Reducer func(state any, action Action) (any, error)

// ReducerFunc adapts a typed reducer into a Reducer. Absent state is replaced
// with initial before fn runs, so the resulting reducer is total.
//
//	counter := store.ReducerFunc(0, func(n int, a store.Action) int {
//	    if a.Type == "INC" {
//	        return n + 1
//	    }
//	    return n
//	})
func ReducerFunc[S any](initial S, fn func(state S, action Action) S) Reducer {
	return func(state any, action Action) (any, error) {
		if state == nil {
			return fn(initial, action), nil
		}
		s, ok := state.(S)
		if !ok {
			return nil, invalidArgument("reducer expected state of type %T, got %T", initial, state)
		}
		return fn(s, action), nil
	}
}

// StateAs returns the current state of s as S. The boolean is false when the
// state has a different dynamic type.
func StateAs[S any](s Store) (S, bool) {
	v, ok := s.GetState().(S)
	return v, ok
}
