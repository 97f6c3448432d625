package store

// ActionCreator builds an action, or anything a middleware can dispatch, from arguments.
type ActionCreator func(args ...any) any

// BoundActionCreator builds an action and dispatches it in one call.
type BoundActionCreator func(args ...any) (any, error)

// BindActionCreator wraps creator so that calling it dispatches its result.
func BindActionCreator(creator ActionCreator, dispatch DispatchFunc) BoundActionCreator {
	return func(args ...any) (any, error) {
		return dispatch(creator(args...))
	}
}

// BindActionCreators binds a single ActionCreator or a map of them. Plain
// func(...any) any values are accepted in both forms.
//
// A single creator yields a BoundActionCreator, a map yields a
// map[string]BoundActionCreator with nil entries skipped. Any other value
// fails with ErrInvalidArgument.
func BindActionCreators(creators any, dispatch DispatchFunc) (any, error) {
	if dispatch == nil {
		return nil, invalidArgument("expected dispatch to be a function")
	}

	switch c := creators.(type) {
	case ActionCreator:
		if c == nil {
			break
		}
		return BindActionCreator(c, dispatch), nil
	case func(args ...any) any:
		if c == nil {
			break
		}
		return BindActionCreator(c, dispatch), nil
	case map[string]ActionCreator:
		if c == nil {
			break
		}
		return BindActionCreatorMap(c, dispatch), nil
	case map[string]func(args ...any) any:
		if c == nil {
			break
		}
		converted := make(map[string]ActionCreator, len(c))
		for key, fn := range c {
			converted[key] = fn
		}
		return BindActionCreatorMap(converted, dispatch), nil
	}

	return nil, invalidArgument("bindActionCreators expected a map or a function, instead received %T", creators)
}

// BindActionCreatorMap binds every non-nil creator of creators.
func BindActionCreatorMap(creators map[string]ActionCreator, dispatch DispatchFunc) map[string]BoundActionCreator {
	bound := make(map[string]BoundActionCreator, len(creators))
	for key, creator := range creators {
		if creator == nil {
			continue
		}
		bound[key] = BindActionCreator(creator, dispatch)
	}
	return bound
}
