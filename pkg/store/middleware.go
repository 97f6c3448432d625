package store

// API is the view of the store handed to every middleware. Dispatch always
// resolves to the fully composed dispatch, so a middleware calling it re-enters
// the whole chain rather than its own next link.
type API struct {
	GetState func() any
	Dispatch DispatchFunc
}

// Middleware intercepts dispatch. It is called once with the store API and
// returns a function that wraps the next link of the chain. The wrapped
// function may inspect, transform, delay or swallow actions.
//
//	func logTypes(api store.API) func(next store.DispatchFunc) store.DispatchFunc {
//	    return func(next store.DispatchFunc) store.DispatchFunc {
//	        return func(action any) (any, error) {
//	            if a, ok := action.(store.Action); ok {
//	                log.Println(a.Type)
//	            }
//	            return next(action)
//	        }
//	    }
//	}
type Middleware func(api API) func(next DispatchFunc) DispatchFunc

// dispatchCell is the late-bound dispatch slot shared by API.Dispatch and the
// enhanced store. It is written once, after the chain is composed.
type dispatchCell struct {
	fn DispatchFunc
}

func (c *dispatchCell) dispatch(action any) (any, error) {
	return c.fn(action)
}

type enhancedStore struct {
	Store
	cell *dispatchCell
}

func (s *enhancedStore) Dispatch(action any) (any, error) {
	return s.cell.dispatch(action)
}

// ApplyMiddleware returns an enhancer that installs mws around the store's
// dispatch. The first middleware is the outermost one: an action flows
// through mws in order and finally reaches the engine.
func ApplyMiddleware(mws ...Middleware) Enhancer {
	return func(next Creator) Creator {
		return func(reducer Reducer, opts ...Option) (Store, error) {
			base, err := next(reducer, opts...)
			if err != nil {
				return nil, err
			}

			cell := &dispatchCell{fn: base.Dispatch}
			api := API{
				GetState: base.GetState,
				Dispatch: cell.dispatch,
			}

			chain := make([]func(DispatchFunc) DispatchFunc, 0, len(mws))
			for i, mw := range mws {
				chain = append(chain, link(i, mw, api))
			}

			cell.fn = Compose(chain...)(base.Dispatch)

			return &enhancedStore{Store: base, cell: cell}, nil
		}
	}
}

// link binds one middleware to the API. A middleware that yields no function
// is replaced by a link failing on first use.
func link(pos int, mw Middleware, api API) func(DispatchFunc) DispatchFunc {
	if mw == nil {
		return brokenLink(pos)
	}
	wrap := mw(api)
	if wrap == nil {
		return brokenLink(pos)
	}
	return func(next DispatchFunc) DispatchFunc {
		if h := wrap(next); h != nil {
			return h
		}
		return brokenDispatch(pos)
	}
}

func brokenLink(pos int) func(DispatchFunc) DispatchFunc {
	return func(DispatchFunc) DispatchFunc {
		return brokenDispatch(pos)
	}
}

func brokenDispatch(pos int) DispatchFunc {
	err := invalidArgument("middleware at position %d did not produce a dispatch function", pos)
	return func(any) (any, error) {
		return nil, err
	}
}
