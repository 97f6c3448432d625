// Package middleware provides ready-made store middleware.
//
//   - Thunk lets callers dispatch a ThunkFunc that receives dispatch and
//     getState, for logic that dispatches several actions or reads state first.
//   - Logger logs every dispatch with its action type, duration and whether
//     the state changed.
//   - Recover turns panics raised further down the chain, reducers included,
//     into errors.
//   - Recorder keeps the actions that reached the reducer and can export them
//     as YAML and replay them onto another store.
//
// Middleware are installed with store.ApplyMiddleware. The first one listed
// sees an action first:
//
//	rec := middleware.NewRecorder()
//	s, err := store.New(reducer, store.WithEnhancer(store.ApplyMiddleware(
//	    middleware.Recover(log),
//	    middleware.Logger(log),
//	    middleware.Thunk(),
//	    rec.Middleware(),
//	)))
package middleware
