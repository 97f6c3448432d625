package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/reduxkit/pkg/logger"
	"github.com/dmitrymomot/reduxkit/pkg/store"
)

// Logger returns middleware that logs every dispatch passing through it.
// Successful dispatches are logged at debug level, failures at error level.
func Logger(log *slog.Logger) store.Middleware {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("dispatch"))

	return func(api store.API) func(next store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action any) (any, error) {
				ctx := context.Background()
				typ := actionType(action)
				prev := api.GetState()

				start := time.Now()
				res, err := next(action)
				elapsed := time.Since(start)

				if err != nil {
					log.LogAttrs(ctx, slog.LevelError, "dispatch failed",
						logger.ActionType(typ),
						logger.Duration(elapsed),
						logger.Error(err),
					)
					return res, err
				}

				log.LogAttrs(ctx, slog.LevelDebug, "action dispatched",
					logger.ActionType(typ),
					logger.Changed(!store.SameState(prev, api.GetState())),
					logger.Duration(elapsed),
				)
				return res, nil
			}
		}
	}
}

func actionType(action any) string {
	switch a := action.(type) {
	case store.Action:
		return a.Type
	case ThunkFunc, func(store.DispatchFunc, func() any, any) (any, error):
		return "thunk"
	default:
		return fmt.Sprintf("%T", a)
	}
}
