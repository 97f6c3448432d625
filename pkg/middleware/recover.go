package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/dmitrymomot/reduxkit/pkg/logger"
	"github.com/dmitrymomot/reduxkit/pkg/store"
)

// ErrPanic wraps panics recovered by Recover.
var ErrPanic = errors.New("middleware: panic during dispatch")

// Recover returns middleware that converts panics from the rest of the chain
// into errors wrapping ErrPanic. Panics are logged with a stack trace.
func Recover(log *slog.Logger) store.Middleware {
	if log == nil {
		log = slog.Default()
	}

	return func(store.API) func(next store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action any) (res any, err error) {
				defer func() {
					if r := recover(); r != nil {
						typ := actionType(action)
						log.Error("dispatch panicked",
							logger.ActionType(typ),
							slog.Any("panic", r),
							slog.String("stack", string(debug.Stack())),
						)
						res, err = nil, fmt.Errorf("%w: action %q: %v", ErrPanic, typ, r)
					}
				}()
				return next(action)
			}
		}
	}
}
