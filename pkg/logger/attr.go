package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ActionType records the dispatched action type under the key "action_type".
func ActionType(t string) slog.Attr {
	return slog.String("action_type", t)
}

// ReducerKey records a combined reducer key under the key "reducer_key".
func ReducerKey(key string) slog.Attr {
	return slog.String("reducer_key", key)
}

// Keys records the known reducer keys under the key "reducer_keys".
func Keys(keys []string) slog.Attr {
	return slog.Any("reducer_keys", keys)
}

// Changed records whether a dispatch replaced the state under the key "state_changed".
func Changed(changed bool) slog.Attr {
	return slog.Bool("state_changed", changed)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
