// Package logger builds the slog loggers used across reduxkit and provides
// attribute helpers that keep key names consistent.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat – text or JSON output.
//   - WithLevel – minimum level.
//   - WithOutput – destination writer.
//   - WithAttr – static attributes on every record.
//   - WithEnvironment – development, staging or production defaults.
//
// FromConfig derives the same options from config.Store.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(config.Development, "todo-app"),
//	)
//	log.Warn("unexpected keys found in preloaded state",
//	    logger.Keys(keys),
//	    logger.Component("combine_reducers"),
//	)
//
// Error and Errors only produce attributes for non-nil errors, so
//
//	log.Info("dispatch finished", logger.Error(err))
//
// needs no nil check.
package logger
