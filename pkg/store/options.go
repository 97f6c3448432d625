package store

import (
	"log/slog"

	"github.com/dmitrymomot/reduxkit/pkg/config"
	"github.com/dmitrymomot/reduxkit/pkg/logger"
)

// Option configures store construction.
type Option func(*options)

type options struct {
	preloaded any
	enhancer  Enhancer
	logger    *slog.Logger
	base      bool
}

// WithPreloadedState sets the state the store starts from, for example one
// restored from a previous session. An Enhancer passed here is treated as if
// it had been passed to WithEnhancer.
func WithPreloadedState(state any) Option {
	return func(o *options) {
		o.preloaded = state
	}
}

// WithEnhancer delegates store construction to e. Use ApplyMiddleware to
// build one from middleware. A nil enhancer is ignored.
func WithEnhancer(e Enhancer) Option {
	return func(o *options) {
		if e != nil {
			o.enhancer = e
		}
	}
}

// WithLogger sets the logger used for debug diagnostics of the engine.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig applies the logging settings from cfg.
func WithConfig(cfg config.Store) Option {
	return func(o *options) {
		o.logger = logger.FromConfig(cfg).With(logger.Component("store"))
	}
}

// withoutEnhancer marks options handed to the next Creator by an enhancer.
func withoutEnhancer() Option {
	return func(o *options) {
		o.base = true
	}
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	enhancer, preloadedIsEnhancer := asEnhancer(o.preloaded)
	if preloadedIsEnhancer {
		o.preloaded = nil
		if o.enhancer == nil {
			o.enhancer = enhancer
		}
	}

	if o.base {
		o.enhancer = nil
	}

	return o
}

func asEnhancer(v any) (Enhancer, bool) {
	switch e := v.(type) {
	case Enhancer:
		return e, e != nil
	case func(Creator) Creator:
		return e, e != nil
	default:
		return nil, false
	}
}
