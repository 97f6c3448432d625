package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Environment names the deployment environment. Advisory diagnostics are
// only emitted outside production.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// IsProduction reports whether e is production, accepting the "prod" shorthand.
func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

// IsStaging reports whether e is staging, accepting the "stage" shorthand.
func (e Environment) IsStaging() bool {
	return e == Staging || e == "stage"
}

// Store holds the settings shared by the store, the reducer combinator, the
// observable adapter and the logger factory.
type Store struct {
	Environment    Environment `env:"STORE_ENV" envDefault:"development"`
	StrictReducers bool        `env:"STORE_STRICT_REDUCERS" envDefault:"false"`
	LogLevel       string      `env:"STORE_LOG_LEVEL" envDefault:"info"`
	LogFormat      string      `env:"STORE_LOG_FORMAT" envDefault:"text"`
	ServiceName    string      `env:"STORE_SERVICE_NAME" envDefault:"reduxkit"`
	ObserverBuffer int         `env:"STORE_OBSERVER_BUFFER" envDefault:"1"`
}

// Default returns the settings used when nothing is configured.
func Default() Store {
	return Store{
		Environment:    Development,
		LogLevel:       "info",
		LogFormat:      "text",
		ServiceName:    "reduxkit",
		ObserverBuffer: 1,
	}
}

// LoadStore loads the Store settings from the environment.
func LoadStore() (Store, error) {
	var cfg Store
	if err := Load(&cfg); err != nil {
		return Store{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. Unknown values are an error.
func (s Store) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return l, nil
}
