// Package config loads reduxkit settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so parsing happens once per process.
//   - MustLoad panics instead of returning an error.
//   - ResetCache clears the cache, which is handy in tests.
//
// The Store struct gathers the settings consumed by the other packages:
//
//	STORE_ENV              development | staging | production (default development)
//	STORE_STRICT_REDUCERS  fail instead of warn on missing reducers (default false)
//	STORE_LOG_LEVEL        debug | info | warn | error (default info)
//	STORE_LOG_FORMAT       text | json (default text)
//	STORE_SERVICE_NAME     service attribute on log records (default reduxkit)
//	STORE_OBSERVER_BUFFER  pending states per observation (default 1)
//
// # Usage
//
//	cfg, err := config.LoadStore()
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
//	reducer := store.CombineReducers(entries, store.CombineWithConfig(cfg))
//	s, err := store.New(reducer, store.WithConfig(cfg))
//
// # Error Handling
//
// Errors can be compared with errors.Is:
//
//   - ErrParsingConfig   – failed to parse env vars into the struct.
//   - ErrLoadingEnvFile  – a file passed to LoadEnv could not be read.
//   - ErrConfigNotLoaded – the cached value could not be read back.
//   - ErrNilPointer      – nil pointer passed to Load or MustLoad.
package config
