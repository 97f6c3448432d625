package config_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reduxkit/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type EnvFileConfig struct {
	Name     string   `env:"TEST_ENVFILE_NAME"`
	Keys     []string `env:"TEST_ENVFILE_KEYS" envSeparator:","`
	Priority string   `env:"TEST_ENVFILE_PRIORITY"`
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))

	t.Run("retries after the environment is fixed", func(t *testing.T) {
		t.Setenv("REQUIRED_VALUE", "present")

		var cfg RequiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "present", cfg.Required)
	})
}

func TestLoad_Singleton(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.TestString, "second load should be served from cache")

	config.ResetCache()

	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.TestString, "reset should force a new parse")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigDefault
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads values from a custom file", func(t *testing.T) {
		os.Unsetenv("TEST_ENVFILE_NAME")
		os.Unsetenv("TEST_ENVFILE_KEYS")
		t.Setenv("TEST_ENVFILE_PRIORITY", "from_process")
		t.Cleanup(func() {
			os.Unsetenv("TEST_ENVFILE_NAME")
			os.Unsetenv("TEST_ENVFILE_KEYS")
		})
		config.ResetCache()

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg EnvFileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "counter", cfg.Name)
		assert.Equal(t, []string{"count", "todos"}, cfg.Keys)
		assert.Equal(t, "from_process", cfg.Priority, "process environment wins over the file")
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestLoadStore(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{
			"STORE_ENV", "STORE_STRICT_REDUCERS", "STORE_LOG_LEVEL",
			"STORE_LOG_FORMAT", "STORE_SERVICE_NAME", "STORE_OBSERVER_BUFFER",
		} {
			os.Unsetenv(k)
		}
		config.ResetCache()

		cfg, err := config.LoadStore()
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("STORE_ENV", "production")
		t.Setenv("STORE_STRICT_REDUCERS", "true")
		t.Setenv("STORE_LOG_LEVEL", "debug")
		t.Setenv("STORE_LOG_FORMAT", "json")
		t.Setenv("STORE_SERVICE_NAME", "todo-app")
		t.Setenv("STORE_OBSERVER_BUFFER", "8")
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		cfg, err := config.LoadStore()
		require.NoError(t, err)
		assert.Equal(t, config.Production, cfg.Environment)
		assert.True(t, cfg.Environment.IsProduction())
		assert.True(t, cfg.StrictReducers)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "todo-app", cfg.ServiceName)
		assert.Equal(t, 8, cfg.ObserverBuffer)

		level, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})
}

func TestStore_Level(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "info", want: slog.LevelInfo},
		{in: "WARN", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := config.Store{LogLevel: tt.in}.Level()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvironment(t *testing.T) {
	assert.True(t, config.Environment("prod").IsProduction())
	assert.True(t, config.Production.IsProduction())
	assert.False(t, config.Development.IsProduction())
	assert.True(t, config.Environment("stage").IsStaging())
	assert.False(t, config.Production.IsStaging())
}
