package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray configs/ or
// .env file leaks in.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, AppName, cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, int64(DefaultMaxRequestSize), cfg.Server.MaxRequestSize)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, AppName, cfg.Telemetry.ServiceName)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, DefaultSQLitePath(), cfg.Store.SQLite.Path)
	assert.Equal(t, int32(DefaultPostgresMaxConns), cfg.Store.Postgres.MaxConns)
	assert.Empty(t, cfg.Seed.File)

	assert.True(t, cfg.Quote.AutoSeed)
	assert.True(t, cfg.Quote.Persist)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_REQUEST_TIMEOUT", "2s")
	t.Setenv("APP_QUOTE_AUTO_SEED", "false")
	t.Setenv("APP_STORE_DRIVER", "sqlite")
	t.Setenv("APP_STORE_SQLITE_PATH", "/var/lib/lifequote/test.db")
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.Quote.AutoSeed)
	assert.True(t, cfg.Quote.Persist)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/var/lib/lifequote/test.db", cfg.Store.SQLite.Path)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_ProfileOverridesBase(t *testing.T) {
	isolate(t)
	writeFile(t, "configs/base.yaml", "log:\n  level: debug\nstore:\n  driver: sqlite\n")
	writeFile(t, "configs/qa.yaml", "app:\n  environment: qa\nstore:\n  driver: postgres\n  postgres:\n    dsn: postgres://db/lifequote\n")

	cfg, err := Load("qa")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level, "base value kept")
	assert.Equal(t, "qa", cfg.App.Environment)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver, "profile beats base")
	assert.Equal(t, "postgres://db/lifequote", cfg.Store.Postgres.DSN)
}

func TestLoad_EnvironmentBeatsProfile(t *testing.T) {
	isolate(t)
	writeFile(t, "configs/test.yaml", "quote:\n  persist: false\n")
	t.Setenv("APP_QUOTE_PERSIST", "true")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.True(t, cfg.Quote.Persist)
}

func TestLoad_MissingProfileIgnored(t *testing.T) {
	isolate(t)

	cfg, err := Load("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, AppName, cfg.App.Name)
}

func TestLoad_MalformedProfile(t *testing.T) {
	isolate(t)
	writeFile(t, "configs/broken.yaml", "store: [unterminated\n")

	_, err := Load("broken")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	writeFile(t, ".env", "APP_LOG_FORMAT=pretty\nAPP_LOG_LEVEL=warn\n")
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_LOG_FORMAT")
		_ = os.Unsetenv("APP_LOG_LEVEL")
	})
	t.Setenv("APP_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, "error", cfg.Log.Level, "process environment wins over .env")
}

func TestLoad_FeatureFlagsFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("APP_FEATURES_BETA", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.FeatureFlags()["beta"])
}

func TestEnvKeyMapper(t *testing.T) {
	mapKey := envKeyMapper(defaults())

	tests := map[string]string{
		"APP_SERVER_PORT":              "server.port",
		"APP_QUOTE_AUTO_SEED":          "quote.auto_seed",
		"APP_LOG_FILE_MAX_BACKUPS":     "log.file.max_backups",
		"APP_STORE_POSTGRES_MAX_CONNS": "store.postgres.max_conns",
		"APP_CLIENT_CIRCUIT_BREAKER_HALF_OPEN_LIMIT": "client.circuit_breaker.half_open_limit",
		"APP_FEATURES_BETA":                          "features.beta",
	}

	for name, want := range tests {
		assert.Equal(t, want, mapKey(name), name)
	}
}

func TestDefaultSQLitePath(t *testing.T) {
	path := DefaultSQLitePath()

	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, AppName+".db", filepath.Base(path))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(path)))
}
