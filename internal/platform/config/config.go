// Package config loads lifequote settings from defaults, YAML profiles and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen/lifequote/internal/ports"
)

// AppName is the application name used for defaults and data directories.
const AppName = "lifequote"

const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	// DefaultRequestTimeout bounds a single HTTP request including store access.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultPostgresMaxConns is the default pgx pool size.
	DefaultPostgresMaxConns = 10

	// DefaultPostgresMinConns is the default number of idle pgx connections.
	DefaultPostgresMinConns = 2

	// DefaultClientRetryMaxAttempts is the default number of attempts per remote call.
	DefaultClientRetryMaxAttempts = 3

	// DefaultClientRetryMultiplier is the default exponential backoff multiplier.
	DefaultClientRetryMultiplier = 2.0

	// DefaultClientCircuitMaxFailures is the default failures before the circuit opens.
	DefaultClientCircuitMaxFailures = 5

	// DefaultClientCircuitHalfOpenLimit is the default successes to close the circuit.
	DefaultClientCircuitHalfOpenLimit = 1

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the full lifequote configuration.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	CORS      CORSConfig      `koanf:"cors"`
	Store     StoreConfig     `koanf:"store"     validate:"required"`
	Seed      SeedConfig      `koanf:"seed"`
	Quote     QuoteConfig     `koanf:"quote"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`

	// Features holds additional boolean feature flags keyed by name.
	Features map[string]bool `koanf:"features"`
}

// AppConfig identifies the running build.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig holds the HTTP listener and per-request limits.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig selects log verbosity and output.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"       validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"   validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"    validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig enables OTLP export of traces and metrics.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// CORSConfig contains cross-origin settings for browser clients.
type CORSConfig struct {
	AllowOrigins []string      `koanf:"allow_origins" validate:"required,min=1"`
	AllowMethods []string      `koanf:"allow_methods" validate:"required,min=1"`
	AllowHeaders []string      `koanf:"allow_headers" validate:"required,min=1"`
	MaxAge       time.Duration `koanf:"max_age"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Driver   string         `koanf:"driver"   validate:"required,oneof=memory sqlite postgres"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
}

// SQLiteConfig contains settings for the sqlite driver.
type SQLiteConfig struct {
	Path string `koanf:"path"`
	WAL  bool   `koanf:"wal"`
}

// PostgresConfig contains settings for the postgres driver.
type PostgresConfig struct {
	DSN      string `koanf:"dsn"`
	MaxConns int32  `koanf:"max_conns" validate:"omitempty,min=1,max=100"`
	MinConns int32  `koanf:"min_conns" validate:"omitempty,min=0,max=100"`
}

// SeedConfig controls where the demo catalog comes from.
type SeedConfig struct {
	// File is an optional YAML catalog. The embedded demo catalog is used when empty.
	File string `koanf:"file"`
}

// QuoteConfig contains quote engine switches.
type QuoteConfig struct {
	AutoSeed bool `koanf:"auto_seed"`
	Persist  bool `koanf:"persist"`
}

// ClientConfig contains settings for the CLI's remote mode, which talks to a
// running service instead of opening the store.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
}

// RetryConfig contains retry settings for the HTTP client.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1"`
}

// CircuitBreakerConfig contains circuit breaker settings for the HTTP client.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// FeatureFlags returns every boolean flag known to the configuration.
// Entries in Features override the quote switches.
func (c *Config) FeatureFlags() map[string]bool {
	flags := map[string]bool{
		ports.FlagAutoSeed:      c.Quote.AutoSeed,
		ports.FlagPersistQuotes: c.Quote.Persist,
	}

	for name, enabled := range c.Features {
		flags[name] = enabled
	}

	return flags
}

// DefaultSQLitePath returns the database location under the XDG data directory.
func DefaultSQLitePath() string {
	return filepath.Join(xdg.DataHome, AppName, AppName+".db")
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        AppName,
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  DefaultRequestTimeout.String(),
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  AppName,
		"telemetry.sampling_rate": 1.0,

		"cors.allow_origins": []string{"*"},
		"cors.allow_methods": []string{"*"},
		"cors.allow_headers": []string{"*"},
		"cors.max_age":       "12h",

		"store.driver":             DriverMemory,
		"store.sqlite.path":        DefaultSQLitePath(),
		"store.sqlite.wal":         true,
		"store.postgres.dsn":       "",
		"store.postgres.max_conns": DefaultPostgresMaxConns,
		"store.postgres.min_conns": DefaultPostgresMinConns,

		"seed.file": "",

		"quote.auto_seed": true,
		"quote.persist":   true,

		"client.timeout":                         "10s",
		"client.retry.max_attempts":              DefaultClientRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                DefaultClientRetryMultiplier,
		"client.circuit_breaker.max_failures":    DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": DefaultClientCircuitHalfOpenLimit,
	}
}

const envPrefix = "APP_"

// Load layers configuration, later sources winning:
// defaults, configs/base.yaml, configs/{profile}.yaml, then APP_* variables
// (a .env file in the working directory is read first and never overrides
// variables already set).
func Load(profile string) (*Config, error) {
	k := koanf.New(".")
	base := defaults()

	if err := k.Load(confmap.Provider(base, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	files := []string{filepath.Join(configDir, "base.yaml")}
	if profile != "" {
		files = append(files, filepath.Join(configDir, profile+".yaml"))
	}

	for _, path := range files {
		if err := loadYAML(k, path); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper(base)), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	return &cfg, nil
}

// configDir holds base.yaml and the per-profile files.
const configDir = "configs"

// envKeyMapper turns APP_QUOTE_AUTO_SEED into quote.auto_seed. Known keys
// are matched whole so underscores inside a key survive; anything else,
// such as APP_FEATURES_BETA, splits on every underscore.
func envKeyMapper(known map[string]any) func(string) string {
	byFlat := make(map[string]string, len(known))
	for key := range known {
		byFlat[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name string) string {
		flat := strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := byFlat[flat]; ok {
			return key
		}

		return strings.ReplaceAll(flat, "_", ".")
	}
}

func loadYAML(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
