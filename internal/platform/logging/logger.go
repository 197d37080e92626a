// Package logging builds the service's slog loggers and carries the
// request-scoped logger through context.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace sits below debug. Per-plan pricing detail is logged here.
const LevelTrace = slog.Level(-8)

// Config selects the level, terminal format and optional log file.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // json, text, pretty
	Service string
	Version string
	File    FileConfig
}

// FileConfig controls the rolling log file. The file is always JSON.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New returns a logger writing cfg.Format to w and, when enabled, JSON to
// the rolling file. Every record carries service_name and service_version.
func New(cfg *Config, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: NewReplaceAttr()}

	sinks := []slog.Handler{terminalHandler(cfg.Format, w, level, opts)}

	if cfg.File.Enabled && cfg.File.Path != "" {
		sinks = append(sinks, slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}, opts))
	}

	return slog.New(newTeeHandler(sinks...)).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

func terminalHandler(format string, w io.Writer, level slog.Level, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "pretty":
		// charm renders its own attrs so redaction does not apply here;
		// pretty is only accepted outside production.
		return log.NewWithOptions(w, log.Options{
			Level:           charmLevel(level),
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// ParseLevel maps a level name to its slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// charmLevel maps slog levels onto charm levels. Charm has no trace, so
// anything below info is debug.
func charmLevel(level slog.Level) log.Level {
	switch {
	case level < slog.LevelInfo:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
