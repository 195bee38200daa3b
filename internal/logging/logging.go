// Package logging builds the zerolog logger used by msbt-cat.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/internal/config"
)

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "MSBT_LOG_LEVEL"

// ParseLevel maps a level name to a zerolog level. The empty string is not a
// level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.NoLevel, false
	}
}

// ApplyEnvOverrides replaces cfg.Level with $MSBT_LOG_LEVEL when it names a
// valid level.
func ApplyEnvOverrides(cfg *config.LogConfig) {
	raw := os.Getenv(EnvLogLevel)
	if _, ok := ParseLevel(raw); ok {
		cfg.Level = strings.TrimSpace(raw)
	}
}

// New builds a logger writing human-readable events to w and, when cfg.File
// is set, JSON events to a size-rotated log file. The returned closer
// releases the log file.
func New(w io.Writer, cfg config.LogConfig, noColor bool) (zerolog.Logger, io.Closer, error) {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		return zerolog.Nop(), nil, fmt.Errorf("%w: unknown log level %q", errs.ErrInvalidConfig, cfg.Level)
	}

	console := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.TimeOnly}

	var (
		out    io.Writer = console
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxAge:     cfg.MaxAgeDays,
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		}
		out = zerolog.MultiLevelWriter(console, rotator)
		closer = rotator
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
