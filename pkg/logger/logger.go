// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"splyt/internal/config"
)

const ServiceName = "journeys"

// New returns a logger writing to w in the configured format and level.
func New(w io.Writer, format config.LogFormat, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == config.LogFormatPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().
		Str("service", ServiceName).
		Timestamp().
		Logger()
}

// Setup installs the logger built from cfg as the global and context default.
func Setup(cfg config.Config) zerolog.Logger {
	l := New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
	return l
}
