// =============================================================================
// logging.go - Diagnostic Logging on stderr
// =============================================================================
//
// stdout belongs to the GTP channel: a controller treats every byte there
// as part of a response. All diagnostics therefore go to stderr through a
// zerolog console writer. The logger is configured once per process.
//
// =============================================================================

package main

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	configureOnce sync.Once
	logger        = zerolog.Nop()
)

// configureLogging builds the process logger from cfg on the first call.
// Later calls return the same logger.
func configureLogging(cfg logConfig) zerolog.Logger {
	configureOnce.Do(func() {
		logger = newLogger(os.Stderr, cfg)
	})
	return logger
}

func newLogger(w io.Writer, cfg logConfig) zerolog.Logger {
	level, ok := parseLevel(cfg.Level)
	if !ok {
		level = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.TimeOnly,
	}
	if !cfg.Timestamp {
		out.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	ctx := zerolog.New(out).Level(level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
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
		return zerolog.InfoLevel, false
	}
}
