// Package logging builds the zerolog logger used for diagnostics.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Out     io.Writer
	Level   string // trace, debug, info, warn, error; empty means warn
	NoColor bool
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q — must be one of: trace, debug, info, warn, error", name)
	}
}

// New returns a console logger writing to opts.Out without timestamps.
func New(opts Options) (zerolog.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	w := zerolog.ConsoleWriter{
		Out:          opts.Out,
		NoColor:      opts.NoColor,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	logger := zerolog.New(w).Level(lvl)
	if lvl <= zerolog.TraceLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger, nil
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
