// Package logger configures zerolog for the process and provides the Echo
// request logging middleware.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. format "console" selects the human-readable
// writer; anything else emits JSON lines. An unknown level falls back to info
// and is reported through the returned logger.
func New(level, format string) zerolog.Logger {
	return newWithWriter(os.Stdout, level, format)
}

func newWithWriter(w io.Writer, level, format string) zerolog.Logger {
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if err != nil {
		l.Warn().Str("invalid_level", level).Msg("invalid log level, using info")
	}
	return l
}
