// Package logging builds the zerolog logger shared by the CLI and the
// simulation packages.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Component is the logger field naming the emitting binary.
const Component = "nhp-sim"

// New returns a logger writing to w at the given level. format "json" emits
// one JSON object per line; anything else uses the human-readable console
// writer. Unknown levels fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if !strings.EqualFold(format, "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("component", Component).
		Logger()
}
