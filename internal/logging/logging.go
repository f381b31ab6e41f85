// Package logging configures the zerolog logger shared by every pipekit
// package. Init is called once by the root command; packages obtain scoped
// loggers with New.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Format values accepted by Init.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const timeFormat = "15:04:05.000"

var root = newLogger(os.Stderr, zerolog.WarnLevel, FormatText)

// Init replaces the shared logger. Unknown or empty levels fall back to info.
// If w is nil, os.Stderr is used. Format must be "text" or "json"; anything
// else is treated as text.
func Init(level, format string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	root = newLogger(w, ParseLevel(level), format)
}

// New returns a logger with a "component" field for package-scoped logging.
func New(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

func newLogger(w io.Writer, level zerolog.Level, format string) zerolog.Logger {
	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat, NoColor: true}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}
