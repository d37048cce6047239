package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ServiceName is stamped on every log line.
const ServiceName = "govjobs-api"

// Setup initializes the global zerolog level and returns the application logger.
//   - level: trace, debug, info, warn, error, fatal, panic (invalid values fall back to info)
//   - format: "pretty", "json", or "auto" (pretty when stdout is a terminal)
func Setup(level, format string) zerolog.Logger {
	if format == "auto" {
		format = "json"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "pretty"
		}
	}
	return New(os.Stdout, level, format)
}

// New builds a logger writing to w. Split from Setup so tests can capture output.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.DurationFieldUnit = time.Millisecond

	if format == "pretty" {
		console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
		return zerolog.New(console).With().Timestamp().Caller().Logger()
	}
	return zerolog.New(w).With().Timestamp().Str("service", ServiceName).Logger()
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
