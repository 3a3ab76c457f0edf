// Package logging provides the shared zerolog logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It defaults to a console writer on
// stderr at info level so packages can log before Init runs.
var Logger = newConsole(zerolog.InfoLevel)

// Init applies the configured level. An empty or unknown level keeps info.
func Init(level string) {
	Logger = newConsole(parseLevel(level))
}

func newConsole(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
