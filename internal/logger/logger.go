// Package logger is a thin zerolog wrapper for operator-facing console
// output. The journal package owns the durable activity log.
package logger

import (
	"os"
	"syscall"
	"time"

	"codeberg.org/mutker/powersaverd/internal/errors"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

// LogEvent wraps a zerolog event so callers stay decoupled from zerolog.
type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) { e.Event.Msg(msg) }
func (e *LogEvent) Send()          { e.Event.Send() }

// Init configures console output at the given level. Under a service
// manager the manager stamps every line itself, so our own timestamps are
// suppressed.
func Init(level string, isService bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	if isService {
		output.TimeFormat = ""
		output.FormatTimestamp = func(interface{}) string { return "" }
	}

	log = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(levelFor(level))
}

func levelFor(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// IsService reports whether the daemon runs under a service manager rather
// than an interactive session.
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	if os.Getppid() == 1 {
		return true
	}

	return syscall.Getpgrp() == syscall.Getpid()
}

func Debug() *LogEvent { return &LogEvent{log.Debug()} }
func Info() *LogEvent  { return &LogEvent{log.Info()} }
func Warn() *LogEvent  { return &LogEvent{log.Warn()} }
func Error() *LogEvent { return &LogEvent{log.Error()} }

// Fatal logs at fatal level and exits the process.
func Fatal() *LogEvent { return &LogEvent{log.Fatal()} }

// ErrorWithCode logs a coded error with its code and cause attached.
func ErrorWithCode(err errors.Error) *LogEvent {
	return &LogEvent{log.Error().
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}

// FatalWithCode logs a coded error and exits the process.
func FatalWithCode(err errors.Error) *LogEvent {
	return &LogEvent{log.Fatal().
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}
