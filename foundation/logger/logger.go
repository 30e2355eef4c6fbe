// Package logger provides support for writing structured logs to a file.
// The terminal belongs to the game screen so nothing is written to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New constructs a logger that writes JSON lines to the specified file. Every
// line carries the session id. The returned function closes the file.
func New(path string, session string, debug bool) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(f, session, debug), f.Close, nil
}

// NewWriter constructs a logger that writes to the specified writer.
func NewWriter(w io.Writer, session string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", session).
		Logger()
}

// NewSession returns a new session id.
func NewSession() string {
	return uuid.NewString()
}

// Elapsed is a helper for logging how long something took.
func Elapsed(start time.Time) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		e.Dur("elapsed", time.Since(start))
	}
}
