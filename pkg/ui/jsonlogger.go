package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// JSONLogger writes one JSON object per line, for CI logs
type JSONLogger struct {
	log zerolog.Logger
}

// NewJSONLogger creates a structured logger writing to w. Quiet raises
// the level to warn.
func NewJSONLogger(w io.Writer, quiet bool) *JSONLogger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return &JSONLogger{
		log: zerolog.New(zerolog.SyncWriter(w)).Level(level).With().Timestamp().Logger(),
	}
}

// Info logs at info level
func (l *JSONLogger) Info(format string, args ...any) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs at warn level
func (l *JSONLogger) Warn(format string, args ...any) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}
