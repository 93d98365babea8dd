package ui

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger writes styled diagnostics to w. Lines from concurrent
// callers are written whole; their relative order is not defined.
type ConsoleLogger struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool
}

// NewConsoleLogger creates a logger writing to w
func NewConsoleLogger(w io.Writer, quiet bool) *ConsoleLogger {
	return &ConsoleLogger{w: w, quiet: quiet}
}

// Info prints a note. Suppressed in quiet mode.
func (l *ConsoleLogger) Info(format string, args ...any) {
	if l.quiet {
		return
	}
	l.println(FormatInfo(fmt.Sprintf(format, args...)))
}

// Warn prints a warning. Always shown.
func (l *ConsoleLogger) Warn(format string, args ...any) {
	l.println(FormatWarning(fmt.Sprintf(format, args...)))
}

func (l *ConsoleLogger) println(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, line)
}
