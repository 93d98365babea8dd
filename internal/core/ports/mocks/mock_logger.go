package mocks

import (
	"fmt"
	"strings"
	"sync"
)

// --- MockLogger ---

// LogEntry is a single recorded message
type LogEntry struct {
	Level   string
	Message string
}

// MockLogger records messages instead of printing them
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (l *MockLogger) Info(format string, args ...any) {
	l.record("info", format, args...)
}

func (l *MockLogger) Warn(format string, args ...any) {
	l.record("warn", format, args...)
}

func (l *MockLogger) record(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Entries returns a copy of everything logged so far
func (l *MockLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Count returns how many messages of level contain substr
func (l *MockLogger) Count(level, substr string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			n++
		}
	}
	return n
}
