package mocks

import (
	"context"
	"sync"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
)

// --- MockMinifier ---

// MinifyBehavior scripts the mock's answer for one path
type MinifyBehavior struct {
	Output []byte
	Err    error
	Hang   bool // block until the context is done
}

// MockMinifier is a scripted implementation of the Minifier port
type MockMinifier struct {
	mu        sync.Mutex
	calls     []string
	behaviors map[string]MinifyBehavior
	fallback  MinifyBehavior
}

// NewMockMinifier creates a minifier that fails every call until scripted
func NewMockMinifier() *MockMinifier {
	return &MockMinifier{
		behaviors: make(map[string]MinifyBehavior),
		fallback:  MinifyBehavior{Err: &domain.MinifierExitError{Code: 1}},
	}
}

// Minify returns the scripted behavior for path
func (m *MockMinifier) Minify(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, path)
	b, ok := m.behaviors[path]
	if !ok {
		b = m.fallback
	}
	m.mu.Unlock()

	if b.Hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if b.Err != nil {
		return nil, b.Err
	}
	out := make([]byte, len(b.Output))
	copy(out, b.Output)
	return out, nil
}

// SetOutput makes Minify succeed for path with the given bytes
func (m *MockMinifier) SetOutput(path string, output []byte) {
	m.set(path, MinifyBehavior{Output: output})
}

// SetError makes Minify fail for path
func (m *MockMinifier) SetError(path string, err error) {
	m.set(path, MinifyBehavior{Err: err})
}

// SetHang makes Minify block for path until its context expires
func (m *MockMinifier) SetHang(path string) {
	m.set(path, MinifyBehavior{Hang: true})
}

// SetFallback sets the behavior for unscripted paths
func (m *MockMinifier) SetFallback(b MinifyBehavior) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = b
}

func (m *MockMinifier) set(path string, b MinifyBehavior) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.behaviors[path] = b
}

// GetCalls returns the paths Minify was called with
func (m *MockMinifier) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}
