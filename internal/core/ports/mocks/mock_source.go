package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/inlinegen/internal/core/domain"
)

// --- MockAssetSource ---

// MockAssetSource returns a fixed file list
type MockAssetSource struct {
	mu         sync.Mutex
	files      []domain.AssetFile
	calls      []string
	shouldFail bool
}

func NewMockAssetSource(files ...domain.AssetFile) *MockAssetSource {
	return &MockAssetSource{files: files}
}

func (s *MockAssetSource) Collect(ctx context.Context, root string) ([]domain.AssetFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, root)
	if s.shouldFail {
		return nil, fmt.Errorf("collect failed for %s", root)
	}
	files := make([]domain.AssetFile, len(s.files))
	copy(files, s.files)
	return files, nil
}

func (s *MockAssetSource) SetShouldFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shouldFail = fail
}

func (s *MockAssetSource) GetCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]string, len(s.calls))
	copy(calls, s.calls)
	return calls
}
