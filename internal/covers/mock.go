package covers

import (
	"context"
	"sync"
)

// MockFinder is a mock implementation of the Finder interface for testing.
// It is safe for concurrent use.
type MockFinder struct {
	mu sync.Mutex

	LookupFunc func(ctx context.Context, game string) (Result, error)

	LookupCalls []string
}

func NewMockFinder() *MockFinder {
	return &MockFinder{}
}

func (m *MockFinder) Lookup(ctx context.Context, game string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LookupCalls = append(m.LookupCalls, game)
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, game)
	}
	return Result{}, nil
}
