package gamestate

import (
	"context"
	"sync"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing.
// It is safe for concurrent use.
type MockFetcher struct {
	mu sync.Mutex

	FetchFunc func(ctx context.Context) (Snapshot, error)

	FetchCalls int
}

// NewMockFetcher creates a new mock instance.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Fetch(ctx context.Context) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return Snapshot{}, nil
}

// Calls returns the number of times Fetch was called.
func (m *MockFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchCalls
}
