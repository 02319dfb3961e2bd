package history

import (
	"context"
	"sync"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing.
// It is safe for concurrent use.
type MockFetcher struct {
	mu sync.Mutex

	FetchFunc func(ctx context.Context) (Map, error)

	FetchCalls int
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Fetch(ctx context.Context) (Map, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return Map{}, nil
}

func (m *MockFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchCalls
}
