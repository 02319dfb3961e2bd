package twitch

import (
	"context"
	"sync"
)

// MockChecker is a mock implementation of the Checker interface for testing.
// It is safe for concurrent use.
type MockChecker struct {
	mu sync.Mutex

	CheckStatusFunc func(ctx context.Context, names []string) map[string]LiveStatus

	CheckStatusCalls [][]string
}

func NewMockChecker() *MockChecker {
	return &MockChecker{}
}

func (m *MockChecker) CheckStatus(ctx context.Context, names []string) map[string]LiveStatus {
	m.mu.Lock()
	m.CheckStatusCalls = append(m.CheckStatusCalls, append([]string(nil), names...))
	fn := m.CheckStatusFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, names)
	}
	return map[string]LiveStatus{}
}

// Calls returns the number of CheckStatus invocations.
func (m *MockChecker) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CheckStatusCalls)
}
