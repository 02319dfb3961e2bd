package notifier

import (
	"context"
	"sync"

	"github.com/rggevent/boardwatch/internal/reconcile"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendLiveNotificationFunc func(ctx context.Context, player reconcile.MergedPlayer, dryRun bool) error

	// Call records
	SendLiveNotificationCalls []reconcile.MergedPlayer
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLiveNotificationCalls = nil
}

func (m *Mock) SendLiveNotification(ctx context.Context, player reconcile.MergedPlayer, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLiveNotificationCalls = append(m.SendLiveNotificationCalls, player)
	if m.SendLiveNotificationFunc != nil {
		return m.SendLiveNotificationFunc(ctx, player, dryRun)
	}
	return nil
}

// Announced returns the names of the players announced so far, in order.
func (m *Mock) Announced() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.SendLiveNotificationCalls))
	for _, p := range m.SendLiveNotificationCalls {
		names = append(names, p.Name)
	}
	return names
}
