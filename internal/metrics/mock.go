package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	pollRuns           map[string]int
	pollFailures       map[string]int
	cacheRestores      map[string]int
	streamRequests     int
	liveNotifSent      int
	liveNotifFailed    int
	mergedPlayers      int
	reconcileDurations []float64
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		pollRuns:      make(map[string]int),
		pollFailures:  make(map[string]int),
		cacheRestores: make(map[string]int),
	}
}

func (m *Mock) IncPollRuns(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollRuns[source]++
}

func (m *Mock) IncPollFailures(source, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollFailures[source+"/"+kind]++
}

func (m *Mock) IncCacheRestores(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheRestores[source]++
}

func (m *Mock) IncStreamRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streamRequests++
}

func (m *Mock) IncLiveNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liveNotifSent++
}

func (m *Mock) IncLiveNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liveNotifFailed++
}

func (m *Mock) SetMergedPlayers(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mergedPlayers = count
}

func (m *Mock) ObserveReconcileDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconcileDurations = append(m.reconcileDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PollRuns returns the number of poll attempts recorded for source.
func (m *Mock) PollRuns(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollRuns[source]
}

// PollFailures returns the number of failures recorded for source and kind.
func (m *Mock) PollFailures(source, kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollFailures[source+"/"+kind]
}

// CacheRestores returns the number of cache restores recorded for source.
func (m *Mock) CacheRestores(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheRestores[source]
}

func (m *Mock) StreamRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.streamRequests
}

func (m *Mock) LiveNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liveNotifSent
}

func (m *Mock) LiveNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liveNotifFailed
}

func (m *Mock) MergedPlayers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mergedPlayers
}

func (m *Mock) ReconcileCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reconcileDurations)
}

// MockStore is an in-memory MetricsStore.
type MockStore struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewMockStore() *MockStore {
	return &MockStore{counters: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out, nil
}
