package cache

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Mock is an in-memory Store for tests. Values are round-tripped through
// msgpack so tests observe the same encoding the real store applies.
// It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	entries map[string][]byte

	// Call records
	SaveCalls []string
	LoadCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{entries: make(map[string][]byte)}
}

func (m *Mock) Save(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, key)
	data, err := msgpack.Marshal(value)
	if err != nil {
		return
	}
	m.entries[key] = data
}

func (m *Mock) Load(key string, dst any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls = append(m.LoadCalls, key)
	data, ok := m.entries[key]
	if !ok {
		return false
	}
	return msgpack.Unmarshal(data, dst) == nil
}

// Has reports whether key currently holds a value.
func (m *Mock) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}
