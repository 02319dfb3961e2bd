package metrics

import (
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
)

// Outcomes recorded in the persistent counters.
const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeRestored = "restored"
)

// store handles metric-related database operations.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new metrics Store.
func New(db *sql.DB) MetricsStore {
	return &store{
		db: db,
	}
}

// PollKey names the persistent counter for one poll outcome of a source,
// e.g. "poll_state_failed".
func PollKey(source, outcome string) string {
	return "poll_" + source + "_" + outcome
}

// Increment upserts a counter and adds one to it. Failures are logged only.
func (s *store) Increment(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO metrics (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1;
	`, key)
	if err != nil {
		log.Error("Failed to increment persistent counter", "error", err, "key", key)
		return
	}
	log.Debug("Incremented persistent counter", "key", key)
}

// GetAll returns every persisted counter.
func (s *store) GetAll() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT key, value FROM metrics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		counters[key] = value
	}
	return counters, rows.Err()
}
