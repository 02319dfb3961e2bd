package cache

import (
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

var _ Store = (*store)(nil)

// New creates a Store backed by db. The schema is created by database.InitDB.
func New(db *sql.DB) Store {
	return &store{
		db:  db,
		now: time.Now,
	}
}

// Save upserts the encoded value under key. Entries never expire.
func (s *store) Save(key string, value any) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		log.Error("Failed to encode cache value", "error", err, "key", key)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO cache_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
	`, key, data, s.now().Unix())
	if err != nil {
		log.Error("Failed to write cache entry", "error", err, "key", key, "bytes", len(data))
		return
	}
	log.Debug("Saved cache entry", "key", key, "bytes", len(data))
}

// Load decodes the value stored under key into dst.
func (s *store) Load(key string, dst any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data []byte
	err := s.db.QueryRow("SELECT value FROM cache_entries WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("No cache entry found", "key", key)
		return false
	}
	if err != nil {
		log.Warn("Failed to read cache entry", "error", err, "key", key)
		return false
	}
	if err := msgpack.Unmarshal(data, dst); err != nil {
		log.Warn("Failed to decode cache entry", "error", err, "key", key)
		return false
	}
	return true
}
