package cache

import (
	"database/sql"
	"sync"
	"time"
)

// Snapshot keys. The version suffix is the only schema versioning; bump it
// when the stored structure changes shape.
const (
	KeyLiteState = "rgg_event_lite_v1"
	KeyHistory   = "rgg_event_history_v1"
	KeyCovers    = "rgg_covers_cache_v1"
)

// store persists msgpack-encoded values in the cache_entries table.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}
