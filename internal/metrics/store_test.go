package metrics

import (
	"path/filepath"
	"testing"

	"github.com/rggevent/boardwatch/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) MetricsStore {
	t.Helper()

	db, err := database.InitDB(filepath.Join(t.TempDir(), "metrics.db"), "", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db)
}

func TestIncrementAndGetAll(t *testing.T) {
	store := setupTestStore(t)

	counters, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, counters)

	okKey := PollKey(SourceState, OutcomeOK)
	store.Increment(okKey)
	store.Increment(okKey)
	store.Increment(PollKey(SourceHistory, OutcomeRestored))

	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"poll_state_ok":          2,
		"poll_history_restored": 1,
	}, counters)
}
