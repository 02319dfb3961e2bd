package gamestate

import "context"

// Fetcher defines the interface for retrieving the current board state.
// This allows for mock implementations to be used in tests.
type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}
