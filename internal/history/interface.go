package history

import "context"

// Fetcher defines the interface for retrieving per-player match history.
type Fetcher interface {
	Fetch(ctx context.Context) (Map, error)
}
