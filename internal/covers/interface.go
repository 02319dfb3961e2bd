package covers

import "context"

// Finder looks up cover art by game name.
type Finder interface {
	Lookup(ctx context.Context, game string) (Result, error)
}
