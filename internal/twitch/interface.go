package twitch

import "context"

// Checker reports which of the given display names are streaming right now.
// It never fails: any internal error yields a partial or empty map.
type Checker interface {
	CheckStatus(ctx context.Context, names []string) map[string]LiveStatus
}
