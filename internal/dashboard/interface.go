package dashboard

import (
	"context"

	"github.com/rggevent/boardwatch/internal/reconcile"
)

// Board is the read side of the service plus the on-demand refresh, as used
// by the HTTP API.
type Board interface {
	Players() []reconcile.MergedPlayer
	Player(id string) (reconcile.MergedPlayer, bool)
	GameState() GameState
	RefreshAll(ctx context.Context) Report
}

var _ Board = (*Service)(nil)

type contextKey string

const dryRunKey contextKey = "dryRun"

// WithDryRun marks ctx so that notifications triggered under it are only
// logged.
func WithDryRun(ctx context.Context, dryRun bool) context.Context {
	return context.WithValue(ctx, dryRunKey, dryRun)
}

func (s *Service) dryRun(ctx context.Context) bool {
	v, ok := ctx.Value(dryRunKey).(bool)
	return s.cfg.DryRun || (ok && v)
}
