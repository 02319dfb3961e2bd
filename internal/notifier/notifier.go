package notifier

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/reconcile"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendLiveNotification announces that a player started streaming.
	SendLiveNotification(ctx context.Context, player reconcile.MergedPlayer, dryRun bool) error
}

// Noop discards every notification. It is used when no provider is configured.
type Noop struct{}

var _ Notifier = Noop{}

func (Noop) SendLiveNotification(ctx context.Context, player reconcile.MergedPlayer, dryRun bool) error {
	log.Debug("Notifications disabled, skipping live announcement", "player", player.Name)
	return nil
}
