package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/metrics"
	"github.com/rggevent/boardwatch/internal/notifier"
	"github.com/rggevent/boardwatch/internal/reconcile"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncLiveNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncLiveNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendLiveNotification announces a player going live.
func (s *Notifier) SendLiveNotification(ctx context.Context, player reconcile.MergedPlayer, dryRun bool) error {
	msg := s.formatLiveNotification(player)
	_, _, err := s.sendMessage(ctx, msg, dryRun)
	return err
}

// formatLiveNotification creates the go-live message using Block Kit.
func (s *Notifier) formatLiveNotification(player reconcile.MergedPlayer) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🔴 %s в эфире!", player.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	details := fmt.Sprintf("Клетка: %d\nHP: %g/%g", player.Position, player.HP, player.MaxHP)
	if player.TwitchCategory != "" {
		details = fmt.Sprintf("Играет: %s\n%s", player.TwitchCategory, details)
	}
	section := slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil)
	if player.TwitchUsername != "" {
		button := slack.NewButtonBlockElement("watch", player.ID, slack.NewTextBlockObject("plain_text", "Смотреть", true, false))
		button.URL = player.TwitchUsername
		section.Accessory = slack.NewAccessory(button)
	}
	blocks = append(blocks, section)

	stats := player.Stats
	statsText := fmt.Sprintf("Игр: %d · Побед: %d · Дропов: %d · Реролов: %d", stats.GamesPlayed, stats.Wins, stats.Drops, stats.Rerolls)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", statsText, true, false)))

	return slack.NewBlockMessage(blocks...)
}
