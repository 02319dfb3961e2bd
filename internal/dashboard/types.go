package dashboard

import (
	"sync"
	"time"

	"github.com/rggevent/boardwatch/internal/cache"
	"github.com/rggevent/boardwatch/internal/gamestate"
	"github.com/rggevent/boardwatch/internal/history"
	"github.com/rggevent/boardwatch/internal/metrics"
	"github.com/rggevent/boardwatch/internal/notifier"
	"github.com/rggevent/boardwatch/internal/poller"
	"github.com/rggevent/boardwatch/internal/pubsub"
	"github.com/rggevent/boardwatch/internal/reconcile"
	"github.com/rggevent/boardwatch/internal/twitch"
)

// InitialLogLine is the event log shown before any state response arrived.
const InitialLogLine = "Инициализация соединения..."

// GameState is the small global record served next to the player list.
type GameState struct {
	IsPlaying      bool     `json:"isPlaying"`
	TurnNumber     int      `json:"turnNumber"`
	ActivePlayerID string   `json:"activePlayerId"`
	LastEventLog   []string `json:"lastEventLog"`
}

// Intervals are the fixed poll periods of the three sources.
type Intervals struct {
	State   time.Duration
	History time.Duration
	Live    time.Duration
}

// Config wires a Service. Live, Counters, Notifier and Publisher are
// optional.
type Config struct {
	State     gamestate.Fetcher
	History   history.Fetcher
	Live      twitch.Checker
	Cache     cache.Store
	Metrics   metrics.Metrics
	Counters  metrics.MetricsStore
	Notifier  notifier.Notifier
	Publisher pubsub.PubSubClient
	Topic     string
	DryRun    bool
	Intervals Intervals
	Now       func() time.Time
}

// Report is the outcome of one synchronous refresh of every source.
type Report struct {
	State   string `json:"state"`
	History string `json:"history"`
	Live    int    `json:"live"`
	Players int    `json:"players"`
}

// Service owns the three independently polled state pieces and the merged
// view derived from them.
type Service struct {
	cfg Config

	mu        sync.RWMutex
	lite      []gamestate.Player
	hist      history.Map
	live      map[string]twitch.LiveStatus
	liveSeen  bool
	gameState GameState
	merged    []reconcile.MergedPlayer

	subMu       sync.Mutex
	subscribers []func([]reconcile.MergedPlayer)

	stateTask   *poller.Task
	historyTask *poller.Task
	liveTask    *poller.Task
}
