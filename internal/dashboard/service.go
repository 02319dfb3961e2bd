package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/cache"
	"github.com/rggevent/boardwatch/internal/gamestate"
	"github.com/rggevent/boardwatch/internal/history"
	"github.com/rggevent/boardwatch/internal/metrics"
	"github.com/rggevent/boardwatch/internal/notifier"
	"github.com/rggevent/boardwatch/internal/payload"
	"github.com/rggevent/boardwatch/internal/poller"
	"github.com/rggevent/boardwatch/internal/pubsub"
	"github.com/rggevent/boardwatch/internal/reconcile"
	"github.com/rggevent/boardwatch/internal/twitch"
)

// New creates the service and restores the last known good snapshots from
// the cache, so the merged view is available before the first poll.
func New(cfg Config) *Service {
	if cfg.Notifier == nil {
		cfg.Notifier = notifier.Noop{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Service{
		cfg:    cfg,
		hist:   history.Map{},
		live:   map[string]twitch.LiveStatus{},
		merged: []reconcile.MergedPlayer{},
		gameState: GameState{
			IsPlaying:    true,
			LastEventLog: []string{InitialLogLine},
		},
	}

	var lite []gamestate.Player
	if cfg.Cache.Load(cache.KeyLiteState, &lite) && len(lite) > 0 {
		s.lite = lite
		log.Info("Loaded cached game state", "players", len(lite))
	}
	var hist history.Map
	if cfg.Cache.Load(cache.KeyHistory, &hist) && len(hist) > 0 {
		s.hist = hist
		log.Info("Loaded cached history", "players", len(hist))
	}
	s.mu.Lock()
	s.recomputeLocked()
	s.mu.Unlock()

	s.stateTask = poller.New(metrics.SourceState, cfg.Intervals.State, func(ctx context.Context) { s.RefreshState(ctx) })
	s.stateTask.Immediate = func() bool { return len(s.Lite()) == 0 }

	s.historyTask = poller.New(metrics.SourceHistory, cfg.Intervals.History, func(ctx context.Context) { s.RefreshHistory(ctx) })
	s.historyTask.Immediate = func() bool { return len(s.History()) == 0 }

	s.liveTask = poller.New(metrics.SourceLive, cfg.Intervals.Live, func(ctx context.Context) { s.RefreshLive(ctx) })
	s.liveTask.Immediate = func() bool { return len(reconcile.Names(s.Lite())) > 0 }

	return s
}

// Start runs the enabled polling loops until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	tasks := []*poller.Task{s.stateTask, s.historyTask}
	if s.cfg.Live != nil {
		tasks = append(tasks, s.liveTask)
	} else {
		log.Info("Live status disabled, no stream credentials configured")
	}
	poller.Run(ctx, tasks...)
}

// Subscribe registers fn to receive every newly merged list. fn must not
// modify the slice.
func (s *Service) Subscribe(fn func([]reconcile.MergedPlayer)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Players returns the current merged view.
func (s *Service) Players() []reconcile.MergedPlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]reconcile.MergedPlayer, len(s.merged))
	copy(out, s.merged)
	return out
}

// Player returns one merged player by id.
func (s *Service) Player(id string) (reconcile.MergedPlayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.merged {
		if p.ID == id {
			return p, true
		}
	}
	return reconcile.MergedPlayer{}, false
}

// GameState returns the current global record.
func (s *Service) GameState() GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gs := s.gameState
	gs.LastEventLog = make([]string, len(s.gameState.LastEventLog))
	copy(gs.LastEventLog, s.gameState.LastEventLog)
	return gs
}

// Lite returns the current lite state.
func (s *Service) Lite() []gamestate.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lite
}

// History returns the current history map.
func (s *Service) History() history.Map {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hist
}

// RefreshState polls the state source once. On failure the cached snapshot
// is restored when one exists; otherwise the in-memory state is kept.
func (s *Service) RefreshState(ctx context.Context) error {
	s.cfg.Metrics.IncPollRuns(metrics.SourceState)
	snap, err := s.cfg.State.Fetch(ctx)

	if snap.EventLog != nil {
		s.mu.Lock()
		s.gameState.LastEventLog = snap.EventLog
		s.mu.Unlock()
	}

	if err != nil {
		s.failed(metrics.SourceState, err)
		var cached []gamestate.Player
		if !s.cfg.Cache.Load(cache.KeyLiteState, &cached) || len(cached) == 0 {
			log.Warn("No cached game state to restore, keeping current state")
			return err
		}
		s.restored(metrics.SourceState)
		s.setLite(ctx, cached)
		return err
	}

	s.count(metrics.SourceState, metrics.OutcomeOK)
	s.cfg.Cache.Save(cache.KeyLiteState, snap.Players)
	s.setLite(ctx, snap.Players)
	return nil
}

// RefreshHistory polls the history source once with the same fallback rules
// as RefreshState.
func (s *Service) RefreshHistory(ctx context.Context) error {
	s.cfg.Metrics.IncPollRuns(metrics.SourceHistory)
	hist, err := s.cfg.History.Fetch(ctx)
	if err != nil {
		s.failed(metrics.SourceHistory, err)
		var cached history.Map
		if !s.cfg.Cache.Load(cache.KeyHistory, &cached) || len(cached) == 0 {
			log.Warn("No cached history to restore, keeping current history")
			return err
		}
		s.restored(metrics.SourceHistory)
		hist = cached
	} else {
		s.count(metrics.SourceHistory, metrics.OutcomeOK)
		s.cfg.Cache.Save(cache.KeyHistory, hist)
	}

	s.mu.Lock()
	s.hist = hist
	merged := s.recomputeLocked()
	s.mu.Unlock()
	s.emit(ctx, merged)
	return err
}

// RefreshLive checks the stream status of every known player once. It is a
// no-op while no player names are known or live status is disabled.
func (s *Service) RefreshLive(ctx context.Context) int {
	if s.cfg.Live == nil {
		return 0
	}
	names := reconcile.Names(s.Lite())
	if len(names) == 0 {
		return 0
	}

	s.cfg.Metrics.IncPollRuns(metrics.SourceLive)
	statuses := s.cfg.Live.CheckStatus(ctx, names)
	s.count(metrics.SourceLive, metrics.OutcomeOK)

	s.mu.Lock()
	previous, baseline := s.live, s.liveSeen
	s.live = statuses
	s.liveSeen = true
	merged := s.recomputeLocked()
	s.mu.Unlock()

	if baseline {
		for _, p := range merged {
			if p.IsLive && !previous[p.Name].IsLive {
				log.Info("Player went live", "player", p.Name, "category", p.TwitchCategory)
				if err := s.cfg.Notifier.SendLiveNotification(ctx, p, s.dryRun(ctx)); err != nil {
					log.Error("Failed to send live notification", "player", p.Name, "error", err)
				}
			}
		}
	}
	s.emit(ctx, merged)
	return len(statuses)
}

// RefreshAll runs every refresh once, in dependency order.
func (s *Service) RefreshAll(ctx context.Context) Report {
	stateErr := s.RefreshState(ctx)
	historyErr := s.RefreshHistory(ctx)
	live := s.RefreshLive(ctx)
	return Report{
		State:   payload.Kind(stateErr),
		History: payload.Kind(historyErr),
		Live:    live,
		Players: len(s.Players()),
	}
}

func (s *Service) setLite(ctx context.Context, players []gamestate.Player) {
	s.mu.Lock()
	hadNames := len(reconcile.Names(s.lite)) > 0
	s.lite = players
	hasNames := len(reconcile.Names(s.lite)) > 0
	merged := s.recomputeLocked()
	s.mu.Unlock()

	s.emit(ctx, merged)
	if !hadNames && hasNames && s.cfg.Live != nil {
		log.Debug("Player names became known, requesting live status")
		s.liveTask.Trigger()
	}
}

// recomputeLocked rebuilds the merged view. An empty lite state keeps the
// previous view. It returns the new view, or nil when nothing changed.
func (s *Service) recomputeLocked() []reconcile.MergedPlayer {
	if len(s.lite) == 0 {
		return nil
	}
	start := time.Now()
	s.merged = reconcile.Merge(s.lite, s.hist, s.live)
	s.cfg.Metrics.ObserveReconcileDuration(time.Since(start).Seconds())
	s.cfg.Metrics.SetMergedPlayers(len(s.merged))
	return s.merged
}

// emit hands a new view to the subscribers and the publisher.
func (s *Service) emit(ctx context.Context, merged []reconcile.MergedPlayer) {
	if merged == nil {
		return
	}
	s.subMu.Lock()
	subs := make([]func([]reconcile.MergedPlayer), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(merged)
	}

	if s.cfg.Publisher == nil {
		return
	}
	snapshot := pubsub.MergedSnapshot{Players: merged, GeneratedAt: s.cfg.Now().UnixMilli()}
	if err := s.cfg.Publisher.SendMessage(ctx, s.cfg.Topic, pubsub.EventPlayersMerged, snapshot); err != nil {
		log.Error("Failed to publish merged players", "topic", s.cfg.Topic, "error", err)
	}
}

func (s *Service) failed(source string, err error) {
	log.Warn("Poll failed, attempting cache restore", "source", source, "kind", payload.Kind(err), "error", err)
	s.cfg.Metrics.IncPollFailures(source, payload.Kind(err))
	s.count(source, metrics.OutcomeFailed)
}

func (s *Service) restored(source string) {
	log.Info("Restored snapshot from cache", "source", source)
	s.cfg.Metrics.IncCacheRestores(source)
	s.count(source, metrics.OutcomeRestored)
}

func (s *Service) count(source, outcome string) {
	if s.cfg.Counters != nil {
		s.cfg.Counters.Increment(metrics.PollKey(source, outcome))
	}
}
