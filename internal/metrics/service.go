package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PollRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boardwatch_poll_runs_total",
			Help: "The total number of poll attempts per source.",
		}, []string{"source"}),
		PollFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boardwatch_poll_failures_total",
			Help: "The total number of failed polls per source and failure kind.",
		}, []string{"source", "kind"}),
		CacheRestores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boardwatch_cache_restores_total",
			Help: "The total number of times a cached snapshot replaced a failed poll.",
		}, []string{"source"}),
		StreamRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boardwatch_stream_status_requests_total",
			Help: "The total number of upstream stream status requests.",
		}),
		LiveNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boardwatch_live_notifications_sent_total",
			Help: "The total number of go-live notifications successfully sent.",
		}),
		LiveNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boardwatch_live_notifications_failed_total",
			Help: "The total number of go-live notifications that failed to send.",
		}),
		MergedPlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boardwatch_merged_players",
			Help: "The number of players in the latest merged view.",
		}),
		ReconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boardwatch_reconcile_duration_seconds",
			Help:    "The duration of a reconciliation pass.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boardwatch_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PollRuns,
		s.PollFailures,
		s.CacheRestores,
		s.StreamRequests,
		s.LiveNotifSent,
		s.LiveNotifFailed,
		s.MergedPlayers,
		s.ReconcileDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPollRuns(source string) {
	s.PollRuns.WithLabelValues(source).Inc()
}

func (s *Service) IncPollFailures(source, kind string) {
	s.PollFailures.WithLabelValues(source, kind).Inc()
}

func (s *Service) IncCacheRestores(source string) {
	s.CacheRestores.WithLabelValues(source).Inc()
}

func (s *Service) IncStreamRequests() {
	s.StreamRequests.Inc()
}

func (s *Service) IncLiveNotifSent() {
	s.LiveNotifSent.Inc()
}

func (s *Service) IncLiveNotifFailed() {
	s.LiveNotifFailed.Inc()
}

func (s *Service) SetMergedPlayers(count int) {
	s.MergedPlayers.Set(float64(count))
}

func (s *Service) ObserveReconcileDuration(duration float64) {
	s.ReconcileDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
