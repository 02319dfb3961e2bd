package metrics

import "github.com/prometheus/client_golang/prometheus"

// Poll sources used as label values.
const (
	SourceState   = "state"
	SourceHistory = "history"
	SourceLive    = "live"
)

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PollRuns           *prometheus.CounterVec
	PollFailures       *prometheus.CounterVec
	CacheRestores      *prometheus.CounterVec
	StreamRequests     prometheus.Counter
	LiveNotifSent      prometheus.Counter
	LiveNotifFailed    prometheus.Counter
	MergedPlayers      prometheus.Gauge
	ReconcileDuration  prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
