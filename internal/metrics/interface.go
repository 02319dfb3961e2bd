package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPollRuns(source string)
	IncPollFailures(source, kind string)
	IncCacheRestores(source string)
	IncStreamRequests()
	IncLiveNotifSent()
	IncLiveNotifFailed()
	SetMergedPlayers(count int)
	ObserveReconcileDuration(duration float64)
	SetStartupTime(duration float64)
}

// MetricsStore persists simple counters so they survive restarts.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
