package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RegistersOnIsolatedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncPollRuns(SourceLive)
	svc.IncPollFailures(SourceState, "network")
	svc.SetMergedPlayers(7)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["boardwatch_poll_runs_total"])
	assert.True(t, names["boardwatch_poll_failures_total"])
	assert.True(t, names["boardwatch_merged_players"])
}

func TestService_CountsPerLabel(t *testing.T) {
	svc := NewService(prometheus.NewRegistry())

	svc.IncPollFailures(SourceState, "network")
	svc.IncPollFailures(SourceState, "network")
	svc.IncPollFailures(SourceHistory, "shape")

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.PollFailures.WithLabelValues(SourceState, "network")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.PollFailures.WithLabelValues(SourceHistory, "shape")))
}
