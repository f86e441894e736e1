package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WorkoutMetrics(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterWorkoutsFinished.Inc()
	m.CounterWorkoutsFinished.Inc()
	m.HistogramWorkoutDuration.Observe(2730)
	m.HistogramWorkoutVolume.Observe(1250)
	m.GaugeActiveWorkoutElapsed.Set(42)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterWorkoutsFinished))
	assert.Equal(t, float64(42), testutil.ToFloat64(m.GaugeActiveWorkoutElapsed))

	families, err := reg.Gather()
	require.NoError(t, err)

	var durationHist *dto.Histogram
	for _, mf := range families {
		if mf.GetName() == "backend_test_server_workout_duration_seconds" {
			require.Len(t, mf.GetMetric(), 1)
			durationHist = mf.GetMetric()[0].GetHistogram()
		}
	}
	require.NotNil(t, durationHist)
	assert.Equal(t, uint64(1), durationHist.GetSampleCount())
	assert.Equal(t, float64(2730), durationHist.GetSampleSum())
}

type staticCollector struct {
	desc *prometheus.Desc
}

func (c staticCollector) Describe(ch chan<- *prometheus.Desc) { ch <- c.desc }

func (c staticCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 7)
}

func TestSetupPrometheus_ExtraCollectors(t *testing.T) {
	extra := staticCollector{desc: prometheus.NewDesc("pool_conns", "test", nil, nil)}
	reg := SetupPrometheus(extra, nil)

	count, err := testutil.GatherAndCount(reg, "pool_conns")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
